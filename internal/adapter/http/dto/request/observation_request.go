package request

// ObservationRequest appends a note to an activity. Comentario is accepted
// empty; callers must not rely on non-empty enforcement. Horas, when present,
// adds to the accumulated total and is never allowed to subtract.
type ObservationRequest struct {
	Comentario string  `json:"comentario"`
	Horas      float64 `json:"horas"`
}
