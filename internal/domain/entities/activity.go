package entities

import "time"

// ActivityStatus is the lifecycle state of an activity.
//
// Domain notes:
//   - Activities are created "en progreso" and only ever transition to "cerrado".
//   - "cerrado" is terminal: no observation or hour mutation is accepted afterwards.

type ActivityStatus string

const (
	ActivityStatusEnProgreso ActivityStatus = "en progreso"
	ActivityStatusCerrado    ActivityStatus = "cerrado"
)

// CaseStatus is the read-time overdue label, distinct from the lifecycle state.
//
// It is recomputed from fechaCierre on every listing read; the persisted value is
// only a cache and is never trusted between reads.

type CaseStatus string

const (
	CaseStatusNoAplica CaseStatus = "no aplica"
	CaseStatusVencido  CaseStatus = "vencido"
)

// Observation is a timestamped free-text note owned by its activity.
// Observations are append-only and keep insertion order; they are never edited
// or removed.
type Observation struct {
	Fecha      time.Time `json:"fecha"`
	Comentario string    `json:"comentario"`
}

// Activity is the tracked task persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - observaciones stored as an ordered list, no explicit index attribute
//
// Derivation rules:
//   - FechaCierre is computed once at creation from the catalog lead time and is
//     never recomputed, not even on close.
//   - HorasAcumuladas only increases (atomic ADD at the store).
type Activity struct {
	ID              string         `json:"id"`
	Lider           string         `json:"lider"`
	Proyecto        string         `json:"proyecto"`
	Tipificacion    string         `json:"tipificacion"`
	Actividad       string         `json:"actividad"`
	Descripcion     string         `json:"descripcion"`
	FechaCreacion   time.Time      `json:"fechaCreacion"`
	FechaCierre     *time.Time     `json:"fechaCierre,omitempty"`
	Estado          ActivityStatus `json:"estado"`
	EstadoCaso      CaseStatus     `json:"estadoCaso"`
	Horas           float64        `json:"horas"`
	HorasAcumuladas float64        `json:"horasAcumuladas"`
	Observaciones   []Observation  `json:"observaciones"`
}

// Closed reports whether the activity reached its terminal state.
func (a Activity) Closed() bool {
	return a.Estado == ActivityStatusCerrado
}
