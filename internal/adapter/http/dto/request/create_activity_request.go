package request

import "strings"

// CreateActivityRequest is the explicit allow-list of caller-provided fields
// for activity creation. lider, estado, estadoCaso, horasAcumuladas and the
// timestamps have no representation here on purpose: the owner comes from the
// verified credential and everything else is derived server-side.
type CreateActivityRequest struct {
	Tipificacion string  `json:"tipificacion" binding:"required"`
	Actividad    string  `json:"actividad" binding:"required"`
	Proyecto     string  `json:"proyecto"`
	Descripcion  string  `json:"descripcion"`
	Horas        float64 `json:"horas"`
}

func (r CreateActivityRequest) ResolveTipificacion() string {
	return strings.TrimSpace(r.Tipificacion)
}

func (r CreateActivityRequest) ResolveActividad() string {
	return strings.TrimSpace(r.Actividad)
}
