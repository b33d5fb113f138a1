package response

import (
	"time"

	"seguimiento_actividades/internal/domain/entities"
	"seguimiento_actividades/internal/usecase"
)

type ObservationResponse struct {
	Fecha      time.Time `json:"fecha"`
	Comentario string    `json:"comentario"`
}

type ActivityResponse struct {
	ID              string                `json:"id"`
	Lider           string                `json:"lider"`
	Proyecto        string                `json:"proyecto"`
	Tipificacion    string                `json:"tipificacion"`
	Actividad       string                `json:"actividad"`
	Descripcion     string                `json:"descripcion"`
	FechaCreacion   time.Time             `json:"fechaCreacion"`
	FechaCierre     *time.Time            `json:"fechaCierre,omitempty"`
	Estado          string                `json:"estado"`
	EstadoCaso      string                `json:"estadoCaso"`
	Horas           float64               `json:"horas"`
	HorasAcumuladas float64               `json:"horasAcumuladas"`
	Observaciones   []ObservationResponse `json:"observaciones"`
	// Progreso is only present on listing reads of open activities.
	Progreso *int `json:"progreso,omitempty"`
}

func FromActivity(a entities.Activity) ActivityResponse {
	obs := make([]ObservationResponse, 0, len(a.Observaciones))
	for _, o := range a.Observaciones {
		obs = append(obs, ObservationResponse{Fecha: o.Fecha, Comentario: o.Comentario})
	}
	return ActivityResponse{
		ID:              a.ID,
		Lider:           a.Lider,
		Proyecto:        a.Proyecto,
		Tipificacion:    a.Tipificacion,
		Actividad:       a.Actividad,
		Descripcion:     a.Descripcion,
		FechaCreacion:   a.FechaCreacion,
		FechaCierre:     a.FechaCierre,
		Estado:          string(a.Estado),
		EstadoCaso:      string(a.EstadoCaso),
		Horas:           a.Horas,
		HorasAcumuladas: a.HorasAcumuladas,
		Observaciones:   obs,
	}
}

func FromActivityView(v usecase.ActivityView) ActivityResponse {
	resp := FromActivity(v.Activity)
	resp.EstadoCaso = string(v.EstadoCaso)
	resp.Progreso = v.Progreso
	return resp
}

func FromActivityViews(views []usecase.ActivityView) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromActivityView(v))
	}
	return out
}
