package response

import "seguimiento_actividades/internal/domain/entities"

type CatalogEntryResponse struct {
	Tipificacion string `json:"tipificacion"`
	Actividad    string `json:"actividad"`
	DiasHabiles  int    `json:"diasHabiles"`
}

func FromCatalogEntries(entries []entities.CatalogEntry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, CatalogEntryResponse{
			Tipificacion: e.Tipificacion,
			Actividad:    e.Actividad,
			DiasHabiles:  e.DiasHabiles,
		})
	}
	return out
}
