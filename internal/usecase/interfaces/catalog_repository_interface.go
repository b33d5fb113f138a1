package interfaces

import (
	"context"

	"seguimiento_actividades/internal/domain/entities"
)

// ICatalogRepository reads the (tipificacion, actividad) → diasHabiles table.
// The catalog is reference data; there is no write path.

type ICatalogRepository interface {
	Get(ctx context.Context, tipificacion, actividad string) (entities.CatalogEntry, error)
	List(ctx context.Context) ([]entities.CatalogEntry, error)
}
