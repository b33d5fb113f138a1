package interfaces

import (
	"context"

	"seguimiento_actividades/internal/domain/entities"
)

// IActivityRepository abstracts DynamoDB persistence for Activity.
//
// Missing records are signalled the repository way: zero-value entity and nil
// error. The usecase decides whether that is a not-found.
//
// AppendObservation and Close must be atomic at the store (list_append / ADD /
// conditional SET), so concurrent annotations never lose hours or notes.

type IActivityRepository interface {
	Create(ctx context.Context, a entities.Activity) (entities.Activity, error)
	GetByID(ctx context.Context, id string) (entities.Activity, error)
	// List returns activities visible under scope, newest first by fechaCreacion.
	List(ctx context.Context, scope entities.Scope) ([]entities.Activity, error)
	// AppendObservation appends obs and adds horas to horasAcumuladas in one
	// update, guarded so it never applies to a closed activity.
	AppendObservation(ctx context.Context, id string, obs entities.Observation, horas float64) (entities.Activity, error)
	// Close sets estado to cerrado. Closing an already-closed activity succeeds.
	Close(ctx context.Context, id string) (entities.Activity, error)
}
