package interfaces

import (
	"context"

	"seguimiento_actividades/internal/domain/entities"
)

// IUserRepository resolves users for login. Nothing after authentication
// depends on the stored user record.

type IUserRepository interface {
	GetByUsername(ctx context.Context, usuario string) (entities.User, error)
}
