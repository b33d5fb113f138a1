package usecase

import (
	"context"

	"seguimiento_actividades/internal/domain/entities"
	"seguimiento_actividades/internal/usecase/interfaces"
)

// ICatalogUseCase exposes the read-only activity catalog.

type ICatalogUseCase interface {
	List(ctx context.Context) ([]entities.CatalogEntry, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.CatalogEntry, error) {
	return u.repo.List(ctx)
}
