package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"seguimiento_actividades/internal/domain/entities"
	"seguimiento_actividades/internal/domain/schedule"
	"seguimiento_actividades/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrActividadNotFound  = errors.New("actividad not found")
	ErrCatalogoNotFound   = errors.New("catalog entry not found")
	ErrActividadCerrada   = errors.New("actividad already closed")
	ErrInvalidActividadID = errors.New("invalid actividad id")
	ErrInvalidCatalogKey  = errors.New("invalid tipificacion/actividad pair")
	ErrInvalidHoras       = errors.New("invalid horas value")
)

// CreateActivityCommand carries the explicit allow-list of caller-provided
// fields. Lider always comes from the verified credential, never from the
// request body, and there is deliberately no way to feed estado, estadoCaso,
// horasAcumuladas or timestamps through here.
type CreateActivityCommand struct {
	Lider        string
	Proyecto     string
	Tipificacion string
	Actividad    string
	Descripcion  string
	Horas        float64
}

// ActivityView is the read-path projection: the persisted record plus the
// derived progress percentage and a refreshed estadoCaso. The stored entity is
// never mutated to produce it.
type ActivityView struct {
	entities.Activity
	Progreso *int
}

// IActivityUseCase exposes the activity lifecycle.
//
//   - Create: catalog lookup → business-day close date → persisted record
//   - AppendObservation: append-only note + hour accumulation
//   - Close: terminal, idempotent state transition
//   - List: role-scoped read with progress/overdue overlay

type IActivityUseCase interface {
	Create(ctx context.Context, cmd CreateActivityCommand) (entities.Activity, error)
	AppendObservation(ctx context.Context, id, comentario string, horas float64) (entities.Activity, error)
	Close(ctx context.Context, id string) (entities.Activity, error)
	List(ctx context.Context, rol, usuario string) ([]ActivityView, error)
}

type ActivityUseCase struct {
	repo    interfaces.IActivityRepository
	catalog interfaces.ICatalogRepository
}

var _ IActivityUseCase = (*ActivityUseCase)(nil)

func NewActivityUseCase(repo interfaces.IActivityRepository, catalog interfaces.ICatalogRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo, catalog: catalog}
}

func (u *ActivityUseCase) Create(ctx context.Context, cmd CreateActivityCommand) (entities.Activity, error) {
	cmd.Tipificacion = strings.TrimSpace(cmd.Tipificacion)
	cmd.Actividad = strings.TrimSpace(cmd.Actividad)
	if cmd.Tipificacion == "" || cmd.Actividad == "" {
		return entities.Activity{}, ErrInvalidCatalogKey
	}
	if cmd.Horas < 0 {
		return entities.Activity{}, ErrInvalidHoras
	}

	entry, err := u.catalog.Get(ctx, cmd.Tipificacion, cmd.Actividad)
	if err != nil {
		return entities.Activity{}, err
	}
	if entry.Tipificacion == "" {
		log.Printf("[actividad][usecase] catalog miss tipificacion=%q actividad=%q", cmd.Tipificacion, cmd.Actividad)
		return entities.Activity{}, ErrCatalogoNotFound
	}

	now := time.Now().UTC()
	cierre, err := schedule.CloseDate(now, entry.DiasHabiles)
	if err != nil {
		return entities.Activity{}, err
	}

	a := entities.Activity{
		ID:              uuid.NewString(),
		Lider:           cmd.Lider,
		Proyecto:        cmd.Proyecto,
		Tipificacion:    cmd.Tipificacion,
		Actividad:       cmd.Actividad,
		Descripcion:     cmd.Descripcion,
		FechaCreacion:   now,
		FechaCierre:     &cierre,
		Estado:          entities.ActivityStatusEnProgreso,
		EstadoCaso:      entities.CaseStatusNoAplica,
		Horas:           cmd.Horas,
		HorasAcumuladas: cmd.Horas,
		Observaciones:   []entities.Observation{},
	}
	return u.repo.Create(ctx, a)
}

func (u *ActivityUseCase) AppendObservation(ctx context.Context, id, comentario string, horas float64) (entities.Activity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Activity{}, ErrInvalidActividadID
	}
	if horas < 0 {
		return entities.Activity{}, ErrInvalidHoras
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Activity{}, err
	}
	if current.ID == "" {
		return entities.Activity{}, ErrActividadNotFound
	}
	if current.Closed() {
		return entities.Activity{}, ErrActividadCerrada
	}

	obs := entities.Observation{
		Fecha:      time.Now().UTC(),
		Comentario: comentario,
	}
	updated, err := u.repo.AppendObservation(ctx, id, obs, horas)
	if err != nil {
		return entities.Activity{}, err
	}
	if updated.ID == "" {
		// The conditional update lost a race against a concurrent close.
		return entities.Activity{}, ErrActividadCerrada
	}
	return updated, nil
}

func (u *ActivityUseCase) Close(ctx context.Context, id string) (entities.Activity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Activity{}, ErrInvalidActividadID
	}

	updated, err := u.repo.Close(ctx, id)
	if err != nil {
		return entities.Activity{}, err
	}
	if updated.ID == "" {
		return entities.Activity{}, ErrActividadNotFound
	}
	return updated, nil
}

func (u *ActivityUseCase) List(ctx context.Context, rol, usuario string) ([]ActivityView, error) {
	scope := entities.ScopeFor(rol, usuario)

	acts, err := u.repo.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	views := make([]ActivityView, 0, len(acts))
	for _, a := range acts {
		views = append(views, toView(a, now))
	}
	return views, nil
}

// toView overlays the derived fields on open activities. Closed activities
// pass through untouched.
func toView(a entities.Activity, now time.Time) ActivityView {
	v := ActivityView{Activity: a}
	if a.Closed() || a.FechaCierre == nil {
		return v
	}

	p := int(math.Round(schedule.Progress(a.FechaCreacion, a.FechaCierre, now) * 100))
	v.Progreso = &p
	if schedule.Overdue(a.FechaCierre, a.Estado, now) {
		v.EstadoCaso = entities.CaseStatusVencido
	} else {
		v.EstadoCaso = entities.CaseStatusNoAplica
	}
	return v
}
