package handlers

import (
	"errors"
	"net/http"

	request "seguimiento_actividades/internal/adapter/http/dto/request"
	response "seguimiento_actividades/internal/adapter/http/dto/response"
	"seguimiento_actividades/internal/adapter/http/middleware"
	"seguimiento_actividades/internal/usecase"
	"seguimiento_actividades/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidActivityPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid activity payload", http.StatusBadRequest)

// ActivityHandler handles HTTP requests for the activity lifecycle.

type ActivityHandler struct {
	usecase usecase.IActivityUseCase
}

func NewActivityHandler(uc usecase.IActivityUseCase) *ActivityHandler {
	return &ActivityHandler{usecase: uc}
}

// ListActivities returns the activities visible to the caller, newest first,
// with progress and overdue status derived at read time.
//
// @Summary  List activities visible to the caller
// @Tags     actividades
// @Produce  json
// @Security Bearer
// @Success  200 {array} response.ActivityResponse
// @Router   /actividades [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	usuario, rol := middleware.Identity(c)

	views, err := h.usecase.List(c.Request.Context(), rol, usuario)
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActivityViews(views))
}

// CreateActivity creates an activity owned by the authenticated caller. The
// owner always comes from the credential; a lider field in the body is ignored
// by construction.
//
// @Summary  Create an activity
// @Tags     actividades
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    payload body request.CreateActivityRequest true "activity fields"
// @Success  201 {object} response.ActivityResponse
// @Router   /actividades [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var payload request.CreateActivityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActivityPayload.HTTPStatus, errInvalidActivityPayload.ToHTTPError())
		return
	}

	usuario, _ := middleware.Identity(c)
	cmd := usecase.CreateActivityCommand{
		Lider:        usuario,
		Proyecto:     payload.Proyecto,
		Tipificacion: payload.ResolveTipificacion(),
		Actividad:    payload.ResolveActividad(),
		Descripcion:  payload.Descripcion,
		Horas:        payload.Horas,
	}

	created, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromActivity(created))
}

// AppendObservation appends a timestamped note and optionally accumulates
// hours on an open activity.
//
// @Summary  Append an observation
// @Tags     actividades
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    id      path string                     true "activity id"
// @Param    payload body request.ObservationRequest true "observation"
// @Success  200 {object} response.ActivityResponse
// @Router   /actividades/{id}/observaciones [post]
func (h *ActivityHandler) AppendObservation(c *gin.Context) {
	var payload request.ObservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActivityPayload.HTTPStatus, errInvalidActivityPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AppendObservation(c.Request.Context(), c.Param("id"), payload.Comentario, payload.Horas)
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActivity(updated))
}

// CloseActivity moves an activity to its terminal state. Closing twice
// succeeds; the close date keeps its original catalog-derived value.
//
// @Summary  Close an activity
// @Tags     actividades
// @Produce  json
// @Security Bearer
// @Param    id path string true "activity id"
// @Success  200 {object} response.ActivityResponse
// @Router   /actividades/{id}/cerrar [patch]
func (h *ActivityHandler) CloseActivity(c *gin.Context) {
	closed, err := h.usecase.Close(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActivity(closed))
}

func mapActivityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActividadID),
		errors.Is(err, usecase.ErrInvalidCatalogKey),
		errors.Is(err, usecase.ErrInvalidHoras):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogoNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", "Catalog entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActividadNotFound):
		return pkg.NewDomainErrorSimple("ACTIVITY_NOT_FOUND", "Activity not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActividadCerrada):
		return pkg.NewDomainErrorSimple("ACTIVITY_CLOSED", "Activity already closed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
