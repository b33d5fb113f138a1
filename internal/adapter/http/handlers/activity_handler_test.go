package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"seguimiento_actividades/internal/adapter/http/handlers/mocks"
	"seguimiento_actividades/internal/adapter/http/middleware"
	"seguimiento_actividades/internal/domain/entities"
	"seguimiento_actividades/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// asCaller injects a verified identity the way middleware.RequireAuth does.
func asCaller(usuario, rol string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUsuario, usuario)
		c.Set(middleware.CtxRol, rol)
		c.Next()
	}
}

func TestActivityHandler_CreateActivity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		r := gin.New()
		r.POST("/v1/actividades", asCaller("ana", "lider"), h.CreateActivity)

		req := httptest.NewRequest(http.MethodPost, "/v1/actividades", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		r := gin.New()
		r.POST("/v1/actividades", asCaller("ana", "lider"), h.CreateActivity)

		req := httptest.NewRequest(http.MethodPost, "/v1/actividades", bytes.NewBufferString(`{"proyecto":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lider always comes from the credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateActivityCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateActivityCommand) (entities.Activity, error) {
				if cmd.Lider != "ana" {
					t.Fatalf("expected lider forced to ana, got %q", cmd.Lider)
				}
				return entities.Activity{ID: "a-1", Lider: cmd.Lider, Estado: entities.ActivityStatusEnProgreso}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/actividades", asCaller("ana", "lider"), h.CreateActivity)

		// A caller-supplied lider must be ignored.
		body := `{"tipificacion":"Red","actividad":"Revisión","proyecto":"migracion","lider":"otro","horas":2}`
		req := httptest.NewRequest(http.MethodPost, "/v1/actividades", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["lider"] != "ana" {
			t.Fatalf("expected lider ana, got %v", resp["lider"])
		}
	})

	t.Run("catalog miss maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Activity{}, usecase.ErrCatalogoNotFound)

		r := gin.New()
		r.POST("/v1/actividades", asCaller("ana", "lider"), h.CreateActivity)

		body := `{"tipificacion":"Red","actividad":"Inexistente"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/actividades", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Activity{}, errors.New("dynamo down"))

		r := gin.New()
		r.POST("/v1/actividades", asCaller("ana", "lider"), h.CreateActivity)

		body := `{"tipificacion":"Red","actividad":"Revisión"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/actividades", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestActivityHandler_ListActivities(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes identity and returns overlayed views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		progreso := 40
		cierre := time.Now().UTC().Add(24 * time.Hour)
		uc.EXPECT().List(gomock.Any(), "lider", "ana").Return([]usecase.ActivityView{{
			Activity: entities.Activity{
				ID:            "a-1",
				Lider:         "ana",
				FechaCreacion: time.Now().UTC().Add(-24 * time.Hour),
				FechaCierre:   &cierre,
				Estado:        entities.ActivityStatusEnProgreso,
				EstadoCaso:    entities.CaseStatusNoAplica,
			},
			Progreso: &progreso,
		}}, nil)

		r := gin.New()
		r.GET("/v1/actividades", asCaller("ana", "lider"), h.ListActivities)

		req := httptest.NewRequest(http.MethodGet, "/v1/actividades", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if len(resp) != 1 {
			t.Fatalf("expected 1 activity, got %d", len(resp))
		}
		if resp[0]["progreso"] != float64(40) {
			t.Fatalf("expected progreso 40, got %v", resp[0]["progreso"])
		}
		if resp[0]["estadoCaso"] != "no aplica" {
			t.Fatalf("expected estadoCaso no aplica, got %v", resp[0]["estadoCaso"])
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().List(gomock.Any(), "coordinador", "carla").Return(nil, errors.New("db"))

		r := gin.New()
		r.GET("/v1/actividades", asCaller("carla", "coordinador"), h.ListActivities)

		req := httptest.NewRequest(http.MethodGet, "/v1/actividades", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestActivityHandler_AppendObservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().AppendObservation(gomock.Any(), "missing", "nota", 1.0).Return(entities.Activity{}, usecase.ErrActividadNotFound)

		r := gin.New()
		r.POST("/v1/actividades/:id/observaciones", asCaller("ana", "lider"), h.AppendObservation)

		req := httptest.NewRequest(http.MethodPost, "/v1/actividades/missing/observaciones", bytes.NewBufferString(`{"comentario":"nota","horas":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("closed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().AppendObservation(gomock.Any(), "a-1", "nota", 0.0).Return(entities.Activity{}, usecase.ErrActividadCerrada)

		r := gin.New()
		r.POST("/v1/actividades/:id/observaciones", asCaller("ana", "lider"), h.AppendObservation)

		req := httptest.NewRequest(http.MethodPost, "/v1/actividades/a-1/observaciones", bytes.NewBufferString(`{"comentario":"nota"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns updated record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().AppendObservation(gomock.Any(), "a-1", "avance", 2.0).Return(entities.Activity{
			ID:              "a-1",
			Estado:          entities.ActivityStatusEnProgreso,
			HorasAcumuladas: 5,
			Observaciones: []entities.Observation{
				{Fecha: time.Now().UTC(), Comentario: "avance"},
			},
		}, nil)

		r := gin.New()
		r.POST("/v1/actividades/:id/observaciones", asCaller("ana", "lider"), h.AppendObservation)

		req := httptest.NewRequest(http.MethodPost, "/v1/actividades/a-1/observaciones", bytes.NewBufferString(`{"comentario":"avance","horas":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["horasAcumuladas"] != float64(5) {
			t.Fatalf("expected horasAcumuladas 5, got %v", resp["horasAcumuladas"])
		}
	})
}

func TestActivityHandler_CloseActivity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().Close(gomock.Any(), "missing").Return(entities.Activity{}, usecase.ErrActividadNotFound)

		r := gin.New()
		r.PATCH("/v1/actividades/:id/cerrar", asCaller("ana", "lider"), h.CloseActivity)

		req := httptest.NewRequest(http.MethodPatch, "/v1/actividades/missing/cerrar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("close succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().Close(gomock.Any(), "a-1").Return(entities.Activity{
			ID: "a-1", Estado: entities.ActivityStatusCerrado,
		}, nil)

		r := gin.New()
		r.PATCH("/v1/actividades/:id/cerrar", asCaller("ana", "lider"), h.CloseActivity)

		req := httptest.NewRequest(http.MethodPatch, "/v1/actividades/a-1/cerrar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["estado"] != "cerrado" {
			t.Fatalf("expected cerrado, got %v", resp["estado"])
		}
	})
}
