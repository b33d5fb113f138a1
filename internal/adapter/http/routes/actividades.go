package routes

import (
	"seguimiento_actividades/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathActividades = "/actividades"
	PathCatalogo    = "/catalogo"
	PathAuth        = "/auth"
)

func addActivityRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, activityHandler *handlers.ActivityHandler, catalogHandler *handlers.CatalogHandler) {
	actividades := rg.Group(PathActividades, auth)
	{
		actividades.GET("", activityHandler.ListActivities)
		actividades.POST("", activityHandler.CreateActivity)
		actividades.POST("/:id/observaciones", activityHandler.AppendObservation)
		actividades.PATCH("/:id/cerrar", activityHandler.CloseActivity)
	}

	catalogo := rg.Group(PathCatalogo, auth)
	{
		catalogo.GET("", catalogHandler.ListCatalog)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}
