package handlers

import (
	"net/http"

	response "seguimiento_actividades/internal/adapter/http/dto/response"
	"seguimiento_actividades/internal/usecase"
	"seguimiento_actividades/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only activity catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListCatalog returns every catalog entry.
//
// @Summary  List the activity catalog
// @Tags     catalogo
// @Produce  json
// @Security Bearer
// @Success  200 {array} response.CatalogEntryResponse
// @Router   /catalogo [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	entries, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogEntries(entries))
}
