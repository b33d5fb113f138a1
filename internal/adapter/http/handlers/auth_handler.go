package handlers

import (
	"errors"
	"net/http"

	request "seguimiento_actividades/internal/adapter/http/dto/request"
	response "seguimiento_actividades/internal/adapter/http/dto/response"
	"seguimiento_actividades/internal/usecase"
	"seguimiento_actividades/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid login payload", http.StatusBadRequest)

// AuthHandler issues bearer credentials.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login verifies the password and returns a signed token.
//
// @Summary  Authenticate and obtain a token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload body request.LoginRequest true "credentials"
// @Success  200 {object} response.LoginResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), payload.Usuario, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLoginResult(res))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsuario):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCredencialesInvalidas):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
