package middleware

import (
	"net/http"
	"strings"

	"seguimiento_actividades/internal/usecase/interfaces"
	"seguimiento_actividades/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// Gin context keys populated by RequireAuth.
	CtxUsuario = "auth_usuario"
	CtxNombre  = "auth_nombre"
	CtxRol     = "auth_rol"
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid credentials", http.StatusUnauthorized)

// RequireAuth validates the Authorization bearer token and stores the verified
// identity on the gin context. The rest of the stack trusts these values
// as-is; in particular the visibility scope is built from them, never from
// anything in the request body.
func RequireAuth(tokens interfaces.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		c.Set(CtxUsuario, claims.Usuario)
		c.Set(CtxNombre, claims.Nombre)
		c.Set(CtxRol, claims.Rol)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	return token, token != ""
}

// Identity reads the verified caller identity set by RequireAuth.
func Identity(c *gin.Context) (usuario, rol string) {
	return c.GetString(CtxUsuario), c.GetString(CtxRol)
}
