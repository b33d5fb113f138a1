package token

import (
	"errors"
	"fmt"
	"time"

	"seguimiento_actividades/internal/domain/entities"
	"seguimiento_actividades/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

const defaultTTL = 8 * time.Hour

// JWTTokenService issues and verifies HS256 credentials carrying the usuario,
// nombre and rol claims consumed by the visibility filter.

type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

var _ interfaces.ITokenService = (*JWTTokenService)(nil)

func NewJWTTokenService(secret string) *JWTTokenService {
	return &JWTTokenService{secret: []byte(secret), ttl: defaultTTL}
}

func (s *JWTTokenService) Issue(user entities.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"usuario": user.Usuario,
		"nombre":  user.Nombre,
		"rol":     user.Rol,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTTokenService) Verify(token string) (interfaces.Claims, error) {
	if token == "" {
		return interfaces.Claims{}, ErrMissingToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return interfaces.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return interfaces.Claims{}, ErrInvalidToken
	}

	usuario, _ := claims["usuario"].(string)
	nombre, _ := claims["nombre"].(string)
	rol, _ := claims["rol"].(string)
	if usuario == "" || rol == "" {
		return interfaces.Claims{}, ErrInvalidToken
	}

	return interfaces.Claims{Usuario: usuario, Nombre: nombre, Rol: rol}, nil
}
