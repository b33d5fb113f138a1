package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"seguimiento_actividades/internal/domain/entities"
	"seguimiento_actividades/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCredencialesInvalidas = errors.New("invalid credentials")
	ErrInvalidUsuario        = errors.New("invalid usuario")
)

// LoginResult bundles the issued credential with the authenticated user.
type LoginResult struct {
	Token string
	User  entities.User
}

// IAuthUseCase authenticates users and issues bearer credentials.

type IAuthUseCase interface {
	Login(ctx context.Context, usuario, password string) (LoginResult, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenService
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenService) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

func (u *AuthUseCase) Login(ctx context.Context, usuario, password string) (LoginResult, error) {
	usuario = strings.TrimSpace(usuario)
	if usuario == "" {
		return LoginResult{}, ErrInvalidUsuario
	}

	user, err := u.users.GetByUsername(ctx, usuario)
	if err != nil {
		return LoginResult{}, err
	}
	if user.Usuario == "" {
		log.Printf("[auth][usecase] unknown usuario=%q", usuario)
		// Same sentinel as a bad password: never reveal which one failed.
		return LoginResult{}, ErrCredencialesInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("[auth][usecase] password mismatch usuario=%q", usuario)
		return LoginResult{}, ErrCredencialesInvalidas
	}

	token, err := u.tokens.Issue(user)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, User: user}, nil
}
