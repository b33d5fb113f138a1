package usecase

import (
	"context"
	"errors"
	"testing"

	"seguimiento_actividades/internal/domain/entities"
	mock_interfaces "seguimiento_actividades/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("invalid usuario", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Login(context.Background(), "   ", "x")
		if !errors.Is(err, ErrInvalidUsuario) {
			t.Fatalf("expected ErrInvalidUsuario, got %v", err)
		}
	})

	t.Run("unknown usuario", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(entities.User{}, nil)

		_, err := uc.Login(context.Background(), "ghost", "pw")
		if !errors.Is(err, ErrCredencialesInvalidas) {
			t.Fatalf("expected ErrCredencialesInvalidas, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByUsername(gomock.Any(), "ana").Return(entities.User{
			Usuario: "ana", PasswordHash: hashFor(t, "correcta"), Rol: entities.RoleLider,
		}, nil)

		_, err := uc.Login(context.Background(), "ana", "incorrecta")
		if !errors.Is(err, ErrCredencialesInvalidas) {
			t.Fatalf("expected ErrCredencialesInvalidas, got %v", err)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByUsername(gomock.Any(), "ana").Return(entities.User{}, errors.New("db"))

		_, err := uc.Login(context.Background(), "ana", "pw")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(users, tokens)

		user := entities.User{
			Usuario: "ana", Nombre: "Ana", PasswordHash: hashFor(t, "correcta"), Rol: entities.RoleLider,
		}
		users.EXPECT().GetByUsername(gomock.Any(), "ana").Return(user, nil)
		tokens.EXPECT().Issue(user).Return("signed-token", nil)

		res, err := uc.Login(context.Background(), " ana ", "correcta")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "signed-token" {
			t.Fatalf("expected issued token, got %q", res.Token)
		}
		if res.User.Rol != entities.RoleLider {
			t.Fatalf("expected user echoed back, got %+v", res.User)
		}
	})
}
