package usecase

import (
	"context"
	"errors"
	"testing"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"
	mock_interfaces "repairdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		_, err := uc.Login(context.Background(), "   ", "secret")
		if !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
		_, err = uc.Login(context.Background(), "staff@example.com", "")
		if !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		_, err := uc.Login(context.Background(), "staff@example.com", "secret")
		if !errors.Is(err, ErrAuthUnavailable) {
			t.Fatalf("expected ErrAuthUnavailable, got %v", err)
		}
	})

	t.Run("denied sign-in maps to invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAuthGateway(ctrl)
		uc := NewAuthUseCase(gateway)

		gateway.EXPECT().SignIn(gomock.Any(), "staff@example.com", "wrong").
			Return(entities.StaffUser{}, interfaces.ErrSignInDenied)

		_, err := uc.Login(context.Background(), "staff@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("gateway failure maps to unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAuthGateway(ctrl)
		uc := NewAuthUseCase(gateway)

		gateway.EXPECT().SignIn(gomock.Any(), "staff@example.com", "secret").
			Return(entities.StaffUser{}, errors.New("timeout"))

		_, err := uc.Login(context.Background(), "staff@example.com", "secret")
		if !errors.Is(err, ErrAuthUnavailable) {
			t.Fatalf("expected ErrAuthUnavailable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAuthGateway(ctrl)
		uc := NewAuthUseCase(gateway)

		gateway.EXPECT().SignIn(gomock.Any(), "staff@example.com", "secret").
			Return(entities.StaffUser{ID: "u-1", Email: "staff@example.com", AccessToken: "tok"}, nil)

		user, err := uc.Login(context.Background(), "  staff@example.com  ", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u-1" || user.AccessToken != "tok" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	t.Run("no gateway or token is a no-op", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		uc.Logout(context.Background(), "tok")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAuthGateway(ctrl)
		NewAuthUseCase(gateway).Logout(context.Background(), "")
	})

	t.Run("revocation failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAuthGateway(ctrl)
		uc := NewAuthUseCase(gateway)

		gateway.EXPECT().SignOut(gomock.Any(), "tok").Return(errors.New("revoked already"))

		uc.Logout(context.Background(), "tok")
	})
}
