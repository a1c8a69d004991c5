package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"
)

var (
	ErrMissingCredentials = errors.New("missing email or password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthUnavailable    = errors.New("authentication service unavailable")
)

// IAuthUseCase exposes staff login and logout.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.StaffUser, error)
	Logout(ctx context.Context, accessToken string)
}

type AuthUseCase struct {
	gateway interfaces.IAuthGateway
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(gateway interfaces.IAuthGateway) *AuthUseCase {
	return &AuthUseCase{gateway: gateway}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.StaffUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.StaffUser{}, ErrMissingCredentials
	}
	if u.gateway == nil {
		return entities.StaffUser{}, ErrAuthUnavailable
	}

	user, err := u.gateway.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, interfaces.ErrSignInDenied) {
			return entities.StaffUser{}, ErrInvalidCredentials
		}
		log.Printf("[auth][usecase] sign-in failed email=%s err=%v", email, err)
		return entities.StaffUser{}, ErrAuthUnavailable
	}
	return user, nil
}

// Logout revokes the remote session best-effort. The caller clears the local
// session regardless, so a failed revocation only gets logged.
func (u *AuthUseCase) Logout(ctx context.Context, accessToken string) {
	if u.gateway == nil || accessToken == "" {
		return
	}
	if err := u.gateway.SignOut(ctx, accessToken); err != nil {
		log.Printf("[auth][usecase] remote sign-out failed err=%v", err)
	}
}
