package interfaces

import (
	"context"
	"errors"

	"repairdesk/internal/domain/entities"
)

//go:generate mockgen -source=auth_gateway_interface.go -destination=mocks/auth_gateway_mock.go -package=mock_interfaces

// ErrSignInDenied is returned by SignIn implementations when the provider
// rejected the credentials, as opposed to being unreachable.
var ErrSignInDenied = errors.New("sign-in denied")

// IAuthGateway abstracts the hosted identity provider (Cognito user pool).
//
// SignIn exchanges staff credentials for the user's id and email plus an
// access token; SignOut revokes that token remotely. SignOut failures are
// treated as non-fatal by callers (the local session is cleared anyway).
type IAuthGateway interface {
	SignIn(ctx context.Context, email, password string) (entities.StaffUser, error)
	SignOut(ctx context.Context, accessToken string) error
}
