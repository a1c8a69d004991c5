package auth

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

var ErrMissingCognitoClientID = errors.New("missing COGNITO_USER_POOL_CLIENT_ID")
var ErrAuthGatewayNotConfigured = errors.New("auth gateway not configured")

// CognitoGateway authenticates staff against a Cognito user pool using the
// USER_PASSWORD_AUTH flow.
//
// Supported env vars:
//   - COGNITO_USER_POOL_CLIENT_ID (required)
//   - COGNITO_ENDPOINT (optional; e.g. http://cognito-local:9229)
//   - AUTH_GATEWAY_MOCK (accept any non-empty credentials; local dev only)
type CognitoGateway struct {
	client   *cognitoidentityprovider.Client
	clientID string
	mockMode bool
}

var _ interfaces.IAuthGateway = (*CognitoGateway)(nil)

func NewCognitoGateway(cfg aws.Config, clientID string) (*CognitoGateway, error) {
	if isAuthGatewayMockEnabled() {
		log.Printf("[auth][gateway] mock mode enabled")
		return &CognitoGateway{mockMode: true}, nil
	}

	if clientID == "" {
		log.Printf("[auth][gateway] missing COGNITO_USER_POOL_CLIENT_ID")
		return nil, ErrMissingCognitoClientID
	}

	client := cognitoidentityprovider.NewFromConfig(cfg, func(o *cognitoidentityprovider.Options) {
		if endpoint := os.Getenv("COGNITO_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &CognitoGateway{client: client, clientID: clientID}, nil
}

func (g *CognitoGateway) SignIn(ctx context.Context, email, password string) (entities.StaffUser, error) {
	if g != nil && g.mockMode {
		if email == "" || password == "" {
			return entities.StaffUser{}, interfaces.ErrSignInDenied
		}
		log.Printf("[auth][gateway] mock sign-in email=%s", email)
		return entities.StaffUser{ID: "mock-" + email, Email: email, AccessToken: "mock-token"}, nil
	}

	if g == nil || g.client == nil {
		return entities.StaffUser{}, ErrAuthGatewayNotConfigured
	}

	out, err := g.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: cognitotypes.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(g.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		var notAuthorized *cognitotypes.NotAuthorizedException
		var userNotFound *cognitotypes.UserNotFoundException
		if errors.As(err, &notAuthorized) || errors.As(err, &userNotFound) {
			return entities.StaffUser{}, interfaces.ErrSignInDenied
		}
		log.Printf("[auth][gateway] initiate-auth failed err=%v", err)
		return entities.StaffUser{}, err
	}
	if out.AuthenticationResult == nil || out.AuthenticationResult.AccessToken == nil {
		// Challenge flows (MFA, forced password reset) are not supported by
		// the staff login form.
		log.Printf("[auth][gateway] sign-in returned a challenge instead of tokens")
		return entities.StaffUser{}, interfaces.ErrSignInDenied
	}
	token := aws.ToString(out.AuthenticationResult.AccessToken)

	user, err := g.client.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(token),
	})
	if err != nil {
		log.Printf("[auth][gateway] get-user failed err=%v", err)
		return entities.StaffUser{}, err
	}

	staff := entities.StaffUser{Email: email, AccessToken: token}
	for _, attr := range user.UserAttributes {
		switch aws.ToString(attr.Name) {
		case "sub":
			staff.ID = aws.ToString(attr.Value)
		case "email":
			staff.Email = aws.ToString(attr.Value)
		}
	}
	if staff.ID == "" {
		staff.ID = aws.ToString(user.Username)
	}

	log.Printf("[auth][gateway] sign-in success user_id=%s", staff.ID)
	return staff, nil
}

func (g *CognitoGateway) SignOut(ctx context.Context, accessToken string) error {
	if g != nil && g.mockMode {
		return nil
	}
	if g == nil || g.client == nil {
		return ErrAuthGatewayNotConfigured
	}
	if accessToken == "" {
		return nil
	}

	_, err := g.client.GlobalSignOut(ctx, &cognitoidentityprovider.GlobalSignOutInput{
		AccessToken: aws.String(accessToken),
	})
	return err
}

func isAuthGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("AUTH_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
