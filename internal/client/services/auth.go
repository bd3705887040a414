package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/client/client"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

// AuthService defines authentication operations.
//
// Contract:
//   - Submit: exchange email/password for an opaque bearer token. Any
//     failure matches common.ErrAuthentication; empty input also matches
//     common.ErrValidation and never reaches the API. Nothing is persisted.
//   - Profile: return the display name of the token's owner.
//   - Close: release underlying client resources.
type AuthService interface {
	Submit(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, token string) (string, error)
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client, log logging.Logger) AuthService {
	return &authService{client: client, log: log}
}

func (a *authService) Submit(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: %w: email and password are required", common.ErrAuthentication, common.ErrValidation)
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.log.Debug(ctx, "login rejected", "error", err)
		return "", fmt.Errorf("%w: %w", common.ErrAuthentication, err)
	}
	return token, nil
}

func (a *authService) Profile(ctx context.Context, token string) (string, error) {
	u, err := a.client.Profile(ctx, token)
	if err != nil {
		return "", fmt.Errorf("profile error: %w", err)
	}
	return u.Name, nil
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
