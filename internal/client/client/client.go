package client

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
)

// Client is the store API as seen by the services.
type Client interface {
	Close() error
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, token string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u models.NewUser) (models.User, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}
