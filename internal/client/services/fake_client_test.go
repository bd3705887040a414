package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/shopkeeper/internal/client/client"
	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/stretchr/testify/require"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	LoginRet string
	LoginErr error

	ProfileRet models.User
	ProfileErr error

	UsersRet []models.User
	UsersErr error

	CreateRet models.User
	CreateErr error

	ProductsRet []models.Product
	ProductsErr error

	CloseCalled bool

	LoginCalls   int
	ListCalls    int
	CreateCalls  int
	LastEmail    string
	LastPassword string
	LastToken    string
	LastCreate   models.NewUser
}

func (f *fakeClient) Close() error { f.CloseCalled = true; return nil }

func (f *fakeClient) Login(_ context.Context, email, password string) (string, error) {
	f.LoginCalls++
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Profile(_ context.Context, token string) (models.User, error) {
	f.LastToken = token
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) {
	f.ListCalls++
	if f.UsersErr != nil {
		return nil, f.UsersErr
	}
	return append([]models.User(nil), f.UsersRet...), nil
}

func (f *fakeClient) CreateUser(_ context.Context, u models.NewUser) (models.User, error) {
	f.CreateCalls++
	f.LastCreate = u
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) ListProducts(context.Context) ([]models.Product, error) {
	if f.ProductsErr != nil {
		return nil, f.ProductsErr
	}
	return f.ProductsRet, nil
}

var _ client.Client = (*fakeClient)(nil)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.OpenDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
