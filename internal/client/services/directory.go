package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/shopkeeper/internal/client/client"
	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

// Directory holds the last fetched user list and the search view over it.
//
// A failed Refresh empties the list instead of keeping the previous one;
// callers that need last-known-good data must keep their own copy.
type Directory struct {
	client        client.Client
	log           logging.Logger
	defaultAvatar string

	mu      sync.RWMutex
	users   []models.User
	visible []models.User
	query   string
}

func NewDirectory(c client.Client, defaultAvatar string, log logging.Logger) *Directory {
	return &Directory{client: c, defaultAvatar: defaultAvatar, log: log}
}

// Refresh replaces the list with the remote one in server order and resets
// the search. On failure the list becomes empty and the error matches
// common.ErrFetch.
func (d *Directory) Refresh(ctx context.Context) error {
	users, err := d.client.ListUsers(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.query = ""
	if err != nil {
		d.users = []models.User{}
		d.visible = []models.User{}
		return fmt.Errorf("%w: users: %w", common.ErrFetch, err)
	}
	d.users = users
	d.visible = users
	return nil
}

// Users returns a copy of the full last fetched list.
func (d *Directory) Users() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.User{}, d.users...)
}

// Visible returns a copy of the list filtered by the current query.
func (d *Directory) Visible() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.User{}, d.visible...)
}

func (d *Directory) Query() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.query
}

// Search filters the last fetched list by case-insensitive substring on
// name or email. It never calls the remote API. An empty query restores the
// full list.
func (d *Directory) Search(q string) []models.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.query = q
	if q == "" {
		d.visible = d.users
		return append([]models.User{}, d.visible...)
	}

	filtered := make([]models.User, 0, len(d.users))
	for _, u := range d.users {
		if u.Matches(q) {
			filtered = append(filtered, u)
		}
	}
	d.visible = filtered
	return append([]models.User{}, filtered...)
}

// Create validates nu, posts it and refetches the whole list.
//
// Missing name, email or password fails with common.ErrValidation before
// any remote call. A remote failure matches common.ErrCreate and leaves the
// list untouched. A failed refetch after a successful create is only logged.
func (d *Directory) Create(ctx context.Context, nu models.NewUser) error {
	if missing := nu.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", common.ErrValidation, strings.Join(missing, ", "))
	}
	if nu.Avatar == "" {
		nu.Avatar = d.defaultAvatar
	}

	created, err := d.client.CreateUser(ctx, nu)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrCreate, err)
	}
	d.log.Info(ctx, "user created", "id", created.ID, "email", created.Email)

	if err := d.Refresh(ctx); err != nil {
		d.log.Warn(ctx, "refetch after create failed", "error", err)
	}
	return nil
}
