package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/shopkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
)

// SessionStore persists the session across restarts.
//
//   - Save writes token and display name; last write wins.
//   - Load returns whatever is stored; an empty token means "not logged in".
//   - Clear removes both values and is a no-op on an empty store.
type SessionStore interface {
	Save(ctx context.Context, token, userName string) error
	Load(ctx context.Context) (token, userName string, err error)
	Clear(ctx context.Context) error
}

type sqliteSessionStore struct {
	db *sql.DB
}

// NewSessionStore returns a SessionStore over the metadata table of db.
func NewSessionStore(db *sql.DB) SessionStore {
	return &sqliteSessionStore{db: db}
}

// Save writes both keys in one transaction, so a reader never sees a token
// paired with a stale name.
func (s *sqliteSessionStore) Save(ctx context.Context, token, userName string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionTokenKey, token); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionUserNameKey, userName)
	})
}

func (s *sqliteSessionStore) Load(ctx context.Context) (string, string, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, _, err := repo.Get(ctx, common.SessionTokenKey)
	if err != nil {
		return "", "", err
	}
	name, _, err := repo.Get(ctx, common.SessionUserNameKey)
	if err != nil {
		return "", "", err
	}
	return token, name, nil
}

func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, common.SessionTokenKey, common.SessionUserNameKey)
}
