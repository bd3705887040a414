// Package metadata is the local key/value table backing the session store.
package metadata

import (
	"context"
)

// Repository is a string key/value store. Get reports absence with
// ok == false rather than an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
}
