// Package kvstore provides the string key-value stores the catalog and rating maps persist to.
package kvstore

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a namespaced string key-value store. Implementations must be safe for
// concurrent use; writes are last-write-wins.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key joins a namespace and key parts with ':'. Empty parts are skipped.
func Key(namespace string, parts ...string) string {
	all := make([]string, 0, len(parts)+1)
	for _, p := range append([]string{namespace}, parts...) {
		if p != "" {
			all = append(all, p)
		}
	}
	return strings.Join(all, ":")
}
