// Package metadata is the key/value persistence collaborator. Values live in
// a single SQLite table partitioned by namespace, so the auth record and the
// remember-me record can be read, written and cleared independently.
package metadata

import (
	"context"
)

// Well-known namespaces.
const (
	NamespaceAuth       = "auth"
	NamespaceRememberMe = "remember_me"
)

// Repository is a key/value view over one namespace.
//
// Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
