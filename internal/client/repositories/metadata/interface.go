// Package metadata is the client's durable key/value store. The session
// record is kept here under a fixed namespace key.
package metadata

import (
	"context"
)

// Repository stores opaque values by key. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
