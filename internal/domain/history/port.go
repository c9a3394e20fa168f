package history

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

// ErrInvalidEntry rejects entries with an unknown type or risk level.
var ErrInvalidEntry = errors.New("invalid history entry")

// Repository port, the entire history contract. List and Search never fail:
// unreadable state is reported as an empty collection.
type Repository interface {
	Save(ctx context.Context, e Entry) (ScanRecord, error)
	List(ctx context.Context) []ScanRecord
	Search(ctx context.Context, term string) []ScanRecord
	Clear(ctx context.Context) error
}

// KV port for the underlying key/value persistence primitive.
// Delete of an absent key is not an error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
