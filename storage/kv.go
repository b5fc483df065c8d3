package storage

import "context"

// KV is collection-level key-value storage. A value is the whole JSON document
// for one collection; Set replaces the previous value in full, so the last
// writer wins at key granularity.
type KV interface {
	// Get returns the stored value for key. ok is false when the key has
	// never been written, which is distinct from an empty value.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
