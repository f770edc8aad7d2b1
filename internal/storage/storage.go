package storage

import "context"

// Store is a keyed record store. Each key holds one whole JSON-serialized
// value; callers read and write values as a unit, never per field.
//
// Read reports absence via the bool rather than an error: a missing record is
// a normal state (fresh install), not a failure. Corrupt values are the
// caller's concern — the store hands back raw bytes and the caller decides
// whether they parse.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, bool, error)
	Write(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}
