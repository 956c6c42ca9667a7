package kvs

import "context"

// Store is the key-value cache used to exchange intermediate data
// between workers. The core never owns or constructs the underlying
// connection, it is supplied by the orchestration layer.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	MGet(ctx context.Context, keys ...string) ([][]byte, error)
	Del(ctx context.Context, keys ...string) error
}
