package kvs

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
)

// NewRedisStore wraps an injected redis client as a Store. The client
// is a capability handed in by the orchestration layer, never opened
// here.
func NewRedisStore(redisCli *redis.Client, logger l.Wrapper) Store {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisStore"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisStore{
		logger:   logger,
		redisCli: redisCli,
	}
}

type redisStore struct {
	logger   l.Wrapper
	redisCli *redis.Client
}

func (impl *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	d, err := impl.redisCli.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, commerr.ErrNotFound
	}

	return d, err
}

func (impl *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return impl.redisCli.Set(ctx, key, value, 0).Err()
}

func (impl *redisStore) MGet(ctx context.Context, keys ...string) ([][]byte, error) {
	vs, err := impl.redisCli.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	ds := make([][]byte, len(vs))

	for i, v := range vs {
		if v == nil {
			continue
		}

		if s, ok := v.(string); ok {
			ds[i] = []byte(s)
		}
	}

	return ds, nil
}

func (impl *redisStore) Del(ctx context.Context, keys ...string) error {
	return impl.redisCli.Del(ctx, keys...).Err()
}
