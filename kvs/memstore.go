package kvs

import (
	"context"
	"sync"

	"github.com/sgostarter/i/commerr"
)

// NewMemStore returns an in-memory Store, used in tests and
// single-process runs.
func NewMemStore() Store {
	return &memStore{
		ds: make(map[string][]byte),
	}
}

type memStore struct {
	lock sync.RWMutex
	ds   map[string][]byte
}

func (impl *memStore) Get(_ context.Context, key string) ([]byte, error) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	d, ok := impl.ds[key]
	if !ok {
		return nil, commerr.ErrNotFound
	}

	return append([]byte{}, d...), nil
}

func (impl *memStore) Set(_ context.Context, key string, value []byte) error {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.ds[key] = append([]byte{}, value...)

	return nil
}

func (impl *memStore) MGet(ctx context.Context, keys ...string) ([][]byte, error) {
	ds := make([][]byte, len(keys))

	for i, key := range keys {
		d, err := impl.Get(ctx, key)
		if err != nil {
			continue
		}

		ds[i] = d
	}

	return ds, nil
}

func (impl *memStore) Del(_ context.Context, keys ...string) error {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	for _, key := range keys {
		delete(impl.ds, key)
	}

	return nil
}
