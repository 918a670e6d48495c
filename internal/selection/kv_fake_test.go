package selection_test

import (
	"context"
	"sync"

	"github.com/iliyamo/venue-seat-selection/internal/storage"
)

// fakeKVStore is an in-memory KVStore for unit tests.  failSets makes
// the next N Set calls report quota exhaustion, letting tests exercise
// the retry-after-delete path.
type fakeKVStore struct {
	mu       sync.Mutex
	data     map[string]string
	failSets int
	setCalls int
	removes  int
}

func newFakeKVStore() *fakeKVStore {
	return &fakeKVStore{data: make(map[string]string)}
}

func (f *fakeKVStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return "", storage.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeKVStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.failSets > 0 {
		f.failSets--
		return storage.ErrQuotaExceeded
	}
	f.data[key] = value
	return nil
}

func (f *fakeKVStore) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removes++
	delete(f.data, key)
	return nil
}
