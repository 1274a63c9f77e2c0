package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/pkg/kvstore"

	"go.uber.org/zap"
)

const testNamespace = "test"

// countingStore records writes on top of a MemoryStore.
type countingStore struct {
	*kvstore.MemoryStore
	mu   sync.Mutex
	sets int
	fail error
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryStore: kvstore.NewMemoryStore()}
}

func (c *countingStore) Get(ctx context.Context, key string) (string, error) {
	if c.fail != nil {
		return "", c.fail
	}
	return c.MemoryStore.Get(ctx, key)
}

func (c *countingStore) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	c.sets++
	c.mu.Unlock()
	if c.fail != nil {
		return c.fail
	}
	return c.MemoryStore.Set(ctx, key, value)
}

func (c *countingStore) Sets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}

// keyFailStore fails writes to keys containing match while fail is set.
type keyFailStore struct {
	*kvstore.MemoryStore
	mu    sync.Mutex
	match string
	fail  error
}

func newKeyFailStore(match string) *keyFailStore {
	return &keyFailStore{MemoryStore: kvstore.NewMemoryStore(), match: match}
}

func (k *keyFailStore) setFail(err error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.fail = err
}

func (k *keyFailStore) Set(ctx context.Context, key, value string) error {
	k.mu.Lock()
	fail := k.fail
	k.mu.Unlock()
	if fail != nil && strings.Contains(key, k.match) {
		return fail
	}
	return k.MemoryStore.Set(ctx, key, value)
}

var errStorageDown = errors.New("storage unavailable")

func testSeed() entity.Catalog {
	return entity.Catalog{
		{ID: 10, Title: "Seed One", Genres: []string{"drama"}, VoteAverage: 7, VoteCount: 2, ReleaseDate: "2019-01-01", Comments: []entity.Comment{}},
		{ID: 20, Title: "Seed Two", Genres: []string{"comedy"}, VoteAverage: 6, VoteCount: 1, ReleaseDate: "2020-06-01", Comments: []entity.Comment{}},
		{ID: 30, Title: "Another", Genres: []string{"drama", "war"}, VoteAverage: 9, VoteCount: 0, ReleaseDate: "2018-03-15", Comments: []entity.Comment{}},
	}
}

func newTestService(store kvstore.Store) (*Service, *repository.Repository) {
	repo := repository.NewRepository(store, testNamespace, zap.NewNop())
	return NewService(repo, testSeed, zap.NewNop()), repo
}
