package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"cinema-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func catalog() entity.Catalog {
	return entity.Catalog{
		{ID: 1, Title: "Joker", VoteAverage: 8.2},
		{ID: 2, Title: "Parasite", VoteAverage: 8.6},
	}
}

func TestStore_InitialState(t *testing.T) {
	s := New()
	snap := s.Snapshot()

	assert.Nil(t, snap.Catalog)
	assert.Nil(t, snap.Active)
	assert.False(t, s.HasCatalog())
}

func TestStore_SetCatalogAndActive(t *testing.T) {
	s := New()
	c := catalog()

	s.Dispatch(SetCatalog{Catalog: c})
	require.True(t, s.HasCatalog())

	s.Dispatch(SetActiveMovie{Movie: &c[1]})
	snap := s.Snapshot()
	require.NotNil(t, snap.Active)
	assert.Equal(t, 2, snap.Active.ID)

	s.Dispatch(SetActiveMovie{Movie: nil})
	assert.Nil(t, s.Snapshot().Active)
}

func TestStore_SetCatalogRefreshesActive(t *testing.T) {
	s := New()
	c := catalog()
	s.Dispatch(SetCatalog{Catalog: c})
	s.Dispatch(SetActiveMovie{Movie: &c[0]})

	updated := catalog()
	updated[0].VoteAverage = 9.1
	s.Dispatch(SetCatalog{Catalog: updated})
	assert.Equal(t, 9.1, s.Snapshot().Active.VoteAverage)

	s.Dispatch(SetCatalog{Catalog: updated[1:]})
	assert.Nil(t, s.Snapshot().Active)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := New()
	c := catalog()
	s.Dispatch(SetCatalog{Catalog: c})

	c[0].Title = "mutated after dispatch"
	snap := s.Snapshot()
	snap.Catalog[1].Title = "mutated snapshot"

	again := s.Snapshot()
	assert.Equal(t, "Joker", again.Catalog[0].Title)
	assert.Equal(t, "Parasite", again.Catalog[1].Title)
}

func TestStore_RateMovie(t *testing.T) {
	s := New()
	s.Dispatch(RateMovie{MovieID: 1, Value: 7})
	s.Dispatch(RateMovie{MovieID: 1, Value: 9})
	s.Dispatch(RateMovie{MovieID: 2, Value: 4})

	assert.Equal(t, entity.UserRatingMap{1: 9, 2: 4}, s.Snapshot().Ratings)

	s.Dispatch(SetRatings{Ratings: entity.UserRatingMap{5: 1}})
	assert.Equal(t, entity.UserRatingMap{5: 1}, s.Snapshot().Ratings)
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	s := New()

	var got []State
	unsubscribe := s.Subscribe(func(st State) { got = append(got, st) })

	s.Dispatch(SetCatalog{Catalog: catalog()})
	s.Dispatch(RateMovie{MovieID: 2, Value: 10})
	require.Len(t, got, 2)
	assert.Len(t, got[0].Catalog, 2)
	assert.Equal(t, 10.0, got[1].Ratings[2])

	unsubscribe()
	unsubscribe()
	s.Dispatch(SetCatalog{Catalog: nil})
	assert.Len(t, got, 2)
}

func TestStore_ListenerMayReadStore(t *testing.T) {
	s := New()
	var seen bool
	s.Subscribe(func(State) { seen = s.HasCatalog() })

	s.Dispatch(SetCatalog{Catalog: catalog()})
	assert.True(t, seen)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Dispatch(RateMovie{MovieID: i, Value: float64(i % 10)})
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Snapshot().Ratings, 50)
}

func TestRegistry_OneStorePerClient(t *testing.T) {
	r := NewRegistry(time.Hour)
	a, b := uuid.New(), uuid.New()

	assert.Same(t, r.Get(a), r.Get(a))
	assert.NotSame(t, r.Get(a), r.Get(b))
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_PrunesIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Minute)
	r.now = func() time.Time { return now }

	idle, active := uuid.New(), uuid.New()
	r.Get(idle)
	now = now.Add(50 * time.Second)
	r.Get(active)
	now = now.Add(20 * time.Second)

	assert.Equal(t, 1, r.Prune())
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SweepPrunesUntilCancelled(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Minute)
	r.now = func() time.Time { return start }
	r.Get(uuid.New())
	r.Get(uuid.New())
	require.Equal(t, 2, r.Len())

	r.mu.Lock()
	r.now = func() time.Time { return start.Add(time.Hour) }
	r.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Sweep(ctx, time.Millisecond, zap.NewNop())
	}()

	assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep did not stop after cancel")
	}
}

func TestRegistry_SweepWithoutTTLReturns(t *testing.T) {
	r := NewRegistry(0)
	r.Get(uuid.New())

	r.Sweep(context.Background(), time.Millisecond, zap.NewNop())
	assert.Equal(t, 1, r.Len())
}
