package usecase

import (
	"context"
	"testing"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/dto/request"
	"cinema-catalog/internal/state"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateRating(t *testing.T) {
	prev := 4.0

	tests := []struct {
		name      string
		avg       float64
		count     int
		value     float64
		previous  *float64
		wantAvg   float64
		wantCount int
	}{
		{"first vote", 0, 0, 8, nil, 8, 1},
		{"new vote", 7, 2, 10, nil, 8, 3},
		{"replaces earlier vote", 7, 2, 10, &prev, 10, 2},
		{"previous with no count counts once", 0, 0, 6, &prev, 6, 1},
		{"rounds to two decimals", 8.2, 3, 9, nil, 8.4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, count := aggregateRating(tt.avg, tt.count, tt.value, tt.previous)
			assert.InDelta(t, tt.wantAvg, avg, 1e-9)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestSubmitRating_NewAndReplace(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(newCountingStore())
	client := uuid.New()
	st := state.New()

	res, err := svc.Rating.SubmitRating(ctx, st, client, "10", &request.RatingRequest{Value: 10})
	require.NoError(t, err)
	assert.Nil(t, res.PreviousValue)
	assert.Equal(t, 3, res.VoteCount)
	assert.InDelta(t, 8.0, res.VoteAverage, 1e-9)

	res, err = svc.Rating.SubmitRating(ctx, st, client, "10", &request.RatingRequest{Value: 4})
	require.NoError(t, err)
	require.NotNil(t, res.PreviousValue)
	assert.Equal(t, 10.0, *res.PreviousValue)
	assert.Equal(t, 3, res.VoteCount)
	assert.InDelta(t, 6.0, res.VoteAverage, 1e-9)

	ratings, err := repo.Rating.Load(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, entity.UserRatingMap{10: 4}, ratings)

	stored, err := repo.Catalog.Load(ctx)
	require.NoError(t, err)
	m, _ := stored.FindByID(10)
	assert.Equal(t, 3, m.VoteCount)

	snap := st.Snapshot()
	assert.Equal(t, entity.UserRatingMap{10: 4}, snap.Ratings)
	sm, _ := snap.Catalog.FindByID(10)
	assert.InDelta(t, 6.0, sm.VoteAverage, 1e-9)
}

func TestSubmitRating_ClientsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(newCountingStore())

	_, err := svc.Rating.SubmitRating(ctx, state.New(), uuid.New(), "20", &request.RatingRequest{Value: 8})
	require.NoError(t, err)
	res, err := svc.Rating.SubmitRating(ctx, state.New(), uuid.New(), "20", &request.RatingRequest{Value: 10})
	require.NoError(t, err)

	assert.Nil(t, res.PreviousValue)
	assert.Equal(t, 3, res.VoteCount)
	assert.InDelta(t, 8.0, res.VoteAverage, 1e-9)
}

func TestSubmitRating_Errors(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(newCountingStore())
	client := uuid.New()

	for _, v := range []float64{0, 11, -1} {
		_, err := svc.Rating.SubmitRating(ctx, state.New(), client, "10", &request.RatingRequest{Value: v})
		assert.ErrorIs(t, err, ErrInvalidRating, "value %v", v)
	}

	_, err := svc.Rating.SubmitRating(ctx, state.New(), client, "ten", &request.RatingRequest{Value: 5})
	assert.ErrorIs(t, err, ErrInvalidMovieID)

	_, err = svc.Rating.SubmitRating(ctx, state.New(), client, "404", &request.RatingRequest{Value: 5})
	assert.ErrorIs(t, err, ErrMovieNotFound)

	ratings, err := repo.Rating.Load(ctx, client)
	require.NoError(t, err)
	assert.Empty(t, ratings, "failed submissions must not be recorded")
}

func TestGetUserRatings(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(newCountingStore())
	client := uuid.New()
	require.NoError(t, repo.Rating.Save(ctx, client, entity.UserRatingMap{30: 7}))

	st := state.New()
	got, err := svc.Rating.GetUserRatings(ctx, st, client)
	require.NoError(t, err)
	assert.Equal(t, entity.UserRatingMap{30: 7}, got)
	assert.Equal(t, entity.UserRatingMap{30: 7}, st.Snapshot().Ratings)
}

func TestSubmitRating_RatingsWriteFailureLeavesCatalogUntouched(t *testing.T) {
	ctx := context.Background()
	store := newKeyFailStore(":ratings:")
	svc, repo := newTestService(store)
	client := uuid.New()

	_, err := svc.Catalog.ResolveCatalog(ctx)
	require.NoError(t, err)

	store.setFail(errStorageDown)
	_, err = svc.Rating.SubmitRating(ctx, state.New(), client, "10", &request.RatingRequest{Value: 10})
	assert.ErrorIs(t, err, errStorageDown)

	stored, err := repo.Catalog.Load(ctx)
	require.NoError(t, err)
	m, _ := stored.FindByID(10)
	assert.Equal(t, 2, m.VoteCount)
	assert.InDelta(t, 7.0, m.VoteAverage, 1e-9)

	store.setFail(nil)
	res, err := svc.Rating.SubmitRating(ctx, state.New(), client, "10", &request.RatingRequest{Value: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, res.VoteCount)
	assert.InDelta(t, 8.0, res.VoteAverage, 1e-9)
}

func TestSubmitRating_CatalogWriteFailureRestoresRatings(t *testing.T) {
	ctx := context.Background()
	store := newKeyFailStore("moviesDb")
	svc, repo := newTestService(store)
	client := uuid.New()

	_, err := svc.Catalog.ResolveCatalog(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Rating.Save(ctx, client, entity.UserRatingMap{30: 7}))

	store.setFail(errStorageDown)
	_, err = svc.Rating.SubmitRating(ctx, state.New(), client, "10", &request.RatingRequest{Value: 10})
	assert.ErrorIs(t, err, errStorageDown)

	ratings, err := repo.Rating.Load(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, entity.UserRatingMap{30: 7}, ratings)

	// The retry is a first vote, counted once.
	store.setFail(nil)
	res, err := svc.Rating.SubmitRating(ctx, state.New(), client, "10", &request.RatingRequest{Value: 10})
	require.NoError(t, err)
	assert.Nil(t, res.PreviousValue)
	assert.Equal(t, 3, res.VoteCount)
}

func TestSubmitRating_RecordsVoteInClientState(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(newCountingStore())
	client := uuid.New()
	require.NoError(t, repo.Rating.Save(ctx, client, entity.UserRatingMap{30: 7}))

	st := state.New()
	var seen []entity.UserRatingMap
	st.Subscribe(func(s state.State) { seen = append(seen, s.Ratings) })

	_, err := svc.Rating.SubmitRating(ctx, st, client, "20", &request.RatingRequest{Value: 9})
	require.NoError(t, err)

	assert.Equal(t, entity.UserRatingMap{30: 7, 20: 9}, st.Snapshot().Ratings)
	require.NotEmpty(t, seen)
	assert.Equal(t, entity.UserRatingMap{30: 7, 20: 9}, seen[len(seen)-1])
}
