package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/internal/dto/request"
	"cinema-catalog/internal/dto/response"
	"cinema-catalog/internal/state"
	"cinema-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingService interface {
	// SubmitRating records the client's rating and folds it into the movie's average.
	SubmitRating(ctx context.Context, store *state.Store, clientID uuid.UUID, movieID string, req *request.RatingRequest) (*response.RatingResponse, error)
	// GetUserRatings loads the client's ratings into its store and returns them.
	GetUserRatings(ctx context.Context, store *state.Store, clientID uuid.UUID) (entity.UserRatingMap, error)
}

type ratingService struct {
	repo    repository.RatingRepository
	catalog CatalogService
	log     *zap.Logger
	mu      sync.Mutex
}

func NewRatingService(repo repository.RatingRepository, catalog CatalogService, log *zap.Logger) RatingService {
	return &ratingService{
		repo:    repo,
		catalog: catalog,
		log:     log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) SubmitRating(ctx context.Context, store *state.Store, clientID uuid.UUID, movieID string, req *request.RatingRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRating, utils.FormatValidationErrors(errs))
	}

	id, ok := utils.ParseMovieID(movieID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMovieID, movieID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ratings, err := s.repo.Load(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("submit rating: %w", err)
	}

	var previous *float64
	if v, ok := ratings[id]; ok {
		previous = &v
	}

	// The client's map is written before the catalog and restored if the
	// catalog write fails, so a stored vote is always replaced on retry.
	updated := ratings.Clone()
	if updated == nil {
		updated = entity.UserRatingMap{}
	}
	updated[id] = req.Value
	if err := s.repo.Save(ctx, clientID, updated); err != nil {
		return nil, fmt.Errorf("submit rating: %w", err)
	}

	catalog, movie, err := s.catalog.UpdateMovie(ctx, id, func(m *entity.Movie) error {
		m.VoteAverage, m.VoteCount = aggregateRating(m.VoteAverage, m.VoteCount, req.Value, previous)
		return nil
	})
	if err != nil {
		s.log.Warn("Failed to aggregate rating",
			zap.Error(err),
			zap.Int("movie_id", id),
			zap.String("client_id", clientID.String()),
		)
		if rbErr := s.repo.Save(ctx, clientID, ratings); rbErr != nil {
			s.log.Error("Failed to restore ratings after aggregation error",
				zap.Error(rbErr),
				zap.Int("movie_id", id),
				zap.String("client_id", clientID.String()),
			)
		}
		return nil, err
	}

	store.Dispatch(state.SetCatalog{Catalog: catalog})
	store.Dispatch(state.SetRatings{Ratings: ratings})
	store.Dispatch(state.RateMovie{MovieID: id, Value: req.Value})

	s.log.Info("Rating submitted",
		zap.Int("movie_id", id),
		zap.String("client_id", clientID.String()),
		zap.Float64("value", req.Value),
		zap.Bool("replaced", previous != nil),
		zap.Float64("vote_average", movie.VoteAverage),
	)

	return &response.RatingResponse{
		MovieID:       id,
		Value:         req.Value,
		PreviousValue: previous,
		VoteAverage:   movie.VoteAverage,
		VoteCount:     movie.VoteCount,
	}, nil
}

func (s *ratingService) GetUserRatings(ctx context.Context, store *state.Store, clientID uuid.UUID) (entity.UserRatingMap, error) {
	ratings, err := s.repo.Load(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get user ratings: %w", err)
	}

	store.Dispatch(state.SetRatings{Ratings: ratings})
	return ratings, nil
}

// aggregateRating folds value into an average over count votes. A previous vote
// from the same client is replaced rather than counted twice. The result is
// rounded to two decimals.
func aggregateRating(avg float64, count int, value float64, previous *float64) (float64, int) {
	total := avg * float64(count)
	if previous != nil && count > 0 {
		total += value - *previous
	} else {
		total += value
		count++
	}
	return math.Round(total/float64(count)*100) / 100, count
}
