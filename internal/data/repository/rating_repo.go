package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/pkg/kvstore"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingRepository interface {
	// Load never returns ErrNotFound: a client without ratings gets an empty map.
	Load(ctx context.Context, clientID uuid.UUID) (entity.UserRatingMap, error)
	Save(ctx context.Context, clientID uuid.UUID, ratings entity.UserRatingMap) error
}

type ratingRepository struct {
	store     kvstore.Store
	namespace string
	log       *zap.Logger
}

func NewRatingRepository(store kvstore.Store, namespace string, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		store:     store,
		namespace: namespace,
		log:       log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) key(clientID uuid.UUID) string {
	return kvstore.Key(r.namespace, ratingsPrefix, clientID.String())
}

func (r *ratingRepository) Load(ctx context.Context, clientID uuid.UUID) (entity.UserRatingMap, error) {
	key := r.key(clientID)

	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return entity.UserRatingMap{}, nil
	}
	if err != nil {
		r.log.Error("Failed to read ratings",
			zap.Error(err),
			zap.String("client_id", clientID.String()),
		)
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	ratings := entity.UserRatingMap{}
	if strings.TrimSpace(raw) == "" {
		return ratings, nil
	}

	if err := json.Unmarshal([]byte(raw), &ratings); err != nil {
		r.log.Warn("Stored ratings are malformed, starting empty",
			zap.Error(err),
			zap.String("client_id", clientID.String()),
		)
		return entity.UserRatingMap{}, nil
	}
	if ratings == nil {
		ratings = entity.UserRatingMap{}
	}

	return ratings, nil
}

func (r *ratingRepository) Save(ctx context.Context, clientID uuid.UUID, ratings entity.UserRatingMap) error {
	if ratings == nil {
		ratings = entity.UserRatingMap{}
	}

	payload, err := json.Marshal(ratings)
	if err != nil {
		return fmt.Errorf("encode ratings: %w", err)
	}

	if err := r.store.Set(ctx, r.key(clientID), string(payload)); err != nil {
		r.log.Error("Failed to write ratings",
			zap.Error(err),
			zap.String("client_id", clientID.String()),
		)
		return fmt.Errorf("save ratings: %w", err)
	}

	return nil
}
