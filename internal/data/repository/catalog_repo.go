package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/pkg/kvstore"

	"go.uber.org/zap"
)

type CatalogRepository interface {
	// Load returns ErrNotFound when the key is absent, blank, null or unparseable.
	Load(ctx context.Context) (entity.Catalog, error)
	// Save overwrites the stored catalog.
	Save(ctx context.Context, catalog entity.Catalog) error
}

type catalogRepository struct {
	store kvstore.Store
	key   string
	log   *zap.Logger
}

func NewCatalogRepository(store kvstore.Store, namespace string, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		store: store,
		key:   kvstore.Key(namespace, catalogKey),
		log:   log.With(zap.String("repository", "catalog")),
	}
}

func (r *catalogRepository) Load(ctx context.Context) (entity.Catalog, error) {
	raw, err := r.store.Get(ctx, r.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to read catalog",
			zap.Error(err),
			zap.String("key", r.key),
		)
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if strings.TrimSpace(raw) == "" {
		return nil, ErrNotFound
	}

	var catalog entity.Catalog
	if err := json.Unmarshal([]byte(raw), &catalog); err != nil {
		r.log.Warn("Stored catalog is malformed",
			zap.Error(err),
			zap.String("key", r.key),
			zap.Int("bytes", len(raw)),
		)
		return nil, ErrMalformedData
	}

	if catalog == nil {
		return nil, ErrNotFound
	}

	r.log.Debug("Catalog loaded",
		zap.String("key", r.key),
		zap.Int("count", len(catalog)),
	)

	return catalog, nil
}

func (r *catalogRepository) Save(ctx context.Context, catalog entity.Catalog) error {
	if catalog == nil {
		catalog = entity.Catalog{}
	}

	payload, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := r.store.Set(ctx, r.key, string(payload)); err != nil {
		r.log.Error("Failed to write catalog",
			zap.Error(err),
			zap.String("key", r.key),
		)
		return fmt.Errorf("save catalog: %w", err)
	}

	r.log.Debug("Catalog saved",
		zap.String("key", r.key),
		zap.Int("count", len(catalog)),
	)

	return nil
}
