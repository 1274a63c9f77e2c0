package repository

import (
	"cinema-catalog/pkg/kvstore"

	"go.uber.org/zap"
)

const (
	catalogKey    = "moviesDb"
	ratingsPrefix = "ratings"
)

type Repository struct {
	Catalog CatalogRepository
	Rating  RatingRepository
}

func NewRepository(store kvstore.Store, namespace string, log *zap.Logger) *Repository {
	return &Repository{
		Catalog: NewCatalogRepository(store, namespace, log),
		Rating:  NewRatingRepository(store, namespace, log),
	}
}
