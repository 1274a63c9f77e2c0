package usecase

import (
	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Catalog CatalogService
	Rating  RatingService
}

// NewService wires the use cases; seed supplies the fallback catalog.
func NewService(repo *repository.Repository, seed func() entity.Catalog, log *zap.Logger) *Service {
	catalog := NewCatalogService(repo.Catalog, seed, log)
	return &Service{
		Catalog: catalog,
		Rating:  NewRatingService(repo.Rating, catalog, log),
	}
}
