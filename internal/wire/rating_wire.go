package wire

import (
	"cinema-catalog/internal/adaptor"
	"cinema-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRating(r chi.Router, ratingHandler *adaptor.RatingHandler, log *zap.Logger) {
	// ==================== CLIENT ROUTES ====================
	// Ratings are keyed by client id, so the caller must send its own
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireClient(log))

		r.Post("/api/movies/{id}/ratings", ratingHandler.SubmitRating) // POST /api/movies/{id}/ratings
		r.Get("/api/user/ratings", ratingHandler.GetUserRatings)       // GET /api/user/ratings
	})
}
