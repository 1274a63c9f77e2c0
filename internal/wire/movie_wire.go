package wire

import (
	"cinema-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies - List movies
	r.Get("/api/movies", movieHandler.GetMovies)

	// GET /api/movies/{id} - Movie details, selects the active movie
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)

	// Comments are open to anonymous clients
	r.Get("/api/movies/{id}/comments", movieHandler.GetComments)
	r.Post("/api/movies/{id}/comments", movieHandler.AddComment)
}
