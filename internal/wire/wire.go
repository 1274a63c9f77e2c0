// internal/wire/wire.go
package wire

import (
	"net/http"

	"cinema-catalog/internal/adaptor"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/internal/data/seed"
	"cinema-catalog/internal/state"
	"cinema-catalog/internal/usecase"
	"cinema-catalog/pkg/locale"
	"cinema-catalog/pkg/middleware"
	"cinema-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the router and the per-client view state behind it.
type App struct {
	Router  *chi.Mux
	Clients *state.Registry
}

// Wiring builds services, handlers and routes on top of repo.
func Wiring(repo *repository.Repository, resolver *locale.Resolver, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, seed.Movies, logger)
	clients := state.NewRegistry(config.App.ClientTTL)
	handler := adaptor.NewHandler(service, clients, resolver, logger)

	router := setupRouter(handler, resolver, logger)

	return &App{
		Router:  router,
		Clients: clients,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	resolver *locale.Resolver,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.ClientID(logger))
		r.Use(middleware.Locale(resolver))

		wireMovie(r, handler.Movie)
		wireRating(r, handler.Rating, logger)
	})

	return r
}
