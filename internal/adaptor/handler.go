package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cinema-catalog/internal/state"
	"cinema-catalog/internal/usecase"
	"cinema-catalog/pkg/locale"
	"cinema-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Movie  *MovieHandler
	Rating *RatingHandler
}

func NewHandler(service *usecase.Service, clients *state.Registry, locales *locale.Resolver, log *zap.Logger) *Handler {
	return &Handler{
		Movie:  NewMovieHandler(service.Catalog, service.Rating, clients, locales, log),
		Rating: NewRatingHandler(service.Rating, clients, log),
	}
}

// clientStore returns the view state of the client that sent r.
func clientStore(r *http.Request, clients *state.Registry) (*state.Store, uuid.UUID) {
	clientID, ok := utils.GetClientIDFromContext(r.Context())
	if !ok {
		// Routes outside the ClientID middleware share one anonymous store.
		clientID = uuid.Nil
	}
	return clients.Get(clientID), clientID
}

func formatterFor(r *http.Request, locales *locale.Resolver) *locale.Formatter {
	loc, ok := utils.GetLocaleFromContext(r.Context())
	if !ok {
		loc = locales.Default()
	}
	return locales.Formatter(loc)
}

// etagMatches reports whether an If-None-Match header covers etag.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// writeServiceError maps use case errors onto the response envelope.
func writeServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, usecase.ErrInvalidMovieID),
		errors.Is(err, usecase.ErrInvalidRating),
		errors.Is(err, usecase.ErrInvalidComment):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
