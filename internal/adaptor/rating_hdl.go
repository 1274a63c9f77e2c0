package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-catalog/internal/dto/request"
	"cinema-catalog/internal/dto/response"
	"cinema-catalog/internal/state"
	"cinema-catalog/internal/usecase"
	"cinema-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	clients *state.Registry
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, clients *state.Registry, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		clients: clients,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// SubmitRating handles POST /api/movies/{id}/ratings
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	var req request.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	store, clientID := clientStore(r, h.clients)
	rating, err := h.service.SubmitRating(r.Context(), store, clientID, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(h.log, w, err, "submit rating")
		return
	}

	utils.ResponseSuccess(w, "Rating submitted successfully", rating)
}

// GetUserRatings handles GET /api/user/ratings
func (h *RatingHandler) GetUserRatings(w http.ResponseWriter, r *http.Request) {
	store, clientID := clientStore(r, h.clients)
	ratings, err := h.service.GetUserRatings(r.Context(), store, clientID)
	if err != nil {
		writeServiceError(h.log, w, err, "get user ratings")
		return
	}

	utils.ResponseSuccess(w, "success", response.NewUserRatingsResponse(ratings))
}
