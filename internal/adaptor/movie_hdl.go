package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"cinema-catalog/internal/dto/request"
	"cinema-catalog/internal/dto/response"
	"cinema-catalog/internal/state"
	"cinema-catalog/internal/usecase"
	"cinema-catalog/pkg/locale"
	"cinema-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	catalog usecase.CatalogService
	rating  usecase.RatingService
	clients *state.Registry
	locales *locale.Resolver
	log     *zap.Logger
}

func NewMovieHandler(
	catalog usecase.CatalogService,
	rating usecase.RatingService,
	clients *state.Registry,
	locales *locale.Resolver,
	log *zap.Logger,
) *MovieHandler {
	return &MovieHandler{
		catalog: catalog,
		rating:  rating,
		clients: clients,
		locales: locales,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListMoviesRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		Sort:  strings.ToLower(query.Get("sort")),
		Order: strings.ToLower(query.Get("order")),
		Genre: query.Get("genre"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	store, _ := clientStore(r, h.clients)
	list, err := h.catalog.ListMovies(r.Context(), store, req)
	if err != nil {
		writeServiceError(h.log, w, err, "list movies")
		return
	}

	f := formatterFor(r, h.locales)

	// Formatted amounts differ per locale, so the tag does too.
	etag := fmt.Sprintf("%q", list.ETag+"-"+f.Locale())
	w.Header().Set("ETag", etag)
	w.Header().Set("Vary", "Accept-Language, Cookie")
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		utils.ResponseNotModified(w)
		return
	}

	page := response.NewPaginatedResponse(
		response.MoviesToResponse(list.Movies, f),
		req.Page, req.Limit(), list.Total,
	)
	utils.ResponsePaginated(w, "success", page.Data, page.Pagination)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	store, clientID := clientStore(r, h.clients)
	movie, ok, err := h.catalog.Navigate(r.Context(), store, movieID)
	if err != nil {
		writeServiceError(h.log, w, err, "get movie by ID")
		return
	}
	if !ok {
		h.log.Debug("Movie not found", zap.String("movie_id", movieID))
		utils.ResponseNotFound(w, "Movie not found")
		return
	}

	var userRating *float64
	if utils.IsIdentifiedClient(r.Context()) {
		ratings, err := h.rating.GetUserRatings(r.Context(), store, clientID)
		if err != nil {
			// The detail view is still useful without the caller's own rating.
			h.log.Warn("Failed to load user ratings",
				zap.Error(err),
				zap.String("client_id", clientID.String()))
		} else if v, ok := ratings[movie.ID]; ok {
			userRating = &v
		}
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully",
		response.MovieToDetailResponse(movie, formatterFor(r, h.locales), userRating))
}

// GetComments handles GET /api/movies/{id}/comments
func (h *MovieHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	store, _ := clientStore(r, h.clients)
	comments, err := h.catalog.GetComments(r.Context(), store, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.log, w, err, "get comments")
		return
	}

	utils.ResponseSuccess(w, "success", response.CommentsToResponse(comments, formatterFor(r, h.locales)))
}

// AddComment handles POST /api/movies/{id}/comments
func (h *MovieHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req request.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	store, _ := clientStore(r, h.clients)
	comment, err := h.catalog.AddComment(r.Context(), store, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(h.log, w, err, "add comment")
		return
	}

	utils.ResponseCreated(w, "Comment added successfully",
		response.CommentToResponse(*comment, formatterFor(r, h.locales)))
}
