package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/internal/dto/request"
	"cinema-catalog/internal/state"
	"cinema-catalog/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	// ResolveCatalog loads the stored catalog, seeding storage when it is missing or empty.
	ResolveCatalog(ctx context.Context) (entity.Catalog, error)
	// Mount makes sure the client's store holds a catalog and returns it.
	Mount(ctx context.Context, store *state.Store) (entity.Catalog, error)
	// Navigate resolves id against a freshly resolved catalog and makes it the active movie.
	// ok is false when nothing matches; the previous selection is cleared either way.
	Navigate(ctx context.Context, store *state.Store, id string) (*entity.Movie, bool, error)
	ListMovies(ctx context.Context, store *state.Store, req *request.ListMoviesRequest) (*MovieList, error)
	GetComments(ctx context.Context, store *state.Store, id string) ([]entity.Comment, error)
	AddComment(ctx context.Context, store *state.Store, id string, req *request.CommentRequest) (*entity.Comment, error)
	// UpdateMovie applies fn to one stored record and persists the catalog. Calls are serialized.
	UpdateMovie(ctx context.Context, movieID int, fn func(*entity.Movie) error) (entity.Catalog, *entity.Movie, error)
}

// MovieList is one page of the listing plus the fingerprint of the whole catalog.
type MovieList struct {
	Movies []entity.Movie
	Total  int64
	ETag   string
}

type catalogService struct {
	repo repository.CatalogRepository
	seed func() entity.Catalog
	log  *zap.Logger
	mu   sync.Mutex
	now  func() time.Time

	// latest is the last catalog this process loaded or wrote, tagged with its fingerprint.
	latestMu  sync.RWMutex
	latest    entity.Catalog
	latestTag string
}

func NewCatalogService(
	repo repository.CatalogRepository,
	seed func() entity.Catalog,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		repo: repo,
		seed: seed,
		log:  log.With(zap.String("service", "catalog")),
		now:  time.Now,
	}
}

func (s *catalogService) ResolveCatalog(ctx context.Context) (entity.Catalog, error) {
	catalog, err := s.repo.Load(ctx)
	switch {
	case err == nil && len(catalog) > 0:
		s.remember(catalog)
		return catalog, nil
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("resolve catalog: %w", err)
	}

	// Absent, malformed and explicitly empty catalogs all reseed.
	seeded := s.seed()
	if err := s.repo.Save(ctx, seeded); err != nil {
		s.log.Error("Failed to persist seed catalog", zap.Error(err))
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	s.log.Info("Catalog seeded",
		zap.Int("count", len(seeded)),
		zap.Bool("was_empty", err == nil),
	)
	s.remember(seeded)

	return seeded, nil
}

// ResolveActiveMovie finds the record whose id equals the numeric value of id.
// It returns a copy; a non-numeric id or an unresolved catalog yields false.
func ResolveActiveMovie(catalog entity.Catalog, id string) (*entity.Movie, bool) {
	movieID, ok := utils.ParseMovieID(id)
	if !ok || len(catalog) == 0 {
		return nil, false
	}

	movie, ok := catalog.FindByID(movieID)
	if !ok {
		return nil, false
	}

	out := movie.Clone()
	return &out, true
}

func (s *catalogService) Mount(ctx context.Context, store *state.Store) (entity.Catalog, error) {
	if store.HasCatalog() {
		catalog := store.Snapshot().Catalog
		latest, ok := s.newerThan(catalog)
		if !ok {
			return catalog, nil
		}
		store.Dispatch(state.SetCatalog{Catalog: latest})
		return latest, nil
	}

	catalog, err := s.ResolveCatalog(ctx)
	if err != nil {
		return nil, err
	}

	store.Dispatch(state.SetCatalog{Catalog: catalog})
	return catalog, nil
}

func (s *catalogService) Navigate(ctx context.Context, store *state.Store, id string) (*entity.Movie, bool, error) {
	catalog, err := s.ResolveCatalog(ctx)
	if err != nil {
		return nil, false, err
	}
	store.Dispatch(state.SetCatalog{Catalog: catalog})

	movie, ok := ResolveActiveMovie(catalog, id)
	store.Dispatch(state.SetActiveMovie{Movie: movie})

	if !ok {
		s.log.Debug("Active movie not found", zap.String("movie_id", id))
	}

	return movie, ok, nil
}

func (s *catalogService) ListMovies(ctx context.Context, store *state.Store, req *request.ListMoviesRequest) (*MovieList, error) {
	catalog, err := s.Mount(ctx, store)
	if err != nil {
		s.log.Error("Failed to mount catalog", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	etag, err := fingerprint(catalog)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	movies := filterByGenre(catalog, req.Genre)
	sortMovies(movies, req.Sort, req.Order)

	start, end := utils.PageBounds(len(movies), req.Offset(), req.Limit())

	s.log.Debug("Movies listed",
		zap.Int("total", len(movies)),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.Limit()),
		zap.String("sort", req.Sort),
	)

	return &MovieList{
		Movies: movies[start:end],
		Total:  int64(len(movies)),
		ETag:   etag,
	}, nil
}

func (s *catalogService) GetComments(ctx context.Context, store *state.Store, id string) ([]entity.Comment, error) {
	movie, ok, err := s.Navigate(ctx, store, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMovieNotFound
	}
	if movie.Comments == nil {
		return []entity.Comment{}, nil
	}
	return movie.Comments, nil
}

func (s *catalogService) AddComment(ctx context.Context, store *state.Store, id string, req *request.CommentRequest) (*entity.Comment, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidComment, utils.FormatValidationErrors(errs))
	}

	movieID, ok := utils.ParseMovieID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMovieID, id)
	}

	comment := entity.Comment{
		Author:  strings.TrimSpace(req.Author),
		Date:    s.now().UTC().Truncate(time.Second),
		Message: req.Message,
	}

	catalog, _, err := s.UpdateMovie(ctx, movieID, func(m *entity.Movie) error {
		m.Comments = append(m.Comments, comment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	store.Dispatch(state.SetCatalog{Catalog: catalog})

	s.log.Info("Comment added",
		zap.Int("movie_id", movieID),
		zap.String("author", comment.Author),
	)

	return &comment, nil
}

func (s *catalogService) UpdateMovie(ctx context.Context, movieID int, fn func(*entity.Movie) error) (entity.Catalog, *entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.ResolveCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	movie, ok := catalog.FindByID(movieID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %d", ErrMovieNotFound, movieID)
	}

	if err := fn(movie); err != nil {
		return nil, nil, err
	}

	if err := s.repo.Save(ctx, catalog); err != nil {
		s.log.Error("Failed to save catalog after update",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return nil, nil, fmt.Errorf("update movie %d: %w", movieID, err)
	}

	s.remember(catalog)

	updated := movie.Clone()
	return catalog, &updated, nil
}

func (s *catalogService) remember(catalog entity.Catalog) {
	tag, err := fingerprint(catalog)
	if err != nil {
		return
	}

	s.latestMu.Lock()
	defer s.latestMu.Unlock()
	s.latest = catalog.Clone()
	s.latestTag = tag
}

// newerThan returns a copy of the latest catalog when it differs from cached.
// Writes made by other processes are not seen until the client navigates.
func (s *catalogService) newerThan(cached entity.Catalog) (entity.Catalog, bool) {
	s.latestMu.RLock()
	defer s.latestMu.RUnlock()

	if s.latestTag == "" {
		return nil, false
	}
	if tag, err := fingerprint(cached); err == nil && tag == s.latestTag {
		return nil, false
	}
	return s.latest.Clone(), true
}

func fingerprint(catalog entity.Catalog) (string, error) {
	payload, err := json.Marshal(catalog)
	if err != nil {
		return "", fmt.Errorf("encode catalog: %w", err)
	}
	return utils.Fingerprint(payload), nil
}

func filterByGenre(catalog entity.Catalog, genre string) []entity.Movie {
	genre = strings.ToLower(strings.TrimSpace(genre))
	out := make([]entity.Movie, 0, len(catalog))
	for _, m := range catalog {
		if genre == "" || hasGenre(m, genre) {
			out = append(out, m)
		}
	}
	return out
}

func hasGenre(m entity.Movie, genre string) bool {
	for _, g := range m.Genres {
		if strings.ToLower(g) == genre {
			return true
		}
	}
	return false
}

// sortMovies orders in place; an empty field keeps catalog order.
func sortMovies(movies []entity.Movie, field, order string) {
	var less func(a, b *entity.Movie) bool
	switch field {
	case "rating":
		less = func(a, b *entity.Movie) bool { return a.VoteAverage < b.VoteAverage }
	case "release_date":
		// Unparseable dates sort as the zero time.
		less = func(a, b *entity.Movie) bool {
			ta, _ := a.ReleaseTime()
			tb, _ := b.ReleaseTime()
			return ta.Before(tb)
		}
	case "title":
		less = func(a, b *entity.Movie) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	default:
		return
	}

	desc := order == "desc"
	sort.SliceStable(movies, func(i, j int) bool {
		if desc {
			return less(&movies[j], &movies[i])
		}
		return less(&movies[i], &movies[j])
	})
}
