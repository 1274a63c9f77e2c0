package response

import (
	"time"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/pkg/locale"
)

// displayCurrency is the currency catalog amounts are stored in.
const displayCurrency = "USD"

type MovieResponse struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Genres             []string `json:"genres"`
	VoteAverage        float64  `json:"vote_average"`
	VoteCount          int      `json:"vote_count"`
	ReleaseDate        string   `json:"release_date"`
	ReleaseDateDisplay *string  `json:"release_date_display"`
	Runtime            int      `json:"runtime"`
	PosterPath         string   `json:"poster_path,omitempty"`
	Price              *string  `json:"price,omitempty"`
}

type MovieDetailResponse struct {
	MovieResponse
	Tagline    string                 `json:"tagline,omitempty"`
	Overview   string                 `json:"overview,omitempty"`
	TrailerURL string                 `json:"trailer_url,omitempty"`
	Budget     *string                `json:"budget,omitempty"`
	Revenue    *string                `json:"revenue,omitempty"`
	Cinemas    []entity.CinemaSession `json:"cinemas"`
	Comments   []CommentResponse      `json:"comments"`
	UserRating *float64               `json:"user_rating,omitempty"`
	Locale     string                 `json:"locale"`
}

type CommentResponse struct {
	Author      string    `json:"author"`
	Date        time.Time `json:"date"`
	DateDisplay *string   `json:"date_display"`
	Message     string    `json:"message"`
}

// money formats amount, returning nil for missing or zero values so they are not shown.
func money(f *locale.Formatter, amount *float64) *string {
	if amount == nil || *amount == 0 {
		return nil
	}
	s := f.FormatCurrency(*amount, displayCurrency)
	return &s
}

func MovieToResponse(movie *entity.Movie, f *locale.Formatter) MovieResponse {
	genres := movie.Genres
	if genres == nil {
		genres = []string{}
	}

	return MovieResponse{
		ID:                 movie.ID,
		Title:              movie.Title,
		Genres:             genres,
		VoteAverage:        movie.VoteAverage,
		VoteCount:          movie.VoteCount,
		ReleaseDate:        movie.ReleaseDate,
		ReleaseDateDisplay: f.FormatDisplayDateString(movie.ReleaseDate),
		Runtime:            movie.Runtime,
		PosterPath:         movie.PosterPath,
		Price:              money(f, movie.Price),
	}
}

func MoviesToResponse(movies []entity.Movie, f *locale.Formatter) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i := range movies {
		out[i] = MovieToResponse(&movies[i], f)
	}
	return out
}

func MovieToDetailResponse(movie *entity.Movie, f *locale.Formatter, userRating *float64) MovieDetailResponse {
	cinemas := movie.Cinemas
	if cinemas == nil {
		cinemas = []entity.CinemaSession{}
	}

	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie, f),
		Tagline:       movie.Tagline,
		Overview:      movie.Overview,
		TrailerURL:    movie.TrailerURL,
		Budget:        money(f, movie.Budget),
		Revenue:       money(f, movie.Revenue),
		Cinemas:       cinemas,
		Comments:      CommentsToResponse(movie.Comments, f),
		UserRating:    userRating,
		Locale:        f.Locale(),
	}
}

// CommentToResponse formats the timestamp in the request locale, not a fixed en-US one.
func CommentToResponse(c entity.Comment, f *locale.Formatter) CommentResponse {
	return CommentResponse{
		Author:      c.Author,
		Date:        c.Date,
		DateDisplay: f.FormatTimestamp(c.Date),
		Message:     c.Message,
	}
}

func CommentsToResponse(comments []entity.Comment, f *locale.Formatter) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, c := range comments {
		out[i] = CommentToResponse(c, f)
	}
	return out
}
