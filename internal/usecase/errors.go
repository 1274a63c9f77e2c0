package usecase

import "errors"

var (
	ErrMovieNotFound  = errors.New("movie not found")
	ErrInvalidMovieID = errors.New("invalid movie id")
	ErrInvalidRating  = errors.New("invalid rating")
	ErrInvalidComment = errors.New("invalid comment")
)
