package response

import "cinema-catalog/internal/data/entity"

type RatingResponse struct {
	MovieID       int      `json:"movie_id"`
	Value         float64  `json:"value"`
	PreviousValue *float64 `json:"previous_value,omitempty"`
	VoteAverage   float64  `json:"vote_average"`
	VoteCount     int      `json:"vote_count"`
}

type UserRatingsResponse struct {
	Ratings entity.UserRatingMap `json:"ratings"`
	Count   int                  `json:"count"`
}

func NewUserRatingsResponse(ratings entity.UserRatingMap) UserRatingsResponse {
	if ratings == nil {
		ratings = entity.UserRatingMap{}
	}
	return UserRatingsResponse{Ratings: ratings, Count: len(ratings)}
}
