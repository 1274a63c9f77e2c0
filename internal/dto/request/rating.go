package request

type RatingRequest struct {
	Value float64 `json:"value" validate:"required,gte=1,lte=10"`
}
