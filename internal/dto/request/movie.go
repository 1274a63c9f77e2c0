package request

// ListMoviesRequest drives the catalog listing.
type ListMoviesRequest struct {
	PaginatedRequest
	Sort  string `json:"sort" validate:"omitempty,oneof=rating release_date title"`
	Order string `json:"order" validate:"omitempty,oneof=asc desc"`
	Genre string `json:"genre" validate:"omitempty,max=50"`
}
