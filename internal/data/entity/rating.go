package entity

// MaxRating is the top of the rating scale.
const MaxRating = 10

// UserRatingMap holds one client's ratings keyed by movie id.
type UserRatingMap map[int]float64

func (m UserRatingMap) Clone() UserRatingMap {
	if m == nil {
		return nil
	}
	out := make(UserRatingMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
