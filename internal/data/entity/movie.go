package entity

import "time"

// Movie is one catalog record. JSON names follow the stored moviesDb layout.
type Movie struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Tagline     string          `json:"tagline,omitempty"`
	Overview    string          `json:"overview,omitempty"`
	Genres      []string        `json:"genres"`
	VoteAverage float64         `json:"vote_average"`
	VoteCount   int             `json:"vote_count"`
	ReleaseDate string          `json:"release_date"`
	Runtime     int             `json:"runtime"`
	Budget      *float64        `json:"budget,omitempty"`
	Revenue     *float64        `json:"revenue,omitempty"`
	Price       *float64        `json:"price,omitempty"`
	TrailerURL  string          `json:"trailerUrl,omitempty"`
	PosterPath  string          `json:"poster_path,omitempty"`
	Cinemas     []CinemaSession `json:"cinemas"`
	Comments    []Comment       `json:"comments"`
}

// ReleaseTime parses ReleaseDate as YYYY-MM-DD or RFC3339; ok is false when it is empty or malformed.
func (m *Movie) ReleaseTime() (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, m.ReleaseDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Clone returns a deep copy.
func (m Movie) Clone() Movie {
	out := m
	out.Genres = cloneSlice(m.Genres)
	out.Budget = cloneFloat(m.Budget)
	out.Revenue = cloneFloat(m.Revenue)
	out.Price = cloneFloat(m.Price)
	if m.Cinemas != nil {
		out.Cinemas = make([]CinemaSession, len(m.Cinemas))
		for i, c := range m.Cinemas {
			out.Cinemas[i] = c.Clone()
		}
	}
	out.Comments = cloneSlice(m.Comments)
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// cloneSlice copies s, keeping nil and empty distinct.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
