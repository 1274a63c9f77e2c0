package entity

// CinemaSession is a venue screening a movie, with its showtimes.
type CinemaSession struct {
	Cinema  string   `json:"cinema"`
	Address string   `json:"address,omitempty"`
	Hall    string   `json:"hall,omitempty"`
	Date    string   `json:"date,omitempty"`
	Times   []string `json:"time"`
}

func (s CinemaSession) Clone() CinemaSession {
	out := s
	out.Times = cloneSlice(s.Times)
	return out
}
