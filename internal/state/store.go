// Package state keeps per-client view state: the resolved catalog, the active
// movie and the client's ratings. State changes only through dispatched actions.
package state

import (
	"sync"

	"cinema-catalog/internal/data/entity"
)

// State is a snapshot of one client's view state. Active is nil until resolved.
type State struct {
	Catalog entity.Catalog
	Active  *entity.Movie
	Ratings entity.UserRatingMap
}

func (s State) clone() State {
	out := State{
		Catalog: s.Catalog.Clone(),
		Ratings: s.Ratings.Clone(),
	}
	if s.Active != nil {
		m := s.Active.Clone()
		out.Active = &m
	}
	return out
}

// Action is a state transition. The set of actions is closed.
type Action interface {
	apply(State) State
}

// SetCatalog replaces the catalog. The active movie is refreshed from the new
// catalog, or cleared when its id is gone.
type SetCatalog struct {
	Catalog entity.Catalog
}

func (a SetCatalog) apply(s State) State {
	s.Catalog = a.Catalog.Clone()
	if s.Active != nil {
		s.Active = lookup(s.Catalog, s.Active.ID)
	}
	return s
}

// SetActiveMovie replaces the selection; a nil Movie clears it.
type SetActiveMovie struct {
	Movie *entity.Movie
}

func (a SetActiveMovie) apply(s State) State {
	if a.Movie == nil {
		s.Active = nil
		return s
	}
	m := a.Movie.Clone()
	s.Active = &m
	return s
}

type SetRatings struct {
	Ratings entity.UserRatingMap
}

func (a SetRatings) apply(s State) State {
	s.Ratings = a.Ratings.Clone()
	return s
}

// RateMovie records one rating in the client's map.
type RateMovie struct {
	MovieID int
	Value   float64
}

func (a RateMovie) apply(s State) State {
	ratings := s.Ratings.Clone()
	if ratings == nil {
		ratings = entity.UserRatingMap{}
	}
	ratings[a.MovieID] = a.Value
	s.Ratings = ratings
	return s
}

func lookup(c entity.Catalog, id int) *entity.Movie {
	m, ok := c.FindByID(id)
	if !ok {
		return nil
	}
	out := m.Clone()
	return &out
}

// Listener is called with a snapshot after every dispatch.
type Listener func(State)

// Store is safe for concurrent use. Listeners run synchronously on the
// dispatching goroutine, after the lock is released.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]Listener
	nextID    int
}

func New() *Store {
	return &Store{listeners: map[int]Listener{}}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// HasCatalog reports whether a non-empty catalog has been dispatched.
func (s *Store) HasCatalog() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Catalog) > 0
}

func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = a.apply(s.state)
	snapshot := s.state.clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// Subscribe registers l and returns a func that removes it. Calling the
// returned func more than once is harmless.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
