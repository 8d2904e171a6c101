// Package review holds user-submitted movie reviews in memory.
//
// Reviews live for the lifetime of the process. There is no persistence,
// update or delete.
package review

import "sync"

// DefaultUsername is used when a review is submitted without a username.
const DefaultUsername = "Anonymous"

// Review is a single user review of a movie.
// Every field holds whatever JSON value was submitted, null included.
type Review struct {
	Rating   any `json:"rating"`
	Comment  any `json:"comment"`
	Username any `json:"username"`
}

// New builds a review attributed to DefaultUsername.
func New(rating, comment any) Review {
	return Review{Rating: rating, Comment: comment, Username: DefaultUsername}
}

// By returns a copy of r attributed to username.
func (r Review) By(username any) Review {
	r.Username = username
	return r
}

// Stats summarises the store contents.
type Stats struct {
	Movies  int `json:"movies"`
	Reviews int `json:"reviews"`
}

// Store maps movie identifiers to their reviews in submission order.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	reviews map[string][]Review
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		reviews: make(map[string][]Review),
	}
}

// Append adds a review for the given movie.
func (s *Store) Append(movieID string, r Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews[movieID] = append(s.reviews[movieID], r)
}

// List returns the reviews for a movie, oldest first.
// Unknown movies yield an empty, non-nil slice. The result is a copy.
func (s *Store) List(movieID string) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.reviews[movieID]
	out := make([]Review, len(stored))
	copy(out, stored)
	return out
}

// Count returns the number of reviews for a movie.
func (s *Store) Count(movieID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.reviews[movieID])
}

// Stats returns the number of reviewed movies and total reviews.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Movies: len(s.reviews)}
	for _, rs := range s.reviews {
		st.Reviews += len(rs)
	}
	return st
}
