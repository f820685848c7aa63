// internal/game/game_store.go
package game

import (
	"sync"

	"github.com/google/uuid"
)

// Tally summarises the finished sessions held by a ResultStore.
type Tally struct {
	Games int
	WinsA int
	WinsB int
	Draws int
}

// ResultStore keeps the results of finished sessions for the lifetime of
// the process. Sessions themselves are never shared; only their results are.
type ResultStore struct {
	mu      sync.Mutex
	results map[uuid.UUID]Result
	order   []uuid.UUID
}

func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[uuid.UUID]Result),
	}
}

func (s *ResultStore) AddResult(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.results[res.GameID]; !exists {
		s.order = append(s.order, res.GameID)
	}
	s.results[res.GameID] = res
}

func (s *ResultStore) GetResult(id uuid.UUID) (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, exists := s.results[id]
	return r, exists
}

func (s *ResultStore) DeleteResult(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.results[id]; !exists {
		return
	}
	delete(s.results, id)
	for i, gid := range s.order {
		if gid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Results returns every stored result in the order it was first added.
func (s *ResultStore) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Result, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.results[id])
	}
	return out
}

func (s *ResultStore) Tally() Tally {
	s.mu.Lock()
	defer s.mu.Unlock()
	var t Tally
	for _, r := range s.results {
		t.Games++
		switch r.Winner {
		case WinnerA:
			t.WinsA++
		case WinnerB:
			t.WinsB++
		default:
			t.Draws++
		}
	}
	return t
}
