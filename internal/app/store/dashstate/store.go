// internal/app/store/dashstate/store.go
package dashstate

import (
	"sync"
	"time"

	"github.com/dalemusser/xenodash/internal/app/system/metrics"
	"github.com/dalemusser/xenodash/internal/domain/models"
)

// Store holds one DashboardState per session id, in memory.
//
// Every write replaces the whole value for a slot. Slices inside a stored
// state are never mutated after Put, so readers may keep the copy they got.
type Store struct {
	mu     sync.RWMutex
	states map[string]models.DashboardState
	now    func() time.Time
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		states: make(map[string]models.DashboardState),
		now:    time.Now,
	}
}

// Get returns the state for sid and whether a slot exists.
func (s *Store) Get(sid string) (models.DashboardState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[sid]
	return st, ok
}

// Put replaces the state for sid and stamps LastSeen.
func (s *Store) Put(sid string, st models.DashboardState) {
	if sid == "" {
		return
	}
	s.mu.Lock()
	st.LastSeen = s.now()
	s.states[sid] = st
	n := len(s.states)
	s.mu.Unlock()
	metrics.DashboardStates.Set(float64(n))
}

// Update applies fn to the current state for sid (the zero state if none)
// under the write lock and stores the result.
func (s *Store) Update(sid string, fn func(*models.DashboardState)) models.DashboardState {
	if sid == "" {
		var st models.DashboardState
		fn(&st)
		return st
	}
	s.mu.Lock()
	st := s.states[sid]
	fn(&st)
	st.LastSeen = s.now()
	s.states[sid] = st
	n := len(s.states)
	s.mu.Unlock()
	metrics.DashboardStates.Set(float64(n))
	return st
}

// Touch refreshes LastSeen for an existing slot.
func (s *Store) Touch(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[sid]; ok {
		st.LastSeen = s.now()
		s.states[sid] = st
	}
}

// Delete drops the slot for sid.
func (s *Store) Delete(sid string) {
	s.mu.Lock()
	delete(s.states, sid)
	n := len(s.states)
	s.mu.Unlock()
	metrics.DashboardStates.Set(float64(n))
}

// EvictIdle removes slots not seen within ttl and returns how many went.
func (s *Store) EvictIdle(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	removed := 0
	for sid, st := range s.states {
		if st.LastSeen.Before(cutoff) {
			delete(s.states, sid)
			removed++
		}
	}
	n := len(s.states)
	s.mu.Unlock()

	metrics.DashboardStates.Set(float64(n))
	return removed
}

// Len returns the number of slots held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
