package store

import (
	"sync"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/storage"
)

// StorageKey is the well-known document key holding the application state.
const StorageKey = "labostock_state"

// Subscriber is notified after every committed transition with the new
// snapshot and its version number.
type Subscriber func(state models.AppState, version uint64)

// Store owns the single AppState for the process: dispatch is serialized
// through one mutex, every transition swaps the in-memory snapshot, saves
// it through the persistence adapter (fire-and-forget) and notifies
// subscribers. Snapshots are never mutated after publication, so readers
// always observe either the old or the new state, never a partial one.
type Store struct {
	mu      sync.RWMutex
	state   models.AppState
	version uint64
	adapter storage.Adapter
	subs    []Subscriber
}

// Open loads the persisted state through the adapter, falling back to
// models.DefaultState when nothing usable is stored.
func Open(adapter storage.Adapter) *Store {
	state := models.DefaultState()
	adapter.Load(StorageKey, &state)
	return &Store{state: state, adapter: adapter}
}

// State returns the current immutable snapshot.
func (s *Store) State() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Version returns the number of committed transitions this session.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Dispatch runs the reducer, commits the resulting snapshot, persists it
// and notifies subscribers. The save happens under the dispatch lock so
// overlapping dispatches write their documents in transition order and the
// durable document always holds the latest committed snapshot. Persistence
// failures are logged inside the adapter and never reach the caller.
func (s *Store) Dispatch(action Action) models.AppState {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	s.version++
	state := s.state
	version := s.version
	subs := s.subs
	s.adapter.Save(StorageKey, state)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state, version)
	}
	return state
}

// Subscribe registers a callback invoked after each committed transition.
// Registration is expected at wiring time, before dispatching starts.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}
