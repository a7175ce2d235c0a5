package filter

import "sync"

// Listener receives the new active state after every commit. It runs with the store locked and
// must not call back into the store.
type Listener func(active State)

// Store owns one active filter state and its staged draft.
type Store struct {
	mu        sync.Mutex
	active    State
	staged    State
	listeners map[int]Listener
	nextID    int
}

// NewStore creates a store whose active and staged states start as initial.
func NewStore(initial State) *Store {
	return &Store{
		active:    initial.Clone(),
		staged:    initial.Clone(),
		listeners: make(map[int]Listener),
	}
}

// Active returns a copy of the committed state.
func (s *Store) Active() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active.Clone()
}

// Staged returns a copy of the draft state.
func (s *Store) Staged() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.staged.Clone()
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// SetFilter merges patch into the active state and discards any draft.
func (s *Store) SetFilter(patch Patch) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commitLocked(Merge(s.active, patch))
}

// ClearFilters resets the active state to unconstrained.
func (s *Store) ClearFilters() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commitLocked(State{})
}

// StageFilter merges patch into the draft only.
func (s *Store) StageFilter(patch Patch) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.staged = Merge(s.staged, patch)

	return s.staged.Clone()
}

// ApplyStaged commits the draft.
func (s *Store) ApplyStaged() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commitLocked(s.staged)
}

// DiscardStaged resets the draft to the active state.
func (s *Store) DiscardStaged() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.staged = s.active.Clone()

	return s.staged.Clone()
}

func (s *Store) commitLocked(next State) State {
	s.active = next.Clone()
	s.staged = next.Clone()

	for _, l := range s.listeners {
		l(s.active.Clone())
	}

	return s.active.Clone()
}
