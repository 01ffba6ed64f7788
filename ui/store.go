package ui

import "fmt"

// storeEntry wraps a widget's state with the frame it was last touched in.
type storeEntry struct {
	value     any
	lastFrame uint64
}

// Store keeps widget state that must survive between frames while the
// visuals are rebuilt. Entries not touched during the previous frame are
// dropped when the next frame starts.
type Store struct {
	entries map[ID]*storeEntry
	frame   uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[ID]*storeEntry)}
}

// GetState returns a pointer to the state for id, inserting def if there is
// none. State of a different type under the same id is replaced by def,
// which usually means two widgets share an ID.
func GetState[T any](s *Store, id ID, def T) *T {
	if e, ok := s.entries[id]; ok {
		if p, ok := e.value.(*T); ok {
			e.lastFrame = s.frame
			return p
		}
		var want *T
		uiLogger.Error("widget state has the wrong type, are the IDs unique?",
			"id", uint64(id),
			"want", fmt.Sprintf("%T", want),
			"found", fmt.Sprintf("%T", e.value))
	}
	p := new(T)
	*p = def
	s.entries[id] = &storeEntry{value: p, lastFrame: s.frame}
	return p
}

// SetState replaces the state for id.
func SetState[T any](s *Store, id ID, value T) {
	*GetState(s, id, value) = value
}

// DeleteState removes the state for id.
func DeleteState(s *Store, id ID) {
	delete(s.entries, id)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// nextFrame advances the frame counter and drops entries that were not
// touched during the previous frame.
func (s *Store) nextFrame() {
	s.frame++
	threshold := s.frame - 1
	for id, e := range s.entries {
		if e.lastFrame < threshold {
			delete(s.entries, id)
		}
	}
}
