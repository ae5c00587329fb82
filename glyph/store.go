package glyph

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/bitglyph/outline"
)

// Store is the insertion-ordered collection of one font's glyphs, keyed by
// name. The zero value is not usable; call NewStore.
type Store struct {
	mu sync.RWMutex

	cfg    outline.Config
	order  []string
	byName map[string]*Record

	// codepoint range, notdef excluded
	lo, hi int
	seen   bool

	final []*Record
}

// NewStore returns an empty store. cfg is used to synthesize ".notdef" when
// none is added.
func NewStore(cfg outline.Config) *Store {
	return &Store{cfg: cfg, byName: make(map[string]*Record)}
}

// Add inserts r, or replaces the record already stored under r.Name while
// keeping its position. Returns ErrFrozen after Finalize.
func (s *Store) Add(r *Record) error {
	if r == nil || r.Name == "" {
		return fmt.Errorf("glyph: add: record without name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.final != nil {
		return fmt.Errorf("%w: add %s", ErrFrozen, r.Name)
	}
	s.put(r)
	return nil
}

// AddUnique is Add that refuses to replace a different record stored under
// the same name. Re-adding an equal record is a no-op.
func (s *Store) AddUnique(r *Record) error {
	if r == nil || r.Name == "" {
		return fmt.Errorf("glyph: add: record without name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.final != nil {
		return fmt.Errorf("%w: add %s", ErrFrozen, r.Name)
	}
	if old, ok := s.byName[r.Name]; ok {
		if old.Equal(r) {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
	}
	s.put(r)
	return nil
}

// put stores r; s.mu must be held for writing.
func (s *Store) put(r *Record) {
	if _, ok := s.byName[r.Name]; !ok {
		s.order = append(s.order, r.Name)
	}
	s.byName[r.Name] = r

	cp := r.Codepoint
	if cp <= 0 {
		return
	}
	if !s.seen {
		s.lo, s.hi, s.seen = cp, cp, true
		return
	}
	s.lo, s.hi = min(s.lo, cp), max(s.hi, cp)
}

// Get returns the record stored under name.
func (s *Store) Get(name string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byName[name]
	return r, ok
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.final != nil {
		return len(s.final)
	}
	return len(s.order)
}

// CodepointRange returns the smallest and largest codepoint added, ignoring
// ".notdef". ok is false when no such record exists.
func (s *Store) CodepointRange() (lo, hi int, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lo, s.hi, s.seen
}

// Finalize freezes the store and returns its records with ".notdef" first,
// synthesizing it if it was never added. The other records keep their
// insertion order. Later calls return the same slice.
func (s *Store) Finalize() []*Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.final != nil {
		return s.final
	}

	notdef, ok := s.byName[NotdefName]
	if !ok {
		notdef = Notdef(s.cfg)
		s.byName[NotdefName] = notdef
	}
	final := make([]*Record, 0, len(s.order)+1)
	final = append(final, notdef)
	for _, name := range s.order {
		if name != NotdefName {
			final = append(final, s.byName[name])
		}
	}
	s.final = final
	return final
}

// Frozen reports whether Finalize has been called.
func (s *Store) Frozen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.final != nil
}

// Records returns the finalized order, or ErrNotFinalized.
func (s *Store) Records() ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.final == nil {
		return nil, ErrNotFinalized
	}
	return s.final, nil
}
