package report

import (
	"sort"
	"sync"
)

// DedupStore remembers which (system, discriminant) pairs were already
// reported. Entries never expire; the store lives as long as the process.
type DedupStore struct {
	mu   sync.Mutex
	seen map[string]map[string]struct{}
}

// NewDedupStore returns an empty store.
func NewDedupStore() *DedupStore {
	return &DedupStore{seen: make(map[string]map[string]struct{})}
}

// HasReported reports whether the pair was marked.
func (s *DedupStore) HasReported(system, discriminant string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[system][discriminant]
	return ok
}

// MarkReported records the pair. Marking twice is a no-op.
func (s *DedupStore) MarkReported(system, discriminant string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markLocked(system, discriminant)
}

// CheckAndMark marks the pair and returns true if it was not marked before.
// Concurrent callers racing on the same pair see exactly one true.
func (s *DedupStore) CheckAndMark(system, discriminant string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[system][discriminant]; ok {
		return false
	}
	s.markLocked(system, discriminant)
	return true
}

func (s *DedupStore) markLocked(system, discriminant string) {
	set, ok := s.seen[system]
	if !ok {
		set = make(map[string]struct{})
		s.seen[system] = set
	}
	set[discriminant] = struct{}{}
}

// Snapshot returns a copy of the store with sorted discriminants.
func (s *DedupStore) Snapshot() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]string, len(s.seen))
	for sys, set := range s.seen {
		vals := make([]string, 0, len(set))
		for d := range set {
			vals = append(vals, d)
		}
		sort.Strings(vals)
		out[sys] = vals
	}
	return out
}
