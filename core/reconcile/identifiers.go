package reconcile

// IdentifierSet is an insertion-ordered set of marketplace identifiers.
// It is not safe for concurrent use.
type IdentifierSet struct {
	order   []string
	present map[string]struct{}
}

// NewIdentifierSet builds a set from ids, keeping the first occurrence of duplicates.
func NewIdentifierSet(ids []string) *IdentifierSet {
	s := &IdentifierSet{
		order:   make([]string, 0, len(ids)),
		present: make(map[string]struct{}, len(ids)),
	}
	for _, id := range ids {
		if _, dup := s.present[id]; dup {
			continue
		}
		s.present[id] = struct{}{}
		s.order = append(s.order, id)
	}
	return s
}

// Contains reports whether id is in the set.
func (s *IdentifierSet) Contains(id string) bool {
	_, ok := s.present[id]
	return ok
}

// Remove deletes id from the set. Removing an absent id is a no-op.
func (s *IdentifierSet) Remove(id string) {
	delete(s.present, id)
}

// Len returns the number of identifiers still in the set.
func (s *IdentifierSet) Len() int {
	return len(s.present)
}

// Remaining returns the identifiers still in the set, in insertion order.
func (s *IdentifierSet) Remaining() []string {
	out := make([]string, 0, len(s.present))
	for _, id := range s.order {
		if _, ok := s.present[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Clone returns an independent copy holding the remaining identifiers.
func (s *IdentifierSet) Clone() *IdentifierSet {
	return NewIdentifierSet(s.Remaining())
}
