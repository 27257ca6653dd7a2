package state

// idSet is an insertion-ordered set of identifiers.
type idSet struct {
	order []string
	index map[string]struct{}
}

func newIDSet(ids ...string) *idSet {
	s := &idSet{index: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *idSet) has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// add reports whether id was newly inserted.
func (s *idSet) add(id string) bool {
	if s.has(id) {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

func (s *idSet) remove(id string) {
	if !s.has(id) {
		return
	}
	delete(s.index, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *idSet) slice() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
