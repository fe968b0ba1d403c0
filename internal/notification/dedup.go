package notification

// DefaultDedupWindow is how many recently written notification IDs a session remembers.
const DefaultDedupWindow = 1024

// seenSet remembers the IDs a session has written, whichever path wrote them.
// Once more than limit IDs are held the oldest is forgotten, so a very late duplicate
// may be written twice but a notification is never skipped.
type seenSet struct {
	ids   map[int64]struct{}
	order []int64
	limit int
}

func newSeenSet(limit int) *seenSet {
	if limit < 1 {
		limit = DefaultDedupWindow
	}
	
	return &seenSet{
		ids:   make(map[int64]struct{}, limit),
		order: make([]int64, 0, limit),
		limit: limit,
	}
}

// observe records id and reports whether it was not seen before.
func (s *seenSet) observe(id int64) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	
	if len(s.order) == s.limit {
		delete(s.ids, s.order[0])
		s.order = append(s.order[:0], s.order[1:]...)
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

func (s *seenSet) contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *seenSet) len() int {
	return len(s.ids)
}
