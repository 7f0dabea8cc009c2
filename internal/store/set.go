package store

// Set is an insertion-ordered collection of distinct members. It is not safe
// for concurrent use; the Store serializes access.
type Set struct {
	index map[string]struct{}
	items []string
}

func NewSet(members ...string) *Set {
	s := &Set{
		index: make(map[string]struct{}, len(members)),
		items: make([]string, 0, len(members)),
	}
	s.Add(members...)
	return s
}

func (s *Set) Add(members ...string) int {
	added := 0
	for _, member := range members {
		if _, exists := s.index[member]; !exists {
			s.index[member] = struct{}{}
			s.items = append(s.items, member)
			added++
		}
	}
	return added
}

func (s *Set) Remove(members ...string) int {
	removed := 0
	for _, member := range members {
		if _, exists := s.index[member]; !exists {
			continue
		}
		delete(s.index, member)
		for i, item := range s.items {
			if item == member {
				s.items = append(s.items[:i], s.items[i+1:]...)
				break
			}
		}
		removed++
	}
	return removed
}

func (s *Set) IsMember(member string) bool {
	_, exists := s.index[member]
	return exists
}

// Position returns the 1-based position of member in insertion order, or 0.
func (s *Set) Position(member string) int {
	if !s.IsMember(member) {
		return 0
	}
	for i, item := range s.items {
		if item == member {
			return i + 1
		}
	}
	return 0
}

// At returns the member at zero-based position i.
func (s *Set) At(i int) (string, bool) {
	if i < 0 || i >= len(s.items) {
		return "", false
	}
	return s.items[i], true
}

func (s *Set) Members() []string {
	result := make([]string, len(s.items))
	copy(result, s.items)
	return result
}

func (s *Set) Card() int {
	return len(s.items)
}

// Pop removes and returns the most recently added member.
func (s *Set) Pop() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}

	member := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	delete(s.index, member)
	return member, true
}

// Replace discards the current members and loads members in order.
func (s *Set) Replace(members []string) {
	s.index = make(map[string]struct{}, len(members))
	s.items = make([]string, 0, len(members))
	s.Add(members...)
}

// Union returns a new set holding a's members followed by b's new members.
func Union(a, b *Set) *Set {
	result := NewSet(a.items...)
	result.Add(b.items...)
	return result
}

// Difference returns a new set with the members of s not present in other.
func (s *Set) Difference(other *Set) *Set {
	result := NewSet()
	for _, member := range s.items {
		if !other.IsMember(member) {
			result.Add(member)
		}
	}
	return result
}
