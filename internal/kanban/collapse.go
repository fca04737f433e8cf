package kanban

import (
	"sort"
	"sync"
)

// CollapseSet tracks which columns are visually collapsed. Purely local
// state: nothing is persisted, so the set resets when its owner is
// recreated.
type CollapseSet struct {
	mu        sync.Mutex
	collapsed map[string]struct{}
	haptics   Haptics
}

// NewCollapseSet builds an empty set. haptics may be nil.
func NewCollapseSet(haptics Haptics) *CollapseSet {
	if haptics == nil {
		haptics = noopHaptics{}
	}
	return &CollapseSet{
		collapsed: make(map[string]struct{}),
		haptics:   haptics,
	}
}

// Toggle flips the collapsed state of one column and returns the new
// state (true means now collapsed).
func (s *CollapseSet) Toggle(columnID string) bool {
	s.mu.Lock()
	_, was := s.collapsed[columnID]
	if was {
		delete(s.collapsed, columnID)
	} else {
		s.collapsed[columnID] = struct{}{}
	}
	s.mu.Unlock()
	s.haptics.Light()
	return !was
}

// IsCollapsed reports whether a column is collapsed.
func (s *CollapseSet) IsCollapsed(columnID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.collapsed[columnID]
	return ok
}

// Collapsed returns the collapsed column ids in a stable order.
func (s *CollapseSet) Collapsed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.collapsed))
	for id := range s.collapsed {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
