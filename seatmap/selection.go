package seatmap

import (
	"sort"

	"cinetix/model"
)

// Selection is the set of seat ids the user is considering booking. It is
// client-only state, cleared on navigation or a successful booking. Reserved
// seats can never enter the set.
type Selection struct {
	ids map[int]bool
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[int]bool)}
}

// Toggle flips the seat's membership. Reserved seats are a no-op. The
// operation is idempotent under a double toggle: applying it twice restores
// the previous contents. Returns whether the set changed.
func (s *Selection) Toggle(seat model.Seat) bool {
	if seat.IsReserved {
		return false
	}
	if s.ids[seat.Id] {
		delete(s.ids, seat.Id)
	} else {
		s.ids[seat.Id] = true
	}
	return true
}

func (s *Selection) Has(id int) bool {
	return s.ids[id]
}

func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns the selected seat ids in ascending order.
func (s *Selection) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s *Selection) Clear() {
	s.ids = make(map[int]bool)
}

// Labels maps the selection back to seat labels in grid order.
func (s *Selection) Labels(g Grid) []string {
	var labels []string
	for _, seat := range g.Flatten() {
		if s.ids[seat.Id] {
			labels = append(labels, seat.Label())
		}
	}
	return labels
}
