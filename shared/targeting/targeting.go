// Package targeting maintains ordered target lists for combatants.
package targeting

import (
	"math"
	"slices"
)

// Candidate is an opponent that may be added to a target list.
type Candidate[ID comparable] struct {
	ID   ID
	X, Y float64
}

// Acquire appends every candidate strictly within radius of (x, y) that is
// not already listed. self is never appended. Existing entries are kept even
// when they have left the radius.
func Acquire[ID comparable](list []ID, self ID, x, y, radius float64, candidates []Candidate[ID]) []ID {
	for _, c := range candidates {
		if c.ID == self || slices.Contains(list, c.ID) {
			continue
		}
		if math.Hypot(c.X-x, c.Y-y) < radius {
			list = append(list, c.ID)
		}
	}
	return list
}

// Sort orders list in place. When hasPriority is set, priority sorts first;
// the remaining entries follow by ascending distance. distance reports false
// for entries that can no longer be looked up, and those compare as equal to
// everything except the priority entry, keeping their relative order.
func Sort[ID comparable](list []ID, priority ID, hasPriority bool, distance func(ID) (float64, bool)) {
	slices.SortStableFunc(list, func(a, b ID) int {
		if hasPriority {
			switch {
			case a == priority && b == priority:
				return 0
			case a == priority:
				return -1
			case b == priority:
				return 1
			}
		}
		da, okA := distance(a)
		db, okB := distance(b)
		if !okA || !okB {
			return 0
		}
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})
}

// Remove drops every occurrence of id, preserving order.
func Remove[ID comparable](list []ID, id ID) []ID {
	return slices.DeleteFunc(list, func(e ID) bool { return e == id })
}
