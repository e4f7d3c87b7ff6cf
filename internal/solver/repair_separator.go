package solver

import "cvrp-solver-service/internal/domain"

// Reduce the separator count of a chromosome to exactly vehicles-1.
//
// Returns a new chromosome; the input is not modified. Separators
// bounding an empty bin (a separator immediately followed by another)
// are removed first, scanning left to right and repeating. If the count
// is still above target, remaining separators are removed leftmost
// first. Removing a separator concatenates the two bins it separated,
// keeping customer order; the merged bin's capacity is deliberately not
// validated.
//
// Precondition (not enforced): the current separator count is at least
// vehicles-1. The generator's empty-bin padding guarantees this; a
// chromosome already below target is returned unchanged.
func RepairSeparators(c domain.Chromosome, vehicles int) domain.Chromosome {
	target := vehicles - 1
	out := c.Clone()
	count := out.SeparatorCount()

	// Pass 1: separators that bound an empty bin.
	for count > target {
		removed := false
		for i := 0; i+1 < len(out); i++ {
			if out[i].Separator && out[i+1].Separator {
				out = append(out[:i], out[i+1:]...)
				count--
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}

	// Pass 2: arbitrary separators, leftmost first.
	for count > target {
		for i := 0; i < len(out); i++ {
			if out[i].Separator {
				out = append(out[:i], out[i+1:]...)
				count--
				break
			}
		}
	}

	return out
}
