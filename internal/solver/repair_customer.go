package solver

import (
	"fmt"

	"cvrp-solver-service/internal/domain"
)

// Restore the every-customer-exactly-once invariant of a chromosome.
//
// Returns a new chromosome; the input is not modified. Occurrences of
// each customer id are counted across the non-separator genes. Customers
// that never occur form the missing list, in ascending id order. The
// sequence is then scanned left to right and each gene whose id still
// occurs more than once is overwritten with the next missing id.
//
// Because the generator emits one gene per customer and separator repair
// only removes separators, the number of duplicate slots must equal the
// number of missing customers exactly. That balance is required for the
// scan to terminate correctly, so it is checked rather than assumed: a
// leftover missing customer or a leftover duplicate yields an error.
func RepairCustomers(c domain.Chromosome, inst *domain.Instance) (domain.Chromosome, error) {
	counts := make(map[int]int, len(c))
	for _, g := range c {
		if !g.Separator {
			counts[g.Customer]++
		}
	}

	var missing []int
	for _, id := range inst.Customers() {
		if counts[id] == 0 {
			missing = append(missing, id)
		}
	}

	out := c.Clone()
	next := 0
	leftoverDup := 0
	for i, g := range out {
		if g.Separator || counts[g.Customer] <= 1 {
			continue
		}
		if next >= len(missing) {
			leftoverDup++
			continue
		}
		counts[g.Customer]--
		out[i] = domain.CustomerGene(missing[next])
		counts[missing[next]] = 1
		next++
	}

	if next < len(missing) || leftoverDup > 0 {
		return nil, fmt.Errorf(
			"repair customers: duplicate slots do not balance missing customers (missing=%d placed=%d leftover duplicates=%d)",
			len(missing), next, leftoverDup,
		)
	}
	return out, nil
}
