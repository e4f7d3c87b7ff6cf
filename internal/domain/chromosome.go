package domain

import (
	"strconv"
	"strings"
)

// Gene is one token of a chromosome: either a customer id or a route
// separator. A tagged struct is used instead of a reserved integer value
// so a customer id can never collide with the separator marker.
type Gene struct {
	Customer  int
	Separator bool
}

func CustomerGene(id int) Gene { return Gene{Customer: id} }

func SeparatorGene() Gene { return Gene{Separator: true} }

// Chromosome encodes one candidate CVRP solution as a flat gene sequence.
// After repair it holds exactly (vehicle count - 1) separators and every
// non-depot customer id exactly once. The depot id never appears; depot
// insertion happens only at decode time.
type Chromosome []Gene

// Count the separator genes.
func (c Chromosome) SeparatorCount() int {
	count := 0
	for _, g := range c {
		if g.Separator {
			count++
		}
	}
	return count
}

// Return the customer ids in chromosome order, separators skipped.
func (c Chromosome) CustomerIDs() []int {
	ids := make([]int, 0, len(c))
	for _, g := range c {
		if !g.Separator {
			ids = append(ids, g.Customer)
		}
	}
	return ids
}

// Return an independent copy. Repair operators work on copies so callers
// never observe a half-repaired sequence through an alias.
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)
	return out
}

// Render the sequence for logs and reports, e.g. "3 7 | 2 | 5".
func (c Chromosome) String() string {
	var b strings.Builder
	for i, g := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		if g.Separator {
			b.WriteByte('|')
		} else {
			b.WriteString(strconv.Itoa(g.Customer))
		}
	}
	return b.String()
}
