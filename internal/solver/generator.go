package solver

import (
	"math/rand"
	"time"

	"cvrp-solver-service/internal/domain"
)

// Generator produces random candidate chromosomes for one instance.
//
// The random source is an explicit dependency so tests can fix a seed;
// passing nil seeds a fresh source from the clock, which preserves the
// original run-to-run nondeterminism.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Build one random chromosome for the instance.
//
// Customers are shuffled uniformly, then packed greedily into bins: a
// customer joins the current bin while the running load stays within
// capacity; otherwise the current bin is closed (even when empty) and a
// new bin starts with that customer. Empty bins pad the tail until the
// bin count reaches the vehicle count, and bins are flattened with one
// separator between consecutive bins.
//
// A customer whose demand alone exceeds capacity is packed as-is into
// its own bin. The resulting chromosome is structurally valid but can
// never decode to a feasible route; that is detected by the evaluator,
// not prevented here. Packing may also produce more bins than vehicles;
// RepairSeparators resolves that downstream.
func (g *Generator) Chromosome(inst *domain.Instance, vehicles int) domain.Chromosome {
	customers := inst.Customers()
	g.rng.Shuffle(len(customers), func(i, j int) {
		customers[i], customers[j] = customers[j], customers[i]
	})

	var bins [][]int
	var bin []int
	load := 0
	for _, id := range customers {
		d := inst.Demand(id)
		if load+d <= inst.Capacity {
			bin = append(bin, id)
			load += d
			continue
		}
		bins = append(bins, bin)
		bin = []int{id}
		load = d
	}
	if len(bin) > 0 {
		bins = append(bins, bin)
	}
	for len(bins) < vehicles {
		bins = append(bins, nil)
	}

	chrom := make(domain.Chromosome, 0, len(customers)+len(bins)-1)
	for i, b := range bins {
		if i > 0 {
			chrom = append(chrom, domain.SeparatorGene())
		}
		for _, id := range b {
			chrom = append(chrom, domain.CustomerGene(id))
		}
	}
	return chrom
}
