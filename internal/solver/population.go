package solver

import (
	"fmt"
	"math"
	"math/rand"

	"cvrp-solver-service/internal/domain"
	"cvrp-solver-service/internal/ports"
)

// Default number of individuals generated per solve.
const DefaultPopulationSize = 50

type Params struct {
	Vehicles       int
	PopulationSize int
}

// One generated, repaired and evaluated candidate solution.
type Individual struct {
	Chromosome domain.Chromosome
	Routes     []domain.Route
	Cost       float64
	Feasible   bool
}

// Result of one multi-start construction pass over a whole population.
type Result struct {
	Individuals []Individual
	BestIndex   int
	BestCost    float64
}

// Solve runs the repeated random construction: generate a population of
// independent chromosomes, force each through separator and customer
// repair, decode and cost each, and pick the minimum-cost individual.
//
// This is a stochastic multi-start constructive heuristic, not a genetic
// algorithm: there is no crossover, mutation or selection, and no
// chromosome survives past this call. Individuals are processed
// sequentially; the arg-min over scalar costs is order-independent.
func Solve(inst *domain.Instance, dist ports.Distancer, p Params, rng *rand.Rand) (*Result, error) {
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	if p.Vehicles < 1 {
		return nil, fmt.Errorf("solve: vehicles must be >= 1, got %d", p.Vehicles)
	}
	if p.PopulationSize == 0 {
		p.PopulationSize = DefaultPopulationSize
	}
	if p.PopulationSize < 1 {
		return nil, fmt.Errorf("solve: population size must be >= 1, got %d", p.PopulationSize)
	}

	gen := NewGenerator(rng)
	eval := &Evaluator{Inst: inst, Dist: dist}

	res := &Result{
		Individuals: make([]Individual, 0, p.PopulationSize),
		BestIndex:   -1,
		BestCost:    math.MaxFloat64,
	}
	for i := 0; i < p.PopulationSize; i++ {
		chrom := gen.Chromosome(inst, p.Vehicles)
		chrom = RepairSeparators(chrom, p.Vehicles)
		chrom, err := RepairCustomers(chrom, inst)
		if err != nil {
			return nil, fmt.Errorf("solve: individual %d: %w", i, err)
		}

		routes := Decode(chrom, inst.Depot)
		ind := Individual{
			Chromosome: chrom,
			Routes:     routes,
			Cost:       eval.TotalCost(routes),
			Feasible:   eval.CheckSolution(routes),
		}
		res.Individuals = append(res.Individuals, ind)

		if ind.Cost < res.BestCost {
			res.BestCost = ind.Cost
			res.BestIndex = i
		}
	}
	return res, nil
}
