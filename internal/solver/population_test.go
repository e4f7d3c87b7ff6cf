package solver

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"cvrp-solver-service/internal/adapters/matrix"
)

func TestSolvePopulationInvariants(t *testing.T) {
	inst := testInstance()
	m, err := matrix.NewEuclidean(inst)
	if err != nil {
		t.Fatalf("build matrix: %v", err)
	}

	vehicles := 3
	res, err := Solve(inst, m, Params{Vehicles: vehicles, PopulationSize: 25}, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Individuals) != 25 {
		t.Fatalf("population size = %d, want 25", len(res.Individuals))
	}

	customers := inst.Customers()
	for i, ind := range res.Individuals {
		if got := ind.Chromosome.SeparatorCount(); got != vehicles-1 {
			t.Fatalf("individual %d: separator count = %d, want %d", i, got, vehicles-1)
		}

		ids := append([]int(nil), ind.Chromosome.CustomerIDs()...)
		sort.Ints(ids)
		if !reflect.DeepEqual(ids, customers) {
			t.Fatalf("individual %d: customers %v, want %v", i, ids, customers)
		}

		// Routes must reproduce the chromosome's customer tokens in order.
		var interior []int
		for _, r := range ind.Routes {
			interior = append(interior, r.Interior()...)
		}
		if !reflect.DeepEqual(interior, ind.Chromosome.CustomerIDs()) {
			t.Fatalf("individual %d: decoded interior %v != chromosome %v", i, interior, ind.Chromosome.CustomerIDs())
		}
	}
}

func TestSolveBestIsArgMin(t *testing.T) {
	inst := testInstance()
	m, err := matrix.NewEuclidean(inst)
	if err != nil {
		t.Fatalf("build matrix: %v", err)
	}

	res, err := Solve(inst, m, Params{Vehicles: 3, PopulationSize: 40}, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.BestIndex < 0 || res.BestIndex >= len(res.Individuals) {
		t.Fatalf("best index %d out of range", res.BestIndex)
	}
	if res.Individuals[res.BestIndex].Cost != res.BestCost {
		t.Fatalf("best cost %v != individual cost %v", res.BestCost, res.Individuals[res.BestIndex].Cost)
	}
	for i, ind := range res.Individuals {
		if ind.Cost < res.BestCost {
			t.Fatalf("individual %d cost %v beats reported best %v", i, ind.Cost, res.BestCost)
		}
	}
}

func TestSolveDefaultPopulationSize(t *testing.T) {
	inst := testInstance()
	m, err := matrix.NewEuclidean(inst)
	if err != nil {
		t.Fatalf("build matrix: %v", err)
	}

	res, err := Solve(inst, m, Params{Vehicles: 2}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Individuals) != DefaultPopulationSize {
		t.Fatalf("population size = %d, want default %d", len(res.Individuals), DefaultPopulationSize)
	}
}

func TestSolveOversizeDemandStaysInfeasible(t *testing.T) {
	inst := testInstance()
	inst.Demands[7] = 25 // no repair path exists for demand > capacity

	m, err := matrix.NewEuclidean(inst)
	if err != nil {
		t.Fatalf("build matrix: %v", err)
	}

	res, err := Solve(inst, m, Params{Vehicles: 3, PopulationSize: 10}, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, ind := range res.Individuals {
		if ind.Feasible {
			t.Fatalf("individual %d reported feasible despite oversize demand", i)
		}
	}
}

func TestSolveRejectsBadParams(t *testing.T) {
	inst := testInstance()
	m, err := matrix.NewEuclidean(inst)
	if err != nil {
		t.Fatalf("build matrix: %v", err)
	}

	if _, err := Solve(inst, m, Params{Vehicles: 0}, nil); err == nil {
		t.Fatal("expected error for zero vehicles")
	}
	if _, err := Solve(inst, m, Params{Vehicles: 2, PopulationSize: -3}, nil); err == nil {
		t.Fatal("expected error for negative population size")
	}
}
