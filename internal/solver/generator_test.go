package solver

import (
	"math/rand"
	"testing"

	"cvrp-solver-service/internal/domain"
)

func testInstance() *domain.Instance {
	return &domain.Instance{
		Name:      "test-8",
		Dimension: 8,
		Capacity:  10,
		Depot:     1,
		Coords: map[int]domain.Coordinates{
			1: {X: 0, Y: 0}, 2: {X: 1, Y: 0}, 3: {X: 2, Y: 0}, 4: {X: 3, Y: 0},
			5: {X: 0, Y: 1}, 6: {X: 0, Y: 2}, 7: {X: 0, Y: 3}, 8: {X: 1, Y: 1},
		},
		Demands: map[int]int{1: 0, 2: 4, 3: 5, 4: 3, 5: 6, 6: 2, 7: 7, 8: 1},
	}
}

func TestGeneratorCustomersOnceNoDepot(t *testing.T) {
	inst := testInstance()
	gen := NewGenerator(rand.New(rand.NewSource(1)))

	for trial := 0; trial < 50; trial++ {
		c := gen.Chromosome(inst, 4)

		seen := map[int]int{}
		for _, id := range c.CustomerIDs() {
			if id == inst.Depot {
				t.Fatalf("trial %d: depot id %d appeared in chromosome %v", trial, inst.Depot, c)
			}
			seen[id]++
		}
		for _, id := range inst.Customers() {
			if seen[id] != 1 {
				t.Fatalf("trial %d: customer %d appears %d times in %v", trial, id, seen[id], c)
			}
		}
		if got, want := len(c.CustomerIDs()), inst.Dimension-1; got != want {
			t.Fatalf("trial %d: %d customer genes, want %d", trial, got, want)
		}
	}
}

func TestGeneratorBinsRespectCapacity(t *testing.T) {
	inst := testInstance()
	gen := NewGenerator(rand.New(rand.NewSource(7)))

	for trial := 0; trial < 50; trial++ {
		c := gen.Chromosome(inst, 3)

		load := 0
		for _, g := range c {
			if g.Separator {
				load = 0
				continue
			}
			load += inst.Demand(g.Customer)
			if load > inst.Capacity {
				t.Fatalf("trial %d: bin load %d exceeds capacity %d in %v", trial, load, inst.Capacity, c)
			}
		}
	}
}

func TestGeneratorPadsBinsToVehicleCount(t *testing.T) {
	// Total demand 28 fits in one bin of capacity 100, so packing yields a
	// single group and the remaining vehicles must come from padding.
	inst := testInstance()
	inst.Capacity = 100
	gen := NewGenerator(rand.New(rand.NewSource(3)))

	c := gen.Chromosome(inst, 5)
	if got := c.SeparatorCount(); got != 4 {
		t.Fatalf("separator count = %d, want 4 (padded to 5 bins)", got)
	}
}

func TestGeneratorOversizeDemandPackedAlone(t *testing.T) {
	inst := testInstance()
	inst.Demands[7] = 25 // exceeds capacity 10 on its own

	gen := NewGenerator(rand.New(rand.NewSource(11)))
	for trial := 0; trial < 50; trial++ {
		c := gen.Chromosome(inst, 4)

		// The oversize customer is packed as-is; it must still appear
		// exactly once and always be alone in its bin.
		count := 0
		binHas7 := false
		binSize := 0
		check := func() {
			if binHas7 && binSize != 1 {
				t.Fatalf("trial %d: oversize customer 7 shares a bin in %v", trial, c)
			}
		}
		for _, g := range c {
			if g.Separator {
				check()
				binSize, binHas7 = 0, false
				continue
			}
			binSize++
			if g.Customer == 7 {
				count++
				binHas7 = true
			}
		}
		check()
		if count != 1 {
			t.Fatalf("trial %d: oversize customer 7 appears %d times", trial, count)
		}
	}
}

func TestGeneratorNilRandSeedsItself(t *testing.T) {
	gen := NewGenerator(nil)
	c := gen.Chromosome(testInstance(), 3)
	if len(c) == 0 {
		t.Fatal("nil-rand generator produced an empty chromosome")
	}
}
