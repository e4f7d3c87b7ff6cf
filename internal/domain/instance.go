package domain

import (
	"fmt"
	"sort"
)

// A CVRP problem instance: nodes with coordinates and demands, one depot,
// and a uniform vehicle capacity. Node ids run 1..Dimension and include
// the depot. An Instance is immutable input data; solvers never modify it.
type Instance struct {
	Name      string
	Dimension int
	Capacity  int
	Depot     int
	Coords    map[int]Coordinates
	Demands   map[int]int
}

// Return the non-depot customer ids in ascending order.
//
// The set is derived explicitly as "all node ids minus the depot id",
// never as an offset range, so a depot id other than 1 is handled
// correctly.
func (i *Instance) Customers() []int {
	customers := make([]int, 0, len(i.Demands))
	for id := range i.Demands {
		if id == i.Depot {
			continue
		}
		customers = append(customers, id)
	}
	sort.Ints(customers)
	return customers
}

// Return the demand of a node. The depot has no demand.
func (i *Instance) Demand(id int) int {
	return i.Demands[id]
}

// Validate basic instance well-formedness before solving.
func (i *Instance) Validate() error {
	if i.Dimension < 1 {
		return fmt.Errorf("instance %q: dimension must be >= 1, got %d", i.Name, i.Dimension)
	}
	if i.Capacity < 1 {
		return fmt.Errorf("instance %q: capacity must be >= 1, got %d", i.Name, i.Capacity)
	}
	if _, ok := i.Coords[i.Depot]; !ok {
		return fmt.Errorf("instance %q: depot %d has no coordinates", i.Name, i.Depot)
	}
	for id := 1; id <= i.Dimension; id++ {
		if _, ok := i.Coords[id]; !ok {
			return fmt.Errorf("instance %q: node %d has no coordinates", i.Name, id)
		}
		if d, ok := i.Demands[id]; ok && d < 0 {
			return fmt.Errorf("instance %q: node %d has negative demand %d", i.Name, id, d)
		}
	}
	return nil
}
