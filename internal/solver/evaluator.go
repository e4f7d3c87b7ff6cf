package solver

import (
	"math"

	"cvrp-solver-service/internal/domain"
	"cvrp-solver-service/internal/ports"
)

// Evaluator computes demand, cost and feasibility of decoded routes for
// one instance. It never mutates routes or chromosomes.
//
// Costs are rounded to two decimals at three independent levels: each
// edge distance (by the Distancer), each route sum, and the final total.
// The three-stage rounding is NOT equivalent to rounding once at the
// end; it reproduces the reference costs exactly and must not be
// collapsed. Rounding is half away from zero (math.Round).
type Evaluator struct {
	Inst *domain.Instance
	Dist ports.Distancer
}

// Sum the demand of a route's interior customers.
func (e *Evaluator) RouteDemand(r domain.Route) int {
	sum := 0
	for _, id := range r.Interior() {
		sum += e.Inst.Demand(id)
	}
	return sum
}

// Sum the edge distances along a route, rounded to two decimals.
func (e *Evaluator) RouteCost(r domain.Route) float64 {
	cost := 0.0
	for i := 0; i+1 < len(r); i++ {
		cost += e.Dist.Distance(r[i], r[i+1])
	}
	return round2(cost)
}

// Sum all route costs, rounded to two decimals again.
func (e *Evaluator) TotalCost(routes []domain.Route) float64 {
	sum := 0.0
	for _, r := range routes {
		sum += e.RouteCost(r)
	}
	return round2(sum)
}

// Report whether the routes form a feasible solution: every route's
// demand within capacity and every non-depot customer visited exactly
// once. Returns false on the first violation; the failing constraint is
// not reported.
func (e *Evaluator) CheckSolution(routes []domain.Route) bool {
	visited := make(map[int]bool, e.Inst.Dimension)
	for _, r := range routes {
		if e.RouteDemand(r) > e.Inst.Capacity {
			return false
		}
		for _, id := range r.Interior() {
			if visited[id] {
				return false
			}
			visited[id] = true
		}
	}
	for _, id := range e.Inst.Customers() {
		if !visited[id] {
			return false
		}
	}
	return true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
