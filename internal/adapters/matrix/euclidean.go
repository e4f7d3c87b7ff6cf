// Package matrix provides the in-memory Euclidean distance matrix
// behind the ports.Distancer boundary.
package matrix

import (
	"fmt"
	"math"

	"cvrp-solver-service/internal/domain"
)

// Pairwise Euclidean distances over node ids 1..dimension, precomputed
// once per instance. Each edge is rounded to two decimals at build time
// (half away from zero); route and total sums are rounded again by the
// evaluator, so the three rounding stages stay independent.
type Euclidean struct {
	dist [][]float64
	n    int
}

func NewEuclidean(inst *domain.Instance) (*Euclidean, error) {
	n := inst.Dimension
	if n < 1 {
		return nil, fmt.Errorf("euclidean matrix: dimension must be >= 1, got %d", n)
	}

	dist := make([][]float64, n+1)
	for i := 1; i <= n; i++ {
		dist[i] = make([]float64, n+1)
	}
	for i := 1; i <= n; i++ {
		a, ok := inst.Coords[i]
		if !ok {
			return nil, fmt.Errorf("euclidean matrix: node %d has no coordinates", i)
		}
		for j := 1; j <= n; j++ {
			b := inst.Coords[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			dist[i][j] = math.Round(d*100) / 100
		}
	}
	return &Euclidean{dist: dist, n: n}, nil
}

// Return the rounded distance between nodes a and b. Ids outside
// 1..dimension yield zero rather than a panic; the solver never asks
// for them.
func (m *Euclidean) Distance(a, b int) float64 {
	if a < 1 || a > m.n || b < 1 || b > m.n {
		return 0
	}
	return m.dist[a][b]
}
