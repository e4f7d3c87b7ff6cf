package domain

import "time"

// Record of one completed solve: which instance was solved, with what
// parameters, and which individual of the generated population won.
// Persisted for later inspection; never read back by the solver itself.
type SolveRun struct {
	RunID          string
	Instance       string
	Vehicles       int
	PopulationSize int
	BestIndex      int
	BestCost       float64
	Feasible       bool
	CreatedAt      time.Time
}
