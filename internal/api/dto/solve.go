package dto

type SolveRequest struct {
	Instance       string `json:"instance"`
	Vehicles       int    `json:"vehicles"`
	PopulationSize int    `json:"population_size"`
	Seed           *int64 `json:"seed"`
}

type IndividualResponse struct {
	Index int `json:"index"`
	// Routes carry only interior customer ids, grouped per vehicle; route
	// boundaries double as the chromosome's separator positions.
	Routes   [][]int `json:"routes"`
	Cost     float64 `json:"cost"`
	Feasible bool    `json:"feasible"`
}

type SolveResponse struct {
	RunID       string               `json:"run_id"`
	Instance    string               `json:"instance"`
	Vehicles    int                  `json:"vehicles"`
	Individuals []IndividualResponse `json:"individuals"`
	BestIndex   int                  `json:"best_index"`
	BestCost    float64              `json:"best_cost"`
	BestRoutes  [][]int              `json:"best_routes"`
}
