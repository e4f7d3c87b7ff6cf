package api

import (
	"net/http"

	"cvrp-solver-service/internal/api/handlers"
	"cvrp-solver-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(instances ports.InstanceRepository, runs ports.RunRepository) http.Handler {
	mux := http.NewServeMux()

	instanceHandler := &handlers.InstanceHandler{Repo: instances}
	solveHandler := &handlers.SolveHandler{
		Instances: instances,
		Runs:      runs,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/instances", instanceHandler.List)
	mux.HandleFunc("/solve", solveHandler.Solve)

	return loggingMiddleware(mux)
}
