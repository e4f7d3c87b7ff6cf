package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"cvrp-solver-service/internal/adapters/matrix"
	"cvrp-solver-service/internal/api/dto"
	"cvrp-solver-service/internal/domain"
	"cvrp-solver-service/internal/platform/obs"
	"cvrp-solver-service/internal/ports"
	"cvrp-solver-service/internal/solver"

	"github.com/google/uuid"
)

type SolveHandler struct {
	Instances ports.InstanceRepository
	Runs      ports.RunRepository
}

// Solve orchestrates one population run: load the instance, build the
// distance matrix, generate and repair the population, cost every
// individual and persist the best-of-run record.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SolveRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	name := strings.TrimSpace(req.Instance)
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "instance is required")
		return
	}

	if req.Vehicles < 1 || req.Vehicles > 100 {
		writeError(w, r, http.StatusBadRequest, "vehicles must be between 1 and 100")
		return
	}

	popSize := req.PopulationSize
	if popSize == 0 {
		popSize = solver.DefaultPopulationSize
	}
	if popSize < 1 || popSize > 1000 {
		writeError(w, r, http.StatusBadRequest, "population_size must be between 1 and 1000")
		return
	}

	inst, err := h.Instances.GetInstance(r.Context(), name)
	if err != nil {
		if errors.Is(err, ports.ErrInstanceNotFound) {
			writeError(w, r, http.StatusNotFound, "instance not found")
			return
		}
		log.Printf("get instance failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	dist, err := matrix.NewEuclidean(inst)
	if err != nil {
		log.Printf("build distance matrix failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// Absent seed keeps the entropy-seeded behavior; an explicit seed
	// makes the run replayable.
	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}

	done := obs.Time(r.Context(), "solve "+name)
	res, solveErr := solver.Solve(inst, dist, solver.Params{
		Vehicles:       req.Vehicles,
		PopulationSize: popSize,
	}, rng)
	done(&solveErr)
	if solveErr != nil {
		log.Printf("solve failed: %v", solveErr)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	run := &domain.SolveRun{
		RunID:          uuid.NewString(),
		Instance:       inst.Name,
		Vehicles:       req.Vehicles,
		PopulationSize: popSize,
		BestIndex:      res.BestIndex,
		BestCost:       res.BestCost,
		Feasible:       res.Individuals[res.BestIndex].Feasible,
		CreatedAt:      time.Now(),
	}
	if err := h.Runs.SaveRun(r.Context(), run); err != nil {
		log.Printf("save run failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	out := dto.SolveResponse{
		RunID:       run.RunID,
		Instance:    inst.Name,
		Vehicles:    req.Vehicles,
		Individuals: make([]dto.IndividualResponse, 0, len(res.Individuals)),
		BestIndex:   res.BestIndex,
		BestCost:    res.BestCost,
		BestRoutes:  interiorRoutes(res.Individuals[res.BestIndex].Routes),
	}
	for i, ind := range res.Individuals {
		out.Individuals = append(out.Individuals, dto.IndividualResponse{
			Index:    i,
			Routes:   interiorRoutes(ind.Routes),
			Cost:     ind.Cost,
			Feasible: ind.Feasible,
		})
	}

	writeJSON(w, r, http.StatusOK, out)
}

// Strip depot endpoints for transport; empty routes stay as empty groups
// so unused vehicle slots remain visible.
func interiorRoutes(routes []domain.Route) [][]int {
	out := make([][]int, 0, len(routes))
	for _, r := range routes {
		interior := r.Interior()
		group := make([]int, len(interior))
		copy(group, interior)
		out = append(out, group)
	}
	return out
}
