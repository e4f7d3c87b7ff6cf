package ports

import (
	"context"

	"cvrp-solver-service/internal/domain"
)

// Port: a boundary for persisting completed solve runs.
type RunRepository interface {
	SaveRun(ctx context.Context, run *domain.SolveRun) error
}
