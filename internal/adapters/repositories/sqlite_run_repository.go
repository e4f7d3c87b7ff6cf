package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cvrp-solver-service/internal/domain"
)

// SQLite-backed implementation of the RunRepository port.
type SqliteRunRepository struct{ DB *sql.DB }

func NewSqliteRunRepository(db *sql.DB) *SqliteRunRepository {
	return &SqliteRunRepository{DB: db}
}

// Persist one completed solve run.
func (s *SqliteRunRepository) SaveRun(ctx context.Context, run *domain.SolveRun) error {
	if s.DB == nil {
		return errors.New("sqlite run repository: DB is nil")
	}
	if run == nil {
		return errors.New("save run: run is nil")
	}

	feasible := 0
	if run.Feasible {
		feasible = 1
	}

	query := `
	INSERT INTO solve_runs (
		run_id,
		instance,
		vehicles,
		population,
		best_index,
		best_cost,
		feasible,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(
		ctx,
		query,
		run.RunID,
		run.Instance,
		run.Vehicles,
		run.PopulationSize,
		run.BestIndex,
		run.BestCost,
		feasible,
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save run %q: insert: %w", run.RunID, err)
	}

	return nil
}
