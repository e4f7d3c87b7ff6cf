package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cvrp-solver-service/internal/domain"
	"cvrp-solver-service/internal/ports"
)

// SQLite-backed implementation of the InstanceRepository port.
type SqliteInstanceRepository struct{ DB *sql.DB }

func NewSqliteInstanceRepository(db *sql.DB) *SqliteInstanceRepository {
	return &SqliteInstanceRepository{DB: db}
}

// Return summaries of all stored instances.
func (s *SqliteInstanceRepository) ListInstances(ctx context.Context) ([]ports.InstanceInfo, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite instance repository: DB is nil")
	}

	query := `
	SELECT
		name,
		dimension,
		capacity,
		depot
	FROM instances
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list instances: query instances table: %w", err)
	}
	defer rows.Close()

	infos := make([]ports.InstanceInfo, 0, 16)
	for rows.Next() {
		var info ports.InstanceInfo
		if err := rows.Scan(&info.Name, &info.Dimension, &info.Capacity, &info.Depot); err != nil {
			return nil, fmt.Errorf("list instances: scan row: %w", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list instances: row iteration: %w", err)
	}

	return infos, nil
}

// Return one full instance with its nodes and demands.
func (s *SqliteInstanceRepository) GetInstance(ctx context.Context, name string) (*domain.Instance, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite instance repository: DB is nil")
	}

	inst := &domain.Instance{
		Coords:  map[int]domain.Coordinates{},
		Demands: map[int]int{},
	}

	headQuery := `
	SELECT
		name,
		dimension,
		capacity,
		depot
	FROM instances
	WHERE name = ?;
	`
	row := s.DB.QueryRowContext(ctx, headQuery, name)
	if err := row.Scan(&inst.Name, &inst.Dimension, &inst.Capacity, &inst.Depot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get instance %q: %w", name, ports.ErrInstanceNotFound)
		}
		return nil, fmt.Errorf("get instance %q: scan header: %w", name, err)
	}

	nodesQuery := `
	SELECT
		node_id,
		x,
		y,
		demand
	FROM nodes
	WHERE instance = ?
	ORDER BY node_id;
	`
	rows, err := s.DB.QueryContext(ctx, nodesQuery, name)
	if err != nil {
		return nil, fmt.Errorf("get instance %q: query nodes: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id     int
			x, y   float64
			demand int
		)
		if err := rows.Scan(&id, &x, &y, &demand); err != nil {
			return nil, fmt.Errorf("get instance %q: scan node: %w", name, err)
		}
		inst.Coords[id] = domain.Coordinates{X: x, Y: y}
		inst.Demands[id] = demand
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get instance %q: node iteration: %w", name, err)
	}

	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("get instance %q: stored data invalid: %w", name, err)
	}

	return inst, nil
}
