package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Populate a Postgres mirror with instance data from a JSON file.
// The DDL in InitSchema is dialect-neutral; only the upserts differ, so
// the Postgres path carries its own statements with $n placeholders.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed instances: read %q: %w", jsonPath, err)
	}

	var data []InstanceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed instances: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed instances: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	instQuery := `
	INSERT INTO instances (name, dimension, capacity, depot)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (name) DO UPDATE
	SET dimension = EXCLUDED.dimension,
	    capacity = EXCLUDED.capacity,
	    depot = EXCLUDED.depot;
	`
	nodeQuery := `
	INSERT INTO nodes (instance, node_id, x, y, demand)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (instance, node_id) DO UPDATE
	SET x = EXCLUDED.x,
	    y = EXCLUDED.y,
	    demand = EXCLUDED.demand;
	`

	for i, seed := range data {
		name := strings.TrimSpace(seed.Name)
		if name == "" {
			return fmt.Errorf("seed instances: item at index %d: name cannot be empty", i)
		}
		if _, err := tx.Exec(instQuery, name, len(seed.Nodes), seed.Capacity, seed.Depot); err != nil {
			return fmt.Errorf("seed instances: insert instance %q: %w", name, err)
		}
		for _, node := range seed.Nodes {
			if _, err := tx.Exec(nodeQuery, name, node.ID, node.X, node.Y, node.Demand); err != nil {
				return fmt.Errorf("seed instances: insert node %d of %q: %w", node.ID, name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed instances: commit tx: %w", err)
	}

	return nil
}
