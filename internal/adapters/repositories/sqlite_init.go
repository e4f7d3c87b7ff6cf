package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the database schema for instances, nodes and solve runs.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createInstancesQuery := `
	CREATE TABLE IF NOT EXISTS instances (
		name TEXT PRIMARY KEY,
		dimension INTEGER NOT NULL,
		capacity INTEGER NOT NULL,
		depot INTEGER NOT NULL
	);
	`

	createNodesQuery := `
	CREATE TABLE IF NOT EXISTS nodes (
		instance TEXT NOT NULL,
		node_id INTEGER NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		demand INTEGER NOT NULL,
		PRIMARY KEY (instance, node_id)
	);
	`

	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS solve_runs (
		run_id TEXT PRIMARY KEY,
		instance TEXT NOT NULL,
		vehicles INTEGER NOT NULL,
		population INTEGER NOT NULL,
		best_index INTEGER NOT NULL,
		best_cost REAL NOT NULL,
		feasible INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createRunIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_solve_runs_instance
	ON solve_runs(instance, created_at);
	`

	statements := []string{
		createInstancesQuery,
		createNodesQuery,
		createRunsQuery,
		createRunIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type NodeSeed struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Demand int     `json:"demand"`
}

type InstanceSeed struct {
	Name     string     `json:"name"`
	Capacity int        `json:"capacity"`
	Depot    int        `json:"depot"`
	Nodes    []NodeSeed `json:"nodes"`
}

// Populate the database with instance data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed instances: read %q: %w", jsonPath, err)
	}

	var data []InstanceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed instances: parse json: %w", err)
	}

	for i, seed := range data {
		name := strings.TrimSpace(seed.Name)
		if name == "" {
			return fmt.Errorf("seed instances: item at index %d: name cannot be empty", i)
		}
		if seed.Capacity < 1 {
			return fmt.Errorf("seed instances: %q: invalid capacity %d", name, seed.Capacity)
		}
		if seed.Depot < 1 {
			return fmt.Errorf("seed instances: %q: invalid depot %d", name, seed.Depot)
		}
		if len(seed.Nodes) == 0 {
			return fmt.Errorf("seed instances: %q: no nodes", name)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed instances: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	instStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO instances (name, dimension, capacity, depot)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed instances: prepare instance insert: %w", err)
	}
	defer instStmt.Close()

	nodeStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO nodes (instance, node_id, x, y, demand)
	VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed instances: prepare node insert: %w", err)
	}
	defer nodeStmt.Close()

	for _, seed := range data {
		name := strings.TrimSpace(seed.Name)
		if _, err := instStmt.Exec(name, len(seed.Nodes), seed.Capacity, seed.Depot); err != nil {
			return fmt.Errorf("seed instances: insert instance %q: %w", name, err)
		}
		for _, node := range seed.Nodes {
			if _, err := nodeStmt.Exec(name, node.ID, node.X, node.Y, node.Demand); err != nil {
				return fmt.Errorf("seed instances: insert node %d of %q: %w", node.ID, name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed instances: commit tx: %w", err)
	}

	return nil
}
