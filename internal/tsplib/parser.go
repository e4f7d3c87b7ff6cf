// Package tsplib reads CVRP instances in the TSPLIB95 format used by the
// CMT and X benchmark sets.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cvrp-solver-service/internal/domain"
)

// ParseFile reads one instance from a TSPLIB file on disk.
func ParseFile(path string) (*domain.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open %q: %w", path, err)
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("tsplib: parse %q: %w", path, err)
	}
	return inst, nil
}

// Parse reads one instance from TSPLIB-formatted text.
//
// Required pieces: DIMENSION, CAPACITY, NODE_COORD_SECTION with one row
// per node, DEMAND_SECTION with one row per node, and DEPOT_SECTION
// whose first id names the depot (the -1 terminator is ignored).
// Malformed input aborts with a diagnostic; the solver core never sees
// a partially parsed instance.
func Parse(r io.Reader) (*domain.Instance, error) {
	sc := bufio.NewScanner(r)
	inst := &domain.Instance{
		Coords:  map[int]domain.Coordinates{},
		Demands: map[int]int{},
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, "NAME"):
			inst.Name = headerValue(line)

		case strings.HasPrefix(line, "DIMENSION"):
			n, err := strconv.Atoi(headerValue(line))
			if err != nil {
				return nil, fmt.Errorf("invalid DIMENSION %q: %w", line, err)
			}
			inst.Dimension = n

		case strings.HasPrefix(line, "CAPACITY"):
			c, err := strconv.Atoi(headerValue(line))
			if err != nil {
				return nil, fmt.Errorf("invalid CAPACITY %q: %w", line, err)
			}
			inst.Capacity = c

		case strings.HasPrefix(line, "NODE_COORD_SECTION"):
			if inst.Dimension < 1 {
				return nil, fmt.Errorf("NODE_COORD_SECTION before a valid DIMENSION")
			}
			if err := readCoords(sc, inst); err != nil {
				return nil, err
			}

		case strings.HasPrefix(line, "DEMAND_SECTION"):
			if inst.Dimension < 1 {
				return nil, fmt.Errorf("DEMAND_SECTION before a valid DIMENSION")
			}
			if err := readDemands(sc, inst); err != nil {
				return nil, err
			}

		case strings.HasPrefix(line, "DEPOT_SECTION"):
			depot, err := readDepot(sc)
			if err != nil {
				return nil, err
			}
			inst.Depot = depot
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if len(inst.Coords) == 0 {
		return nil, fmt.Errorf("missing NODE_COORD_SECTION")
	}
	if len(inst.Demands) == 0 {
		return nil, fmt.Errorf("missing DEMAND_SECTION")
	}
	if inst.Depot == 0 {
		return nil, fmt.Errorf("missing DEPOT_SECTION")
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

// Value after the colon of a "KEY : value" header line.
func headerValue(line string) string {
	if i := strings.Index(line, ":"); i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}
	return ""
}

func readCoords(sc *bufio.Scanner, inst *domain.Instance) error {
	for i := 0; i < inst.Dimension; i++ {
		fields, err := nextRow(sc, "NODE_COORD_SECTION")
		if err != nil {
			return err
		}
		if len(fields) != 3 {
			return fmt.Errorf("NODE_COORD_SECTION: want 3 fields, got %q", strings.Join(fields, " "))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("NODE_COORD_SECTION: invalid node id %q: %w", fields[0], err)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("NODE_COORD_SECTION: node %d: invalid x %q: %w", id, fields[1], err)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("NODE_COORD_SECTION: node %d: invalid y %q: %w", id, fields[2], err)
		}
		inst.Coords[id] = domain.Coordinates{X: x, Y: y}
	}
	return nil
}

func readDemands(sc *bufio.Scanner, inst *domain.Instance) error {
	for i := 0; i < inst.Dimension; i++ {
		fields, err := nextRow(sc, "DEMAND_SECTION")
		if err != nil {
			return err
		}
		if len(fields) != 2 {
			return fmt.Errorf("DEMAND_SECTION: want 2 fields, got %q", strings.Join(fields, " "))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("DEMAND_SECTION: invalid node id %q: %w", fields[0], err)
		}
		d, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("DEMAND_SECTION: node %d: invalid demand %q: %w", id, fields[1], err)
		}
		inst.Demands[id] = d
	}
	return nil
}

func readDepot(sc *bufio.Scanner) (int, error) {
	fields, err := nextRow(sc, "DEPOT_SECTION")
	if err != nil {
		return 0, err
	}
	depot, err := strconv.Atoi(fields[0])
	if err != nil || depot < 1 {
		return 0, fmt.Errorf("DEPOT_SECTION: invalid depot id %q", fields[0])
	}
	return depot, nil
}

// Next non-empty data row of a section.
func nextRow(sc *bufio.Scanner, section string) ([]string, error) {
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		return fields, nil
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: read: %w", section, err)
	}
	return nil, fmt.Errorf("%s: unexpected end of input", section)
}
