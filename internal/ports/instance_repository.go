package ports

import (
	"context"
	"errors"

	"cvrp-solver-service/internal/domain"
)

// Returned (possibly wrapped) by GetInstance when no instance has the
// requested name.
var ErrInstanceNotFound = errors.New("instance not found")

// Summary row for instance listings.
type InstanceInfo struct {
	Name      string
	Dimension int
	Capacity  int
	Depot     int
}

// Port: a boundary for retrieving CVRP instances from a data source.
type InstanceRepository interface {
	// Return summaries of all stored instances.
	ListInstances(ctx context.Context) ([]InstanceInfo, error)
	// Return one full instance by name.
	GetInstance(ctx context.Context, name string) (*domain.Instance, error)
}
