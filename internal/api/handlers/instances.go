package handlers

import (
	"log"
	"net/http"

	"cvrp-solver-service/internal/api/dto"
	"cvrp-solver-service/internal/ports"
)

// InstanceHandler exposes read-only instance retrieval endpoints.
type InstanceHandler struct {
	Repo ports.InstanceRepository
}

func (h *InstanceHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	infos, err := h.Repo.ListInstances(r.Context())
	if err != nil {
		log.Printf("list instances failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListInstancesResponse{
		Instances: make([]dto.InstanceResponse, 0, len(infos)),
	}
	for _, info := range infos {
		res.Instances = append(res.Instances, dto.InstanceResponse{
			Name:      info.Name,
			Dimension: info.Dimension,
			Capacity:  info.Capacity,
			Depot:     info.Depot,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
