package dto

type InstanceResponse struct {
	Name      string `json:"name"`
	Dimension int    `json:"dimension"`
	Capacity  int    `json:"capacity"`
	Depot     int    `json:"depot"`
}

type ListInstancesResponse struct {
	Instances []InstanceResponse `json:"instances"`
}
