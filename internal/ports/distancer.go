package ports

// Contract for pairwise travel distance between two node ids.
type Distancer interface {
	// Return the distance between nodes a and b.
	Distance(a, b int) float64
}
