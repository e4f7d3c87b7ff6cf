package domain

// Immutable planar coordinates of a node, as read from a TSPLIB
// NODE_COORD_SECTION.
type Coordinates struct {
	X float64
	Y float64
}
