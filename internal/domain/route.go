package domain

// Route is an ordered list of node ids beginning and ending with the
// depot id. A route with no interior nodes is degenerate and represents
// an unused vehicle slot.
type Route []int

// Return the customer ids between the two depot endpoints.
func (r Route) Interior() []int {
	if len(r) <= 2 {
		return nil
	}
	return r[1 : len(r)-1]
}

// Report whether the route visits no customers.
func (r Route) Degenerate() bool {
	return len(r) <= 2
}
