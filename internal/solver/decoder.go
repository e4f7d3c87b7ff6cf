package solver

import "cvrp-solver-service/internal/domain"

// Decode a chromosome into explicit depot-rooted routes.
//
// Pure transform: each separator closes the current route with the depot
// and opens a new one; customer genes extend the current route. An
// interior empty route (two adjacent separators) IS emitted as a
// degenerate [depot, depot] route, while a trailing empty route is
// discarded. The asymmetry is intentional and load-bearing: route
// counts below may be vehicles or vehicles-1 depending on whether the
// last bin was empty.
func Decode(c domain.Chromosome, depot int) []domain.Route {
	routes := make([]domain.Route, 0, c.SeparatorCount()+1)
	current := domain.Route{depot}
	for _, g := range c {
		if g.Separator {
			current = append(current, depot)
			routes = append(routes, current)
			current = domain.Route{depot}
			continue
		}
		current = append(current, g.Customer)
	}
	if len(current) > 1 {
		current = append(current, depot)
		routes = append(routes, current)
	}
	return routes
}
