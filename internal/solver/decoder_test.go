package solver

import (
	"reflect"
	"testing"

	"cvrp-solver-service/internal/domain"
)

func TestDecodeSplitsAtSeparators(t *testing.T) {
	routes := Decode(chrom(2, 3, sep, 4), 1)

	want := []domain.Route{{1, 2, 3, 1}, {1, 4, 1}}
	if !reflect.DeepEqual(routes, want) {
		t.Fatalf("Decode = %v, want %v", routes, want)
	}
}

func TestDecodeEmitsInteriorEmptyRoute(t *testing.T) {
	routes := Decode(chrom(2, sep, sep, 3), 1)

	// Adjacent separators produce a degenerate depot-depot route; only a
	// trailing empty route is suppressed.
	want := []domain.Route{{1, 2, 1}, {1, 1}, {1, 3, 1}}
	if !reflect.DeepEqual(routes, want) {
		t.Fatalf("Decode = %v, want %v", routes, want)
	}
}

func TestDecodeSuppressesTrailingEmptyRoute(t *testing.T) {
	routes := Decode(chrom(2, 3, sep), 1)

	want := []domain.Route{{1, 2, 3, 1}}
	if !reflect.DeepEqual(routes, want) {
		t.Fatalf("Decode = %v, want %v", routes, want)
	}
}

func TestDecodeNoCustomersTwoSeparators(t *testing.T) {
	// Vehicle count 3 with no customers: two degenerate routes come out,
	// the third (trailing empty) does not.
	routes := Decode(chrom(sep, sep), 1)

	want := []domain.Route{{1, 1}, {1, 1}}
	if !reflect.DeepEqual(routes, want) {
		t.Fatalf("Decode = %v, want %v", routes, want)
	}
}

func TestDecodeRoundTripPreservesCustomerOrder(t *testing.T) {
	in := chrom(7, 2, sep, sep, 5, 4, sep, 3)

	routes := Decode(in, 1)

	var interior []int
	for _, r := range routes {
		interior = append(interior, r.Interior()...)
	}
	if !reflect.DeepEqual(interior, in.CustomerIDs()) {
		t.Fatalf("interior ids %v do not reproduce chromosome customers %v", interior, in.CustomerIDs())
	}

	// Separator count bounds the emitted route count: vehicles minus the
	// suppressed trailing empty (0 or 1 of them).
	vehicles := in.SeparatorCount() + 1
	if n := len(routes); n != vehicles && n != vehicles-1 {
		t.Fatalf("route count = %d, want %d or %d", n, vehicles, vehicles-1)
	}
}
