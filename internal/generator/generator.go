package generator

import "svw.info/morajai/internal/ports"

// RejectionGenerator samples random puzzles and keeps the first one the
// provided Solver can solve.
type RejectionGenerator struct {
	Solver ports.Solver
}

// NewRejectionGenerator wires a generator that uses the given solver for
// solvability checks.
func NewRejectionGenerator(s ports.Solver) *RejectionGenerator {
	return &RejectionGenerator{Solver: s}
}
