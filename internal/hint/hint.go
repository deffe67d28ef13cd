package hint

import (
	"context"
	"fmt"

	"svw.info/morajai/internal/domain"
	"svw.info/morajai/internal/ports"
)

// NextPress suggests the first press of a shortest solution from the
// puzzle's live state.
type NextPress struct {
	Solver ports.Solver
}

func NewNextPress(s ports.Solver) *NextPress { return &NextPress{Solver: s} }

// Hint solves from the live grid and returns the first press of the
// result. Not found when the corners already match (press the corners) or
// when no solution is reachable from the current state.
func (h *NextPress) Hint(ctx context.Context, p *domain.Puzzle) (domain.Hint, bool, error) {
	path, found, _, err := h.Solver.Solve(ctx, p.Goals, p.State)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if !found {
		return domain.Hint{}, false, nil
	}
	if len(path) == 0 {
		return domain.Hint{Message: "corners match their goals: press the corner buttons"}, true, nil
	}
	first := path[0]
	msg := fmt.Sprintf("press tile %d (%d more after it)", 1+3*first.Row+first.Col, len(path)-1)
	return domain.Hint{Message: msg, Cells: []domain.Coord{first}}, true, nil
}
