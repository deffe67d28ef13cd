package solver

import (
	"context"
	"time"

	"svw.info/morajai/internal/domain"
	"svw.info/morajai/internal/ports"
)

// BFSSolver finds shortest press sequences by level-order breadth-first
// search over reachable grids. Each frontier entry carries its full path.
type BFSSolver struct{}

func NewBFSSolver() *BFSSolver { return &BFSSolver{} }

// isGoal checks the four corner tiles against the goal colors. The check
// is purely positional: it does not model the interactive corner-lock
// sequence, so a reported solution still leaves the player to press the
// four corners afterwards.
func isGoal(g domain.Grid, goals [4]domain.Color) bool {
	return g.Corners() == goals
}

// Solve returns a minimal-length press sequence from grid to a state whose
// corners match goals, or found=false if no reachable state does. Ties
// between equal-length solutions break deterministically: presses are
// expanded row 0→2, column 0→2, and the first goal state dequeued wins.
func (s *BFSSolver) Solve(ctx context.Context, goals [4]domain.Color, grid domain.Grid) ([]domain.Coord, bool, ports.Stats, error) {
	start := time.Now()

	type entry struct {
		grid domain.Grid
		path []domain.Coord
	}
	queue := []entry{{grid: grid}}
	seen := make(map[domain.Grid]struct{})
	nodes := 0

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		cur := queue[0]
		queue = queue[1:]

		if _, ok := seen[cur.grid]; ok {
			continue
		}
		seen[cur.grid] = struct{}{}
		nodes++

		if isGoal(cur.grid, goals) {
			return cur.path, true, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}

		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				next := cur.grid.Press(row, col)
				path := make([]domain.Coord, len(cur.path)+1)
				copy(path, cur.path)
				path[len(cur.path)] = domain.Coord{Row: row, Col: col}
				queue = append(queue, entry{grid: next, path: path})
			}
		}
	}

	// The state space is finite, so an exhausted frontier proves there is
	// no solution.
	return nil, false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
