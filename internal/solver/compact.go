package solver

import (
	"context"
	"time"

	"svw.info/morajai/internal/domain"
	"svw.info/morajai/internal/ports"
)

// CompactSolver is a memory-lean variant of BFSSolver. Instead of carrying
// a path copy per frontier entry it records, for each state, the press and
// predecessor that first discovered it, and reconstructs the path
// backwards from the goal. Expansion order is identical to BFSSolver, so
// both return the same sequence for every input.
type CompactSolver struct{}

func NewCompactSolver() *CompactSolver { return &CompactSolver{} }

type parent struct {
	prev  domain.Grid
	press domain.Coord
}

func (s *CompactSolver) Solve(ctx context.Context, goals [4]domain.Color, grid domain.Grid) ([]domain.Coord, bool, ports.Stats, error) {
	start := time.Now()

	queue := []domain.Grid{grid}
	// parents doubles as the seen-set; the start state maps to itself.
	parents := map[domain.Grid]parent{grid: {prev: grid}}
	nodes := 0

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		cur := queue[0]
		queue = queue[1:]
		nodes++

		if isGoal(cur, goals) {
			return reconstruct(parents, grid, cur), true, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}

		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				next := cur.Press(row, col)
				if _, ok := parents[next]; ok {
					continue
				}
				parents[next] = parent{prev: cur, press: domain.Coord{Row: row, Col: col}}
				queue = append(queue, next)
			}
		}
	}

	return nil, false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func reconstruct(parents map[domain.Grid]parent, start, goal domain.Grid) []domain.Coord {
	var rev []domain.Coord
	for cur := goal; cur != start; {
		p := parents[cur]
		rev = append(rev, p.press)
		cur = p.prev
	}
	path := make([]domain.Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
