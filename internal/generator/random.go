package generator

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"svw.info/morajai/internal/domain"
	"svw.info/morajai/internal/ports"
)

// randomGoal draws a uniform goal color excluding Gray: a Gray goal is
// pre-satisfied by an unlocked corner and degenerates the puzzle.
func randomGoal(rng *rand.Rand) domain.Color {
	return domain.Color(1 + rng.Intn(domain.NumColors-1))
}

// Generate samples goal/grid pairs seeded by seed until the solver finds
// one solvable, and returns it as a fresh puzzle. There is no retry cap:
// solvable draws are common enough that the loop ends quickly in practice,
// and a cancelled context aborts it otherwise.
func (g *RejectionGenerator) Generate(ctx context.Context, seed int64) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	nodes := 0
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Attempts: attempts, Duration: time.Since(start)}, err
		}
		attempts++

		var goals [4]domain.Color
		for i := range goals {
			goals[i] = randomGoal(rng)
		}
		var colors [9]domain.Color
		for i := range colors {
			colors[i] = domain.Color(rng.Intn(domain.NumColors))
		}
		grid := domain.NewGrid(colors)

		_, found, st, err := g.Solver.Solve(ctx, goals, grid)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Attempts: attempts, Duration: time.Since(start)}, err
		}
		if !found {
			continue
		}

		p := domain.NewPuzzle(goals, grid)
		p.ID = strconv.FormatInt(seed, 10)
		p.Seed = seed
		p.CreatedAt = time.Now().UnixNano()
		return p, ports.Stats{Nodes: nodes, Attempts: attempts, Duration: time.Since(start)}, nil
	}
}
