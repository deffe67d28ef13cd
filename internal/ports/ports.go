package ports

import (
	"context"
	"time"

	"svw.info/morajai/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	// Nodes is the number of grid states dequeued by a solver, summed over
	// all attempts for the generator.
	Nodes int
	// Attempts is the number of candidate puzzles a generator sampled;
	// zero for other operations.
	Attempts int
	Duration time.Duration
}

// Solver searches for a shortest press sequence bringing the four corner
// tiles of grid to the goal colors (NW, NE, SW, SE order). found is false
// when no reachable state matches; that is a normal outcome, not an error.
type Solver interface {
	Solve(ctx context.Context, goals [4]domain.Color, grid domain.Grid) (path []domain.Coord, found bool, stats Stats, err error)
}

// Generator creates new puzzles that are guaranteed solvable.
type Generator interface {
	Generate(ctx context.Context, seed int64) (*domain.Puzzle, Stats, error)
}

// Hinter suggests the next press for a puzzle's live state.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Puzzle) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
