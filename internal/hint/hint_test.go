package hint

import (
	"context"
	"testing"

	"svw.info/morajai/internal/domain"
	"svw.info/morajai/internal/solver"
)

func TestHintSuggestsFirstPressOfShortestSolution(t *testing.T) {
	grid := domain.GridFromRows(
		[3]domain.Color{domain.White, domain.White, domain.White},
		[3]domain.Color{domain.White, domain.Gray, domain.White},
		[3]domain.Color{domain.Gray, domain.Gray, domain.White},
	)
	p := domain.NewPuzzle([4]domain.Color{domain.White, domain.White, domain.White, domain.White}, grid)

	h := NewNextPress(solver.NewCompactSolver())
	hh, ok, err := h.Hint(context.Background(), p)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a hint")
	}
	want := domain.Coord{Row: 0, Col: 2}
	if len(hh.Cells) != 1 || hh.Cells[0] != want {
		t.Fatalf("hint cells: got %v, want [%v]", hh.Cells, want)
	}
}

func TestHintWhenCornersAlreadyMatch(t *testing.T) {
	grid := domain.GridFromRows(
		[3]domain.Color{domain.Red, domain.Gray, domain.Red},
		[3]domain.Color{domain.Gray, domain.Gray, domain.Gray},
		[3]domain.Color{domain.Red, domain.Gray, domain.Red},
	)
	p := domain.NewPuzzle([4]domain.Color{domain.Red, domain.Red, domain.Red, domain.Red}, grid)

	h := NewNextPress(solver.NewCompactSolver())
	hh, ok, err := h.Hint(context.Background(), p)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok || len(hh.Cells) != 0 {
		t.Fatalf("expected a press-the-corners hint with no cells, got ok=%v %+v", ok, hh)
	}
}

func TestHintNotFoundOnDeadState(t *testing.T) {
	grid := domain.GridFromRows(
		[3]domain.Color{domain.Gray, domain.Gray, domain.Gray},
		[3]domain.Color{domain.Gray, domain.Gray, domain.Gray},
		[3]domain.Color{domain.Gray, domain.Gray, domain.Gray},
	)
	p := domain.NewPuzzle([4]domain.Color{domain.Red, domain.Red, domain.Red, domain.Red}, grid)

	h := NewNextPress(solver.NewCompactSolver())
	_, ok, err := h.Hint(context.Background(), p)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if ok {
		t.Fatal("inert grid cannot have a hint")
	}
}
