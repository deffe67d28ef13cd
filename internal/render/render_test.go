package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"svw.info/morajai/internal/domain"
)

func TestBoardLayout(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	grid := domain.GridFromRows(
		[3]domain.Color{domain.Red, domain.Gray, domain.Green},
		[3]domain.Color{domain.Gray, domain.Black, domain.Gray},
		[3]domain.Color{domain.White, domain.Gray, domain.Pink},
	)
	p := domain.NewPuzzle([4]domain.Color{domain.Red, domain.Green, domain.White, domain.Pink}, grid)

	out := Board(p)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{
		"Goals: red green white pink",
		"q|789|w",
		" |456|",
		"a|123|s",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSolutionFormatsPressKeys(t *testing.T) {
	path := []domain.Coord{{Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 2, Col: 0}}
	if got := Solution(path); got != "3 2 7" {
		t.Fatalf("got %q", got)
	}
	if got := Solution(nil); got != "(already at goal)" {
		t.Fatalf("empty path: got %q", got)
	}
}
