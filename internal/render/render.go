// Package render draws a puzzle for an ANSI terminal. Tiles are shown as
// their press keys 1-9 and corner slots as q/w/a/s, each in the color of
// the tile or lock it stands for.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"svw.info/morajai/internal/domain"
)

var swatches = map[domain.Color]*color.Color{
	domain.Gray:   color.RGB(128, 128, 128),
	domain.White:  color.New(color.FgWhite),
	domain.Black:  color.RGB(0, 0, 0).AddBgRGB(64, 64, 64),
	domain.Red:    color.RGB(255, 0, 0),
	domain.Orange: color.RGB(255, 165, 0),
	domain.Green:  color.RGB(0, 255, 0),
	domain.Yellow: color.RGB(255, 255, 0),
	domain.Violet: color.RGB(127, 0, 255),
	domain.Pink:   color.RGB(255, 192, 203),
	domain.Blue:   color.RGB(0, 128, 255),
}

// Colorize renders s in the terminal color for c.
func Colorize(s string, c domain.Color) string {
	sw, ok := swatches[c]
	if !ok {
		return s
	}
	return sw.Sprint(s)
}

// Board renders the goal line and the 3×3 key layout with corner slots:
//
//	Goals: red green red blue
//	q|789|w
//	 |456|
//	a|123|s
func Board(p *domain.Puzzle) string {
	var b strings.Builder

	b.WriteString("Goals:")
	for c := domain.NW; c <= domain.SE; c++ {
		b.WriteByte(' ')
		b.WriteString(Colorize(p.Goal(c).Name(), p.Goal(c)))
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "%s|%s%s%s|%s\n",
		Colorize("q", p.GetCorner(domain.NW)),
		Colorize("7", p.GetTile(2, 0)),
		Colorize("8", p.GetTile(2, 1)),
		Colorize("9", p.GetTile(2, 2)),
		Colorize("w", p.GetCorner(domain.NE)),
	)
	fmt.Fprintf(&b, " |%s%s%s|\n",
		Colorize("4", p.GetTile(1, 0)),
		Colorize("5", p.GetTile(1, 1)),
		Colorize("6", p.GetTile(1, 2)),
	)
	fmt.Fprintf(&b, "%s|%s%s%s|%s\n",
		Colorize("a", p.GetCorner(domain.SW)),
		Colorize("1", p.GetTile(0, 0)),
		Colorize("2", p.GetTile(0, 1)),
		Colorize("3", p.GetTile(0, 2)),
		Colorize("s", p.GetCorner(domain.SE)),
	)

	return b.String()
}

// Solution formats a press path as the tile key sequence a player types.
func Solution(path []domain.Coord) string {
	if len(path) == 0 {
		return "(already at goal)"
	}
	keys := make([]string, len(path))
	for i, c := range path {
		keys[i] = fmt.Sprintf("%d", 1+3*c.Row+c.Col)
	}
	return strings.Join(keys, " ")
}
