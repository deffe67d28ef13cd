package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Grid is a 3×3 board of tile colors. Row 2 is the top row and row 0 the
// bottom, matching the physical box:
//
//	-------------------
//	| 2,0 | 2,1 | 2,2 |
//	| 1,0 | 1,1 | 1,2 |
//	| 0,0 | 0,1 | 0,2 |
//	-------------------
//
// Grid is a comparable value type: Press returns a new Grid and never
// mutates the receiver, so Grids can be used directly as map keys (the
// solver's seen-set and the puzzle's reset snapshot rely on this).
type Grid struct {
	tiles [9]Color
}

// NewGrid builds a grid from 9 colors in row-major order starting at the
// bottom row (index 0 = tile 0,0; index 8 = tile 2,2).
func NewGrid(colors [9]Color) Grid {
	return Grid{tiles: colors}
}

// GridFromRows builds a grid from three rows given top to bottom, the order
// a puzzle is read off the box.
func GridFromRows(r2, r1, r0 [3]Color) Grid {
	return Grid{tiles: [9]Color{
		r0[0], r0[1], r0[2],
		r1[0], r1[1], r1[2],
		r2[0], r2[1], r2[2],
	}}
}

func validCoord(row, col int) bool {
	return row >= 0 && row < 3 && col >= 0 && col < 3
}

// Get returns the color at (row, col). Coordinates outside 0..2 are a
// caller bug and panic.
func (g Grid) Get(row, col int) Color {
	if !validCoord(row, col) {
		panic(fmt.Sprintf("domain: invalid grid coordinate (%d,%d)", row, col))
	}
	return g.tiles[row*3+col]
}

func (g *Grid) set(row, col int, c Color) {
	g.tiles[row*3+col] = c
}

// orthogonal returns the in-bounds orthogonal neighbors of (row, col).
func orthogonal(row, col int) [][2]int {
	out := make([][2]int, 0, 4)
	if row > 0 {
		out = append(out, [2]int{row - 1, col})
	}
	if row < 2 {
		out = append(out, [2]int{row + 1, col})
	}
	if col > 0 {
		out = append(out, [2]int{row, col - 1})
	}
	if col < 2 {
		out = append(out, [2]int{row, col + 1})
	}
	return out
}

// ringOffsets enumerates the 8 surrounding offsets in the fixed clockwise
// order the pink rule rotates through.
var ringOffsets = [8][2]int{
	{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// ring returns the existing neighbors of (row, col), orthogonal and
// diagonal, in clockwise order. Edge and corner tiles get a shorter ring.
func ring(row, col int) [][2]int {
	out := make([][2]int, 0, 8)
	for _, off := range ringOffsets {
		r, c := row+off[0], col+off[1]
		if validCoord(r, c) {
			out = append(out, [2]int{r, c})
		}
	}
	return out
}

// Press activates the tile at (row, col) and returns the resulting grid.
// The rule applied is the one bound to the color currently at that
// position; every rule reads the pre-press grid, so no rule ever observes
// its own partial effect. Coordinates outside 0..2 panic.
func (g Grid) Press(row, col int) Grid {
	return g.apply(g.Get(row, col), row, col)
}

// apply runs the rule for color rule as if the tile at (row, col) were
// that color. Blue resolves through here with the center tile's color, at
// most one level deep.
func (g Grid) apply(rule Color, row, col int) Grid {
	next := g
	switch rule {
	case Gray:
		// Gray tiles do nothing.

	case White:
		// Toggle the pressed tile and its orthogonal neighbors between
		// white and gray; other colors in the toggle set are untouched.
		affected := append([][2]int{{row, col}}, orthogonal(row, col)...)
		for _, rc := range affected {
			switch g.Get(rc[0], rc[1]) {
			case White:
				next.set(rc[0], rc[1], Gray)
			case Gray:
				next.set(rc[0], rc[1], White)
			}
		}

	case Black:
		// Rotate the pressed tile's row one step to the right, wrapping.
		for c := 0; c < 3; c++ {
			next.set(row, (c+1)%3, g.Get(row, c))
		}

	case Red:
		// Board-wide: black becomes red, white becomes black.
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				switch g.Get(r, c) {
				case Black:
					next.set(r, c, Red)
				case White:
					next.set(r, c, Black)
				}
			}
		}

	case Orange:
		// Adopt the plurality color of the orthogonal neighbors; on a tie
		// for the maximum the tile is unchanged.
		var counts [NumColors]int
		for _, rc := range orthogonal(row, col) {
			counts[g.Get(rc[0], rc[1])]++
		}
		max, ties, winner := 0, 0, Gray
		for c := Gray; c < NumColors; c++ {
			switch {
			case counts[c] > max:
				max, ties, winner = counts[c], 1, c
			case counts[c] == max && counts[c] > 0:
				ties++
			}
		}
		if ties == 1 {
			next.set(row, col, winner)
		}

	case Green:
		// Swap with the point-symmetric opposite tile.
		or, oc := 2-row, 2-col
		next.set(or, oc, g.Get(row, col))
		next.set(row, col, g.Get(or, oc))

	case Yellow:
		// Swap with the tile directly above; no-op in the top row.
		if row < 2 {
			next.set(row+1, col, g.Get(row, col))
			next.set(row, col, g.Get(row+1, col))
		}

	case Violet:
		// Swap with the tile directly below; no-op in the bottom row.
		if row > 0 {
			next.set(row-1, col, g.Get(row, col))
			next.set(row, col, g.Get(row-1, col))
		}

	case Pink:
		// Rotate the surrounding ring clockwise by one position, last
		// wrapping around to first.
		nb := ring(row, col)
		for i, rc := range nb {
			dst := nb[(i+1)%len(nb)]
			next.set(dst[0], dst[1], g.Get(rc[0], rc[1]))
		}

	case Blue:
		// Behave like the color at the center tile. A blue center would
		// chain forever, so it is a structural no-op instead.
		center := g.Get(1, 1)
		if center == Blue {
			return g
		}
		return g.apply(center, row, col)
	}
	return next
}

// Corners returns the colors of the four corner tiles in NW, NE, SW, SE
// order.
func (g Grid) Corners() [4]Color {
	var out [4]Color
	for c := NW; c <= SE; c++ {
		rc := c.Coord()
		out[c] = g.Get(rc.Row, rc.Col)
	}
	return out
}

// String renders the grid as its 9-character line encoding, top row first.
func (g Grid) String() string {
	var b strings.Builder
	for row := 2; row >= 0; row-- {
		for col := 0; col < 3; col++ {
			b.WriteRune(g.Get(row, col).Rune())
		}
	}
	return b.String()
}

func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (g *Grid) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	runes := []rune(s)
	if len(runes) != 9 {
		return fmt.Errorf("grid encoding must be 9 characters, got %d", len(runes))
	}
	var out Grid
	for i, r := range runes {
		c, ok := ColorFromRune(r)
		if !ok {
			return fmt.Errorf("unknown color character %q", r)
		}
		row, col := 2-i/3, i%3
		out.set(row, col, c)
	}
	*g = out
	return nil
}
