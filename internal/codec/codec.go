// Package codec implements the compact one-character-per-tile puzzle line
// format: 4 goal characters (NW, NE, SW, SE) followed by the 9 grid
// characters read left to right, top row first — 13 characters total.
// Characters: '-' gray, 'w' white, 'k' black, 'r' red, 'o' orange,
// 'g' green, 'y' yellow, 'v' violet, 'p' pink, 'b' blue.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"svw.info/morajai/internal/domain"
)

const lineLen = 13

var (
	ErrBadLength = errors.New("puzzle line must be 13 characters")
	ErrBadColor  = errors.New("unknown color character")
)

// Decode parses a puzzle line into per-corner goals and a grid. A
// malformed line is reported to the caller; batch processing treats that
// as a per-line failure, not a fatal one.
func Decode(line string) ([4]domain.Color, domain.Grid, error) {
	var goals [4]domain.Color
	var grid domain.Grid

	runes := []rune(strings.TrimSpace(line))
	if len(runes) != lineLen {
		return goals, grid, fmt.Errorf("%w: got %d", ErrBadLength, len(runes))
	}

	colors := make([]domain.Color, lineLen)
	for i, r := range runes {
		c, ok := domain.ColorFromRune(r)
		if !ok {
			return goals, grid, fmt.Errorf("%w: %q at position %d", ErrBadColor, r, i)
		}
		colors[i] = c
	}

	copy(goals[:], colors[:4])
	var rows [3][3]domain.Color
	for i, c := range colors[4:] {
		rows[i/3][i%3] = c
	}
	return goals, domain.GridFromRows(rows[0], rows[1], rows[2]), nil
}

// Encode is the inverse of Decode.
func Encode(goals [4]domain.Color, grid domain.Grid) string {
	var b strings.Builder
	for _, c := range goals {
		b.WriteRune(c.Rune())
	}
	b.WriteString(grid.String())
	return b.String()
}
