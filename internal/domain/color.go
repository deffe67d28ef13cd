package domain

import (
	"encoding/json"
	"fmt"
)

// Color is one of the tile colors of a Mora Jai box. The declaration order
// is the total order used wherever a deterministic tie-break is needed.
type Color int

const (
	Gray Color = iota
	White
	Black
	Red
	Orange
	Green
	Yellow
	Violet
	Pink
	Blue

	NumColors = 10
)

// Name returns the lowercase human-readable color name.
func (c Color) Name() string {
	switch c {
	case Gray:
		return "gray"
	case White:
		return "white"
	case Black:
		return "black"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Violet:
		return "violet"
	case Pink:
		return "pink"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// Rune returns the single-character encoding of the color used by the
// puzzle line format.
func (c Color) Rune() rune {
	switch c {
	case Gray:
		return '-'
	case White:
		return 'w'
	case Black:
		return 'k'
	case Red:
		return 'r'
	case Orange:
		return 'o'
	case Green:
		return 'g'
	case Yellow:
		return 'y'
	case Violet:
		return 'v'
	case Pink:
		return 'p'
	case Blue:
		return 'b'
	}
	return '?'
}

// ColorFromRune is the inverse of Rune.
func ColorFromRune(r rune) (Color, bool) {
	for c := Gray; c < NumColors; c++ {
		if c.Rune() == r {
			return c, true
		}
	}
	return Gray, false
}

func (c Color) String() string { return c.Name() }

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Name())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for v := Gray; v < NumColors; v++ {
		if v.Name() == s {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("unknown color %q", s)
}
