package domain

import "fmt"

// Coord identifies a tile on the grid.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Corner labels the four lockable corner slots. The constants double as
// indices into a puzzle's Goals and Corners arrays.
type Corner int

const (
	NW Corner = iota
	NE
	SW
	SE
)

// cornerCoords binds each corner to its fixed tile. This mapping is a
// static invariant of the box, never configurable.
var cornerCoords = [4]Coord{
	NW: {Row: 2, Col: 0},
	NE: {Row: 2, Col: 2},
	SW: {Row: 0, Col: 0},
	SE: {Row: 0, Col: 2},
}

// Coord returns the fixed grid coordinate of the corner's tile.
func (c Corner) Coord() Coord {
	if c < NW || c > SE {
		panic(fmt.Sprintf("domain: invalid corner %d", int(c)))
	}
	return cornerCoords[c]
}

func (c Corner) String() string {
	switch c {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return fmt.Sprintf("corner(%d)", int(c))
}

// Hint describes a suggested next press for the UI.
type Hint struct {
	Message string  `json:"message,omitempty"`
	Cells   []Coord `json:"cells,omitempty"`
}

// Puzzle is a Mora Jai box: a live grid, four per-corner goal colors, and
// four corner locks. A corner lock is Gray while unlocked and holds the
// goal color once achieved; it is never any other color.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`

	Goals   [4]Color `json:"goals"`
	Corners [4]Color `json:"corners"`
	// Original is the grid as constructed; a failed corner press resets
	// State back to it. Never modified after construction.
	Original Grid `json:"original"`
	State    Grid `json:"state"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// NewPuzzle builds a puzzle from per-corner goals (NW, NE, SW, SE) and a
// starting grid, with all corners unlocked.
func NewPuzzle(goals [4]Color, grid Grid) *Puzzle {
	return &Puzzle{
		Goals:    goals,
		Corners:  [4]Color{Gray, Gray, Gray, Gray},
		Original: grid,
		State:    grid,
	}
}

// Goal returns the target color for the given corner.
func (p *Puzzle) Goal(c Corner) Color { return p.Goals[c.mustIndex()] }

// GetCorner returns the corner's current lock color; Gray means unlocked.
func (p *Puzzle) GetCorner(c Corner) Color { return p.Corners[c.mustIndex()] }

// GetTile returns the live color at (row, col).
func (p *Puzzle) GetTile(row, col int) Color { return p.State.Get(row, col) }

// PressTile applies one rule step to the live grid. Any locked corner whose
// tile no longer shows the locked color is revoked back to Gray: a lock
// holds only while its tile visibly keeps the goal color.
func (p *Puzzle) PressTile(row, col int) {
	p.State = p.State.Press(row, col)
	for c := NW; c <= SE; c++ {
		rc := c.Coord()
		if p.State.Get(rc.Row, rc.Col) != p.Corners[c] {
			p.Corners[c] = Gray
		}
	}
}

// PressCorner attempts to lock a corner. If the corner's tile currently
// shows its goal color the lock engages; otherwise the whole box resets,
// reverting the grid to Original and all locks to Gray.
func (p *Puzzle) PressCorner(c Corner) {
	rc := c.Coord()
	if p.State.Get(rc.Row, rc.Col) == p.Goals[c] {
		p.Corners[c] = p.Goals[c]
		return
	}
	p.Reset()
}

// Reset reverts the live grid to the original snapshot and unlocks all
// corners.
func (p *Puzzle) Reset() {
	p.State = p.Original
	p.Corners = [4]Color{Gray, Gray, Gray, Gray}
}

// IsSolved reports whether every corner lock holds its goal color.
func (p *Puzzle) IsSolved() bool { return p.Corners == p.Goals }

func (c Corner) mustIndex() Corner {
	if c < NW || c > SE {
		panic(fmt.Sprintf("domain: invalid corner %d", int(c)))
	}
	return c
}
