package fen

import (
	"errors"
	"fmt"
)

// Board dimensions.
const (
	Files      = 8
	Ranks      = 8
	NumSquares = Files * Ranks
)

// ErrOutOfRange is returned when a placement key lies outside the 8x8 board.
var ErrOutOfRange = errors.New("square out of range")

// Symbol is a single piece character. Uppercase conventionally denotes White,
// lowercase Black, but the encoder treats it as opaque.
// The zero Symbol and the space both mark an empty square and are never written.
type Symbol rune

// NoSymbol marks an empty cell.
const NoSymbol Symbol = 0

// blank is the conventional empty-square marker; a space in the placement
// field would split the FEN record.
const blank Symbol = ' '

// Square addresses a cell in input coordinates. Row 0 is FEN rank 8 and
// row 7 is rank 1; Col 0..7 is file a..h.
type Square struct {
	Row int
	Col int
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < Ranks && s.Col >= 0 && s.Col < Files
}

// String returns the algebraic name, e.g. (0,4) -> "e8".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{'a' + byte(s.Col), '8' - byte(s.Row)})
}

// ParseSquare converts an algebraic square name ("e8") into input coordinates.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, errors.New("invalid algebraic square length")
	}
	file := name[0]
	rank := name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("invalid algebraic square %q", name)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// Placement maps squares to the pieces standing on them. Absent keys are empty.
type Placement map[Square]Symbol

// Grid is the transient 8x8 board built for a single encode.
// Cells are indexed rank*8+file with rank 0 being FEN rank 1.
type Grid struct {
	cells [NumSquares]Symbol
}

// NewGrid lays a placement out on a fresh grid. Every key is bounds-checked
// before anything is written; the first offending square in (row, col) order
// is reported wrapped in ErrOutOfRange.
func NewGrid(p Placement) (*Grid, error) {
	if sq, ok := firstInvalid(p); ok {
		return nil, fmt.Errorf("%w: row %d col %d", ErrOutOfRange, sq.Row, sq.Col)
	}
	g := &Grid{}
	for sq, sym := range p {
		if sym == blank {
			sym = NoSymbol
		}
		g.cells[index(sq)] = sym
	}
	return g, nil
}

// At returns the symbol on sq, or NoSymbol when the square is empty or off the board.
func (g *Grid) At(sq Square) Symbol {
	if !sq.Valid() {
		return NoSymbol
	}
	return g.cells[index(sq)]
}

// index flips the input row so row 0 lands on rank 8.
func index(sq Square) int {
	rank := Ranks - 1 - sq.Row
	return rank*Files + sq.Col
}
