package fen

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Options carries the five metadata fields that follow the piece placement.
// They are echoed verbatim; nothing here is checked for chess legality.
type Options struct {
	ActiveColor    string // "w" or "b"
	CastlingRights string // subset of "KQkq", or "-"
	EnPassant      string // target square such as "e3", or "-"
	HalfmoveClock  int
	FullmoveNumber int
}

// DefaultOptions returns the metadata of a fresh game: "w KQkq - 0 1".
func DefaultOptions() Options {
	return Options{
		ActiveColor:    "w",
		CastlingRights: "KQkq",
		EnPassant:      "-",
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
}

// Encode produces the FEN string for a placement and its metadata.
// An out-of-range square fails with ErrOutOfRange and no output.
func Encode(p Placement, opts Options) (string, error) {
	g, err := NewGrid(p)
	if err != nil {
		return "", err
	}
	return g.FEN(opts), nil
}

// Generate encodes p with DefaultOptions.
func Generate(p Placement) (string, error) {
	return Encode(p, DefaultOptions())
}

// MustEncode is Encode that panics on invalid input. Intended for fixtures.
func MustEncode(p Placement, opts Options) string {
	s, err := Encode(p, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// FEN renders the grid followed by the metadata fields.
func (g *Grid) FEN(opts Options) string {
	var sb strings.Builder
	g.writePlacement(&sb)
	sb.WriteByte(' ')
	sb.WriteString(opts.ActiveColor)
	sb.WriteByte(' ')
	sb.WriteString(opts.CastlingRights)
	sb.WriteByte(' ')
	sb.WriteString(opts.EnPassant)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(opts.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(opts.FullmoveNumber))
	return sb.String()
}

// PlacementField returns the eight ranks joined by '/', rank 8 first.
func (g *Grid) PlacementField() string {
	var sb strings.Builder
	g.writePlacement(&sb)
	return sb.String()
}

// Rank returns the run-length encoded string for one input row (0 = rank 8).
func (g *Grid) Rank(row int) string {
	var sb strings.Builder
	g.writeRank(&sb, Ranks-1-row)
	return sb.String()
}

func (g *Grid) writePlacement(sb *strings.Builder) {
	for rank := Ranks - 1; rank >= 0; rank-- {
		g.writeRank(sb, rank)
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

func (g *Grid) writeRank(sb *strings.Builder, rank int) {
	emptyCount := 0
	for file := 0; file < Files; file++ {
		sym := g.cells[rank*Files+file]
		if sym == NoSymbol {
			emptyCount++
			continue
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
			emptyCount = 0
		}
		sb.WriteRune(rune(sym))
	}
	if emptyCount > 0 {
		sb.WriteByte('0' + byte(emptyCount))
	}
}

// firstInvalid returns the smallest off-board key in (row, col) order.
func firstInvalid(p Placement) (Square, bool) {
	var bad []Square
	for _, sq := range maps.Keys(p) {
		if !sq.Valid() {
			bad = append(bad, sq)
		}
	}
	if len(bad) == 0 {
		return Square{}, false
	}
	sort.Slice(bad, func(i, j int) bool {
		if bad[i].Row != bad[j].Row {
			return bad[i].Row < bad[j].Row
		}
		return bad[i].Col < bad[j].Col
	})
	return bad[0], true
}
