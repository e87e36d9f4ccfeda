// Package setup reads piece placements and metadata for the CLI, either
// from "square=symbol" specs or from TOML position files.
package setup

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"chess-fen/fen"
)

// ErrBadPiece reports a piece spec that cannot be understood.
var ErrBadPiece = errors.New("invalid piece spec")

// Position is a placement together with its metadata.
type Position struct {
	Pieces  fen.Placement
	Options fen.Options
}

// file mirrors the TOML layout. Pointer fields distinguish "absent" from zero.
type file struct {
	ActiveColor    *string  `toml:"active_color"`
	CastlingRights *string  `toml:"castling_rights"`
	EnPassant      *string  `toml:"en_passant"`
	HalfmoveClock  *int     `toml:"halfmove_clock"`
	FullmoveNumber *int     `toml:"fullmove_number"`
	Pieces         []string `toml:"pieces"`
}

// ParsePiece parses "e8=k" (algebraic) or "0,4=k" (row,col). The numeric
// form is not range-checked; the encoder reports off-board squares.
func ParsePiece(spec string) (fen.Square, fen.Symbol, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(spec), "=")
	if !ok {
		return fen.Square{}, 0, fmt.Errorf("%w %q: expected square=symbol", ErrBadPiece, spec)
	}
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if utf8.RuneCountInString(right) != 1 {
		return fen.Square{}, 0, fmt.Errorf("%w %q: symbol must be one character", ErrBadPiece, spec)
	}
	sym, _ := utf8.DecodeRuneInString(right)

	if rowStr, colStr, numeric := strings.Cut(left, ","); numeric {
		row, err := strconv.Atoi(strings.TrimSpace(rowStr))
		if err != nil {
			return fen.Square{}, 0, fmt.Errorf("%w %q: row: %v", ErrBadPiece, spec, err)
		}
		col, err := strconv.Atoi(strings.TrimSpace(colStr))
		if err != nil {
			return fen.Square{}, 0, fmt.Errorf("%w %q: col: %v", ErrBadPiece, spec, err)
		}
		return fen.Square{Row: row, Col: col}, fen.Symbol(sym), nil
	}

	sq, err := fen.ParseSquare(left)
	if err != nil {
		return fen.Square{}, 0, fmt.Errorf("%w %q: %v", ErrBadPiece, spec, err)
	}
	return sq, fen.Symbol(sym), nil
}

// ParsePieces adds every spec to p. A square named twice is an error.
func ParsePieces(p fen.Placement, specs []string) error {
	for _, spec := range specs {
		sq, sym, err := ParsePiece(spec)
		if err != nil {
			return err
		}
		if prev, dup := p[sq]; dup {
			return fmt.Errorf("%w %q: %s already holds %q", ErrBadPiece, spec, sq, rune(prev))
		}
		p[sq] = sym
	}
	return nil
}

// Load reads a TOML position file. Metadata keys missing from the file
// keep the values in defaults.
func Load(path string, defaults fen.Options) (Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Position{}, fmt.Errorf("read position file: %w", err)
	}
	return Decode(data, defaults)
}

// Decode is Load for in-memory TOML.
func Decode(data []byte, defaults fen.Options) (Position, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return Position{}, fmt.Errorf("parse position file: %w", err)
	}

	pos := Position{Pieces: fen.Placement{}, Options: defaults}
	if f.ActiveColor != nil {
		pos.Options.ActiveColor = *f.ActiveColor
	}
	if f.CastlingRights != nil {
		pos.Options.CastlingRights = *f.CastlingRights
	}
	if f.EnPassant != nil {
		pos.Options.EnPassant = *f.EnPassant
	}
	if f.HalfmoveClock != nil {
		pos.Options.HalfmoveClock = *f.HalfmoveClock
	}
	if f.FullmoveNumber != nil {
		pos.Options.FullmoveNumber = *f.FullmoveNumber
	}
	if err := ParsePieces(pos.Pieces, f.Pieces); err != nil {
		return Position{}, err
	}
	return pos, nil
}
