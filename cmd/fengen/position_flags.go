package main

import (
	"strings"

	"github.com/spf13/cobra"

	"chess-fen/fen"
	"chess-fen/internal/config"
	"chess-fen/internal/setup"
)

// positionFlags collects the placement and metadata inputs shared by encode and board.
type positionFlags struct {
	pieces    []string
	file      string
	color     string
	castling  string
	enPassant string
	halfmove  int
	fullmove  int
}

// registerPieces adds the placement inputs.
func (f *positionFlags) registerPieces(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayVarP(&f.pieces, "piece", "p", nil, "Piece as square=symbol (e8=k) or row,col=symbol (0,4=k); repeatable")
	flags.StringVarP(&f.file, "file", "f", "", "TOML position file")
}

// registerMetadata adds the flags for the five fields after the placement.
func (f *positionFlags) registerMetadata(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.color, "color", "", "Active color")
	flags.StringVar(&f.castling, "castling", "", "Castling rights")
	flags.StringVar(&f.enPassant, "en-passant", "", "En passant target square")
	flags.IntVar(&f.halfmove, "halfmove", 0, "Halfmove clock")
	flags.IntVar(&f.fullmove, "fullmove", 1, "Fullmove number")
}

// resolve merges config defaults, the position file, piece flags and
// metadata flags, in that order of increasing precedence. Metadata flags
// that were never registered count as unset.
func (f *positionFlags) resolve(cmd *cobra.Command, cfg *config.Config) (setup.Position, error) {
	pos := setup.Position{Pieces: fen.Placement{}, Options: cfg.Options()}
	if path := strings.TrimSpace(f.file); path != "" {
		loaded, err := setup.Load(path, pos.Options)
		if err != nil {
			return setup.Position{}, err
		}
		pos = loaded
	}
	if err := setup.ParsePieces(pos.Pieces, f.pieces); err != nil {
		return setup.Position{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		pos.Options.ActiveColor = f.color
	}
	if flags.Changed("castling") {
		pos.Options.CastlingRights = f.castling
	}
	if flags.Changed("en-passant") {
		pos.Options.EnPassant = f.enPassant
	}
	if flags.Changed("halfmove") {
		pos.Options.HalfmoveClock = f.halfmove
	}
	if flags.Changed("fullmove") {
		pos.Options.FullmoveNumber = f.fullmove
	}
	return pos, nil
}
