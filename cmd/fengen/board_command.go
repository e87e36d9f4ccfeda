package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"chess-fen/fen"
)

func newBoardCommand(ctx *commandContext) *cobra.Command {
	var pf positionFlags

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Render a piece placement as a board diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			pos, err := pf.resolve(cmd, cfg)
			if err != nil {
				return err
			}
			g, err := fen.NewGrid(pos.Pieces)
			if err != nil {
				return fmt.Errorf("board: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderBoard(g, shouldColorize(out)))
			return nil
		},
	}
	pf.registerPieces(cmd)
	return cmd
}

// renderBoard draws rank 8 at the top and file a on the left.
func renderBoard(g *fen.Grid, colorize bool) string {
	tw := table.NewWriter()
	if colorize {
		tw.SetStyle(table.StyleColoredDark)
	} else {
		tw.SetStyle(table.StyleRounded)
	}
	// file letters stay lowercase
	tw.Style().Format.Header = text.FormatDefault

	header := table.Row{""}
	for col := 0; col < fen.Files; col++ {
		header = append(header, string(rune('a'+col)))
	}
	tw.AppendHeader(header)

	for row := 0; row < fen.Ranks; row++ {
		r := table.Row{fmt.Sprint(fen.Ranks - row)}
		for col := 0; col < fen.Files; col++ {
			sym := g.At(fen.Square{Row: row, Col: col})
			if sym == fen.NoSymbol {
				r = append(r, ".")
			} else {
				r = append(r, string(rune(sym)))
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, fen.Files+1)
	for i := 1; i <= fen.Files+1; i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignCenter, AlignHeader: text.AlignCenter})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
