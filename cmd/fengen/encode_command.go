package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chess-fen/fen"
	"chess-fen/internal/verify"
)

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var pf positionFlags
	var verifyFlag bool
	var boardFlag bool

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the FEN string for a piece placement",
		Example: `  fengen encode -p e8=k -p e1=K -p e7=p -p d2=P
  fengen encode -f position.toml --color b --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.loggerFor(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			pos, err := pf.resolve(cmd, cfg)
			if err != nil {
				return err
			}

			g, err := fen.NewGrid(pos.Pieces)
			if err != nil {
				logger.Error("encode failed", "error", err)
				return fmt.Errorf("encode: %w", err)
			}
			s := g.FEN(pos.Options)
			logger.Debug("encoded position", "pieces", len(pos.Pieces), "fen", s)

			if verifyFlag {
				if err := verify.Check(s); err != nil {
					logger.Warn("consumer check failed", "fen", s, "error", err)
					return err
				}
				logger.Info("consumer check passed", "fen", s)
			}

			out := cmd.OutOrStdout()
			if boardFlag {
				fmt.Fprintln(out, renderBoard(g, shouldColorize(out)))
			}
			fmt.Fprintln(out, s)
			return nil
		},
	}

	pf.registerPieces(cmd)
	pf.registerMetadata(cmd)
	cmd.Flags().BoolVar(&verifyFlag, "verify", false, "Load the result with a move generator and fail if it is rejected")
	cmd.Flags().BoolVar(&boardFlag, "board", false, "Render the board above the FEN string")
	return cmd
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "demo",
		Short:       "Print the FEN for a sample kings-and-pawns position",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := fen.Generate(demoPlacement())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func demoPlacement() fen.Placement {
	return fen.Placement{
		{Row: 0, Col: 4}: 'k', // e8
		{Row: 7, Col: 4}: 'K', // e1
		{Row: 1, Col: 4}: 'p', // e7
		{Row: 6, Col: 3}: 'P', // d2
	}
}
