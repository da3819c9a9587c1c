// Command chessuci is a UCI-speaking chess engine front end over the core
// position library: move generation, negamax search, and perft, wired
// together with configuration, logging, and session storage.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rookmate/chesscore"
	"github.com/rookmate/chesscore/internal/config"
	"github.com/rookmate/chesscore/internal/render"
	"github.com/rookmate/chesscore/internal/store"
	"github.com/rookmate/chesscore/internal/uci"
)

var configPath string

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	return cfg.Build()
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chessuci",
		Short: "A UCI chess engine built on the chesscore position library",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.AddCommand(newUCICmd(), newPerftCmd(), newRenderCmd())
	return root
}

func newUCICmd() *cobra.Command {
	var sessionID string
	cmd := &cobra.Command{
		Use:   "uci",
		Short: "Run the UCI protocol loop on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Log.Level)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := store.Open(cfg.Store.Path)
			if err != nil {
				log.Warn("session storage unavailable, continuing without it", zap.Error(err))
				db = nil
			} else {
				defer db.Close()
			}

			engine := uci.New(cfg.Search.DefaultDepth, log)
			if db != nil && sessionID != "" {
				log.Info("recording session", zap.String("session", sessionID))
				engine = engine.WithSession(db, sessionID)
			}
			engine.Run(os.Stdin, os.Stdout)
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "session ID to log positions under")
	return cmd
}

func newPerftCmd() *cobra.Command {
	var depth int
	var fen string
	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Run divide-perft from a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			var p *chess.Position
			var err error
			if fen == "" {
				p = chess.StartingPosition()
			} else {
				p, err = chess.NewFromFEN(fen)
				if err != nil {
					return err
				}
			}
			var total uint64
			for _, r := range chess.PerftDivide(p, depth) {
				fmt.Printf("%s: %d\n", r.Move.UCI(), r.Nodes)
				total += r.Nodes
			}
			fmt.Printf("\nNodes searched: %d\n", total)
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 4, "perft depth")
	cmd.Flags().StringVar(&fen, "fen", "", "FEN to start from (defaults to the standard opening)")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var fen string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write an SVG board diagram for a position to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			var p *chess.Position
			if fen == "" {
				p = chess.StartingPosition()
			} else {
				p, err = chess.NewFromFEN(fen)
				if err != nil {
					return err
				}
			}
			render.Board(os.Stdout, p, cfg.Render.SquareSize)
			return nil
		},
	}
	cmd.Flags().StringVar(&fen, "fen", "", "FEN to render (defaults to the standard opening)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
