package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// runPerft counts nodes from the initial position. With showDivide each
// root move's subtree is listed before the total.
func runPerft(ctx context.Context, cfg *config.Config, depth int, showDivide bool) error {
	start := time.Now()
	opts := perft.Options{Workers: cfg.Perft.Workers, BufferSize: cfg.Perft.BufferSize}

	res, err := perft.Divide(ctx, engine.NewGameState(), depth, opts)
	if err != nil {
		return err
	}

	w := cfg.OutputFile
	if showDivide {
		for _, mc := range res.Moves {
			fmt.Fprintf(w, "%s: %d\n", mc.Move, mc.Nodes)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Nodes searched: %d\n", res.Total)

	if cfg.Verbosity > 0 {
		elapsed := time.Since(start)
		fmt.Fprintf(cfg.LogFile, "perft depth %d: %d nodes in %v\n", depth, res.Total, elapsed.Round(time.Millisecond))
	}
	return nil
}
