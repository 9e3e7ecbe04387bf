// Package perft counts the leaf nodes of the legal move tree, the standard
// way to check a move generator against published totals.
package perft

import (
	"context"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Perft returns the number of move sequences of exactly depth plies from
// the current position. The state is restored before returning.
func Perft(g *engine.GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		g.ApplyMove(m)
		nodes += Perft(g, depth-1)
		g.UndoMove()
	}
	return nodes
}

// MoveCount is the subtree size below one root move.
type MoveCount struct {
	Move  string
	Nodes uint64
}

// Result is the outcome of Divide.
type Result struct {
	Depth int
	Moves []MoveCount // Sorted by notation
	Total uint64
}

// Options tunes Divide.
type Options struct {
	Workers    int
	BufferSize int
}

// Divide counts each root move's subtree on its own cloned state, spread
// over a worker pool.
func Divide(ctx context.Context, g *engine.GameState, depth int, opts Options) (*Result, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}

	root := g.ValidMoves()
	items := make([]worker.WorkItem, len(root))
	for i, m := range root {
		items[i] = worker.WorkItem{State: g.Clone(), Move: m, Depth: depth, Index: i}
	}

	poolOpts := []worker.Option{worker.WithWorkers(opts.Workers), worker.WithBufferSize(opts.BufferSize)}
	pool := worker.NewPool(expand, poolOpts...)
	results, err := pool.Run(ctx, items)
	if err != nil {
		return nil, errors.Wrap(err, "perft divide")
	}

	res := &Result{Depth: depth, Moves: make([]MoveCount, len(results))}
	for i, r := range results {
		res.Moves[i] = MoveCount{Move: r.Move.Notation(), Nodes: r.Nodes}
		res.Total += r.Nodes
	}
	sort.Slice(res.Moves, func(i, j int) bool { return res.Moves[i].Move < res.Moves[j].Move })
	return res, nil
}

// expand plays the item's root move and counts the rest of the tree.
func expand(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	if err := ctx.Err(); err != nil {
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Err: err}
	}
	item.State.ApplyMove(item.Move)
	nodes := Perft(item.State, item.Depth-1)
	item.State.UndoMove()
	return worker.ProcessResult{Index: item.Index, Move: item.Move, Nodes: nodes}
}
