package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// ValidMoves returns the legal moves for the side to move and refreshes the
// checkmate and stalemate flags. Each pseudo-legal move is played and taken
// back to see whether it leaves the mover's king attacked.
func (g *GameState) ValidMoves() []chess.Move {
	savedEnPassant, savedRights := g.enPassant, g.rights
	defer func() {
		g.enPassant, g.rights = savedEnPassant, savedRights
	}()

	colour := g.toMove
	moves := g.pseudoLegalMoves(colour)
	moves = g.castleMoves(g.kings[colour], moves)

	legal := moves[:0]
	for _, m := range moves {
		g.ApplyMove(m)
		if !g.kingAttacked(colour) {
			legal = append(legal, m)
		}
		g.UndoMove()
	}

	g.checkMate, g.staleMate = false, false
	if len(legal) == 0 {
		if g.InCheck() {
			g.checkMate = true
		} else {
			g.staleMate = true
		}
	}

	return legal
}

// FindMove returns the legal move joining two squares, if there is one.
func FindMove(moves []chess.Move, from, to chess.Square) (chess.Move, bool) {
	for _, m := range moves {
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return chess.Move{}, false
}
