package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ApplyMove plays a move produced by the latest ValidMoves call against the
// current board. The move is trusted: passing anything else is a contract
// violation and leaves the state undefined.
func (g *GameState) ApplyMove(move chess.Move) {
	from, to := move.From(), move.To()
	piece := move.PieceMoved()
	colour := piece.Colour()

	g.history = append(g.history, plyRecord{
		move:      move,
		rights:    g.rights,
		enPassant: g.enPassant,
	})

	g.board.Set(from, chess.Empty)
	g.board.Set(to, piece)
	g.toMove = g.toMove.Opposite()

	if piece.Kind() == chess.King {
		g.kings[colour] = to
	}

	if move.IsPawnPromotion() {
		g.board.Set(to, chess.MakeColouredPiece(colour, chess.Queen))
	}

	if move.IsEnPassant() {
		g.board.Set(move.CapturedSquare(), chess.Empty)
	}

	if move.IsDoublePawnPush() {
		g.enPassant = chess.Sq((from.Row+to.Row)/2, from.Col)
	} else {
		g.enPassant = chess.NoSquare
	}

	if move.IsCastling() {
		moveCastlingRook(&g.board, move)
	}

	g.updateCastlingRights(move)
}

// UndoMove takes back the last move. It does nothing when no move has been
// played.
func (g *GameState) UndoMove() {
	if len(g.history) == 0 {
		return
	}
	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	move := rec.move
	from, to := move.From(), move.To()
	piece := move.PieceMoved()

	g.board.Set(from, piece)
	g.board.Set(to, move.PieceCaptured())
	g.toMove = g.toMove.Opposite()

	if piece.Kind() == chess.King {
		g.kings[piece.Colour()] = from
	}

	if move.IsEnPassant() {
		g.board.Set(to, chess.Empty)
		g.board.Set(move.CapturedSquare(), move.PieceCaptured())
	}

	if move.IsCastling() {
		restoreCastlingRook(&g.board, move)
	}

	// The record holds the rights and en passant target from before the
	// move, which for an en passant capture is the move's own end square.
	g.rights = rec.rights
	g.enPassant = rec.enPassant
}
