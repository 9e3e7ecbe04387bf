package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castleMoves appends the castling moves available to the side to move.
// Castling out of check is never allowed.
func (g *GameState) castleMoves(king chess.Square, moves []chess.Move) []chess.Move {
	colour := g.toMove
	if g.SquareUnderAttack(king) {
		return moves
	}
	if g.rights.KingSide(colour) {
		moves = g.kingSideCastle(king, moves)
	}
	if g.rights.QueenSide(colour) {
		moves = g.queenSideCastle(king, moves)
	}
	return moves
}

// kingSideCastle requires both squares between king and rook to be empty
// and safe.
func (g *GameState) kingSideCastle(king chess.Square, moves []chess.Move) []chess.Move {
	transit := king.Offset(0, 1)
	dest := king.Offset(0, 2)
	if !g.board.IsEmpty(transit) || !g.board.IsEmpty(dest) {
		return moves
	}
	if g.SquareUnderAttack(transit) || g.SquareUnderAttack(dest) {
		return moves
	}
	return append(moves, chess.NewMove(king, dest, &g.board, chess.WithCastling()))
}

// queenSideCastle requires the three squares between king and rook to be
// empty. Only the two the king crosses must be safe.
func (g *GameState) queenSideCastle(king chess.Square, moves []chess.Move) []chess.Move {
	transit := king.Offset(0, -1)
	dest := king.Offset(0, -2)
	rookSide := king.Offset(0, -3)
	if !g.board.IsEmpty(transit) || !g.board.IsEmpty(dest) || !g.board.IsEmpty(rookSide) {
		return moves
	}
	if g.SquareUnderAttack(transit) || g.SquareUnderAttack(dest) {
		return moves
	}
	return append(moves, chess.NewMove(king, dest, &g.board, chess.WithCastling()))
}

// castlingRookSquares returns where the rook starts and ends for a castling move.
func castlingRookSquares(move chess.Move) (from, to chess.Square) {
	row, kingTo := move.To().Row, move.To().Col
	if move.IsKingSideCastle() {
		return chess.Sq(row, chess.KingsideRookCol), chess.Sq(row, kingTo-1)
	}
	return chess.Sq(row, chess.QueensideRookCol), chess.Sq(row, kingTo+1)
}

// moveCastlingRook relocates the rook after the king has castled.
func moveCastlingRook(board *chess.Board, move chess.Move) {
	from, to := castlingRookSquares(move)
	board.Set(to, board.At(from))
	board.Set(from, chess.Empty)
}

// restoreCastlingRook puts the rook back on its corner when a castle is undone.
func restoreCastlingRook(board *chess.Board, move chess.Move) {
	from, to := castlingRookSquares(move)
	board.Set(from, board.At(to))
	board.Set(to, chess.Empty)
}

// updateCastlingRights removes rights when a king or rook leaves its home
// square, or when a rook is captured on its home corner.
func (g *GameState) updateCastlingRights(move chess.Move) {
	piece := move.PieceMoved()
	colour := piece.Colour()

	switch piece.Kind() {
	case chess.King:
		g.rights.RevokeAll(colour)
	case chess.Rook:
		revokeRookCorner(&g.rights, colour, move.From())
	}

	if captured := move.PieceCaptured(); captured.Kind() == chess.Rook {
		revokeRookCorner(&g.rights, captured.Colour(), move.To())
	}
}

// revokeRookCorner clears the right tied to a rook standing on sq, if sq is
// one of that colour's corners.
func revokeRookCorner(rights *chess.CastlingRights, colour chess.Colour, sq chess.Square) {
	if sq.Row != chess.HomeRow(colour) {
		return
	}
	switch sq.Col {
	case chess.QueensideRookCol:
		rights.RevokeQueenSide(colour)
	case chess.KingsideRookCol:
		rights.RevokeKingSide(colour)
	}
}
