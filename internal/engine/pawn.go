package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves appends the pseudo-legal moves of a pawn: single and double
// advances, diagonal captures and en passant.
func (g *GameState) pawnMoves(sq chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := chess.ColourOffset(colour)

	one := sq.Offset(dir, 0)
	if g.board.IsEmpty(one) {
		moves = append(moves, chess.NewMove(sq, one, &g.board))

		two := sq.Offset(2*dir, 0)
		if sq.Row == chess.PawnStartRow(colour) && g.board.IsEmpty(two) {
			moves = append(moves, chess.NewMove(sq, two, &g.board))
		}
	}

	for _, dc := range [2]int{-1, 1} {
		target := sq.Offset(dir, dc)
		if !target.Valid() {
			continue
		}
		if g.board.At(target).IsColour(colour.Opposite()) {
			moves = append(moves, chess.NewMove(sq, target, &g.board))
		} else if target == g.enPassant {
			moves = append(moves, chess.NewMove(sq, target, &g.board, chess.WithEnPassant()))
		}
	}

	return moves
}
