package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// InCheck reports whether the side to move's king is attacked.
func (g *GameState) InCheck() bool {
	return g.kingAttacked(g.toMove)
}

// SquareUnderAttack reports whether the opponent of the side to move
// attacks sq.
func (g *GameState) SquareUnderAttack(sq chess.Square) bool {
	return isSquareAttacked(&g.board, sq, g.toMove.Opposite())
}

// kingAttacked reports whether the given colour's king is attacked.
func (g *GameState) kingAttacked(colour chess.Colour) bool {
	return isSquareAttacked(&g.board, g.kings[colour], colour.Opposite())
}

// isSquareAttacked returns true if the square is attacked by the given colour.
// It looks outward from the square, so it never generates moves and never
// touches game state.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so an attacker sits one row behind sq
	// from its own point of view.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	behind := -chess.ColourOffset(byColour)
	if board.At(sq.Offset(behind, -1)) == pawn || board.At(sq.Offset(behind, 1)) == pawn {
		return true
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, o := range knightOffsets {
		if board.At(sq.Offset(o[0], o[1])) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, o := range kingOffsets {
		if board.At(sq.Offset(o[0], o[1])) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	if rayHits(board, sq, bishopDirections[:], bishop, queen) {
		return true
	}

	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	return rayHits(board, sq, rookDirections[:], rook, queen)
}

// rayHits walks each direction to the first occupied square and reports
// whether it holds one of the two given sliders.
func rayHits(board *chess.Board, sq chess.Square, dirs [][2]int, a, b chess.Piece) bool {
	for _, d := range dirs {
		target := sq.Offset(d[0], d[1])
		for target.Valid() {
			piece := board.At(target)
			if piece != chess.Empty {
				if piece == a || piece == b {
					return true
				}
				break // Blocked
			}
			target = target.Offset(d[0], d[1])
		}
	}
	return false
}
