package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var (
	rookDirections   = [...][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	bishopDirections = [...][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightOffsets    = [...][2]int{{-2, -1}, {-2, 1}, {2, -1}, {2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}}
	kingOffsets      = [...][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// pseudoLegalMoves returns every move obeying piece movement rules for the
// given colour, ignoring whether it leaves that colour's king in check.
// Castling is generated separately.
func (g *GameState) pseudoLegalMoves(colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 64)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board[row][col]
			if !piece.IsColour(colour) {
				continue
			}
			moves = g.pieceMoves(chess.Sq(row, col), piece, moves)
		}
	}
	return moves
}

// pieceMoves dispatches to the generator for the piece's kind.
func (g *GameState) pieceMoves(sq chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	colour := piece.Colour()
	switch piece.Kind() {
	case chess.Pawn:
		return g.pawnMoves(sq, colour, moves)
	case chess.Rook:
		return g.slidingMoves(sq, colour, rookDirections[:], moves)
	case chess.Knight:
		return g.steppingMoves(sq, colour, knightOffsets[:], moves)
	case chess.Bishop:
		return g.slidingMoves(sq, colour, bishopDirections[:], moves)
	case chess.King:
		return g.steppingMoves(sq, colour, kingOffsets[:], moves)
	case chess.Queen:
		moves = g.slidingMoves(sq, colour, rookDirections[:], moves)
		return g.slidingMoves(sq, colour, bishopDirections[:], moves)
	default:
		return moves
	}
}

// slidingMoves casts rays until the board edge, stopping on a capture and
// before a friendly piece.
func (g *GameState) slidingMoves(sq chess.Square, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, d := range dirs {
		for i := 1; i < chess.BoardSize; i++ {
			target := sq.Offset(i*d[0], i*d[1])
			if !target.Valid() {
				break
			}
			occupant := g.board.At(target)
			if occupant == chess.Empty {
				moves = append(moves, chess.NewMove(sq, target, &g.board))
				continue
			}
			if occupant.Colour() != colour {
				moves = append(moves, chess.NewMove(sq, target, &g.board))
			}
			break
		}
	}
	return moves
}

// steppingMoves tries each fixed offset, skipping squares held by friendly
// pieces.
func (g *GameState) steppingMoves(sq chess.Square, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, o := range offsets {
		target := sq.Offset(o[0], o[1])
		if !target.Valid() || g.board.At(target).IsColour(colour) {
			continue
		}
		moves = append(moves, chess.NewMove(sq, target, &g.board))
	}
	return moves
}
