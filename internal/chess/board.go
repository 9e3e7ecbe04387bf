package chess

import "strings"

// Board is the 8x8 grid of pieces, indexed [row][col]. It is a value type:
// assigning a Board copies every square, which is how read-only snapshots
// are handed out.
type Board [BoardSize][BoardSize]Piece

// backRank is the standard arrangement of the back rank from file a to h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard returns the standard chess starting position.
func NewInitialBoard() Board {
	var b Board
	for col := 0; col < BoardSize; col++ {
		b[BlackHomeRow][col] = B(backRank[col])
		b[BlackHomeRow+1][col] = B(Pawn)
		b[WhiteHomeRow-1][col] = W(Pawn)
		b[WhiteHomeRow][col] = W(backRank[col])
	}
	return b
}

// At returns the piece on a square. Squares off the board read as Empty.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b[sq.Row][sq.Col]
}

// Set places a piece on a square. Squares off the board are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b[sq.Row][sq.Col] = piece
	}
}

// IsEmpty reports whether a square on the board is unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b[sq.Row][sq.Col] == Empty
}

// Codes returns the board as a grid of two-symbol piece codes.
func (b *Board) Codes() [BoardSize][BoardSize]string {
	var codes [BoardSize][BoardSize]string
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			codes[row][col] = b[row][col].Code()
		}
	}
	return codes
}

// FindKing returns the square of the given colour's king, or NoSquare.
func (b *Board) FindKing(colour Colour) Square {
	king := MakeColouredPiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == king {
				return Square{Row: row, Col: col}
			}
		}
	}
	return NoSquare
}

// Count returns the number of squares holding the given piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// String renders the board as eight lines of diagram letters, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CastlingRights records which castles are still structurally possible.
type CastlingRights struct {
	WhiteKingSide  bool
	BlackKingSide  bool
	WhiteQueenSide bool
	BlackQueenSide bool
}

// AllCastlingRights is the rights set of the starting position.
var AllCastlingRights = CastlingRights{
	WhiteKingSide:  true,
	BlackKingSide:  true,
	WhiteQueenSide: true,
	BlackQueenSide: true,
}

// KingSide reports the king-side right for a colour.
func (r CastlingRights) KingSide(colour Colour) bool {
	if colour == White {
		return r.WhiteKingSide
	}
	return r.BlackKingSide
}

// QueenSide reports the queen-side right for a colour.
func (r CastlingRights) QueenSide(colour Colour) bool {
	if colour == White {
		return r.WhiteQueenSide
	}
	return r.BlackQueenSide
}

// RevokeKingSide clears the king-side right for a colour.
func (r *CastlingRights) RevokeKingSide(colour Colour) {
	if colour == White {
		r.WhiteKingSide = false
	} else {
		r.BlackKingSide = false
	}
}

// RevokeQueenSide clears the queen-side right for a colour.
func (r *CastlingRights) RevokeQueenSide(colour Colour) {
	if colour == White {
		r.WhiteQueenSide = false
	} else {
		r.BlackQueenSide = false
	}
}

// RevokeAll clears both rights for a colour.
func (r *CastlingRights) RevokeAll(colour Colour) {
	r.RevokeKingSide(colour)
	r.RevokeQueenSide(colour)
}

// String returns the rights in the conventional "KQkq" form, or "-".
func (r CastlingRights) String() string {
	var sb strings.Builder
	if r.WhiteKingSide {
		sb.WriteByte('K')
	}
	if r.WhiteQueenSide {
		sb.WriteByte('Q')
	}
	if r.BlackKingSide {
		sb.WriteByte('k')
	}
	if r.BlackQueenSide {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
