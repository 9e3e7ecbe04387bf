// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Code returns the single-symbol colour code used in piece codes ('w' or 'b').
func (c Colour) Code() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Kind represents a chess piece type without colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every piece kind in generation order.
var Kinds = [...]Kind{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
// Pawns use 'p' as in the two-symbol piece codes.
func (k Kind) Letter() byte {
	letters := []byte{'-', 'p', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	// Row 0 is the black back rank, row 7 the white back rank.
	BlackHomeRow = 0
	WhiteHomeRow = BoardSize - 1

	KingHomeCol      = 4
	KingsideRookCol  = BoardSize - 1
	QueensideRookCol = 0

	FileBase = 'a'
	RankBase = '1'
)

// HomeRow returns the back rank row for a colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return WhiteHomeRow
	}
	return BlackHomeRow
}

// PawnStartRow returns the row pawns of the given colour start on.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return WhiteHomeRow - 1
	}
	return BlackHomeRow + 1
}

// PromotionRow returns the farthest row for pawns of the given colour.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// ColourOffset returns the row step of a pawn advance: -1 for White, +1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}
