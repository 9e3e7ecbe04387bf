package chess

// Piece is a coloured piece packed into a single byte, or Empty.
type Piece uint8

// Empty marks an unoccupied square.
const Empty Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// EmptyCode is the two-symbol code of an empty square.
const EmptyCode = "--"

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, kind Kind) Piece {
	return Piece((int(kind) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakeColouredPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakeColouredPiece(Black, kind)
}

// IsEmpty reports whether p is the empty square marker.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Colour extracts the colour of a piece. Meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Kind extracts the piece type.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p == MakeColouredPiece(colour, kind)
}

// IsColour reports whether p is a non-empty piece of the given colour.
func (p Piece) IsColour(colour Colour) bool {
	return p != Empty && p.Colour() == colour
}

// Code returns the two-symbol colour+kind code, e.g. "wp" or "bK", or "--".
func (p Piece) Code() string {
	if p == Empty {
		return EmptyCode
	}
	return string([]byte{p.Colour().Code(), p.Kind().Letter()})
}

// String returns the piece code.
func (p Piece) String() string {
	return p.Code()
}

// Letter returns the diagram letter of a piece: upper case for White,
// lower case for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	if p == Empty {
		return '.'
	}
	letter := p.Kind().Letter()
	if letter == 'p' {
		letter = 'P'
	}
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromLetter converts a diagram letter back into a piece.
// '.' yields Empty; unknown letters report false.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case '.':
		return Empty, true
	case 'P':
		return MakeColouredPiece(colour, Pawn), true
	case 'N':
		return MakeColouredPiece(colour, Knight), true
	case 'B':
		return MakeColouredPiece(colour, Bishop), true
	case 'R':
		return MakeColouredPiece(colour, Rook), true
	case 'Q':
		return MakeColouredPiece(colour, Queen), true
	case 'K':
		return MakeColouredPiece(colour, King), true
	default:
		return Empty, false
	}
}
