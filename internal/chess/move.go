package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is an immutable description of a single ply. It captures the moved
// and captured pieces from the board it was built against, so it must only
// be applied to, or compared with moves from, that same position.
type Move struct {
	from          Square
	to            Square
	pieceMoved    Piece
	pieceCaptured Piece
	promotion     bool
	enPassant     bool
	castling      bool
}

// MoveOption flags a special move kind at construction time.
type MoveOption func(*Move)

// WithEnPassant marks the move as an en passant capture.
func WithEnPassant() MoveOption {
	return func(m *Move) {
		m.enPassant = true
	}
}

// WithCastling marks the move as the king's two-square castling move.
func WithCastling() MoveOption {
	return func(m *Move) {
		m.castling = true
	}
}

// NewMove builds a move from one square to another, reading the moved and
// captured pieces from board.
func NewMove(from, to Square, board *Board, opts ...MoveOption) Move {
	m := Move{
		from:          from,
		to:            to,
		pieceMoved:    board.At(from),
		pieceCaptured: board.At(to),
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.pieceMoved.Kind() == Pawn && to.Row == PromotionRow(m.pieceMoved.Colour()) {
		m.promotion = true
	}

	// The victim of an en passant capture sits beside the start square,
	// not on the destination.
	if m.enPassant {
		m.pieceCaptured = MakeColouredPiece(m.pieceMoved.Colour().Opposite(), Pawn)
	}
	return m
}

// From returns the start square.
func (m Move) From() Square { return m.from }

// To returns the end square.
func (m Move) To() Square { return m.to }

// PieceMoved returns the piece that was on the start square.
func (m Move) PieceMoved() Piece { return m.pieceMoved }

// PieceCaptured returns the captured piece, or Empty.
func (m Move) PieceCaptured() Piece { return m.pieceCaptured }

// IsPawnPromotion reports whether a pawn reaches its last rank.
func (m Move) IsPawnPromotion() bool { return m.promotion }

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m.enPassant }

// IsCastling reports whether the move is a castling king move.
func (m Move) IsCastling() bool { return m.castling }

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.pieceCaptured != Empty
}

// IsKingSideCastle reports whether the move castles towards the h-file.
func (m Move) IsKingSideCastle() bool {
	return m.castling && m.to.Col > m.from.Col
}

// IsDoublePawnPush reports whether the move advances a pawn two rows.
func (m Move) IsDoublePawnPush() bool {
	return m.pieceMoved.Kind() == Pawn && abs(m.to.Row-m.from.Row) == 2
}

// CapturedSquare returns the square the captured piece stood on.
func (m Move) CapturedSquare() Square {
	if m.enPassant {
		return Square{Row: m.from.Row, Col: m.to.Col}
	}
	return m.to
}

// Equal compares moves by start and end square only. Within one legal move
// list these two squares identify a move uniquely.
func (m Move) Equal(other Move) bool {
	return m.from == other.from && m.to == other.to
}

// Notation returns the move in long algebraic form, e.g. "e2e4".
func (m Move) Notation() string {
	return m.from.String() + m.to.String()
}

// String returns the notation followed by the moved piece code.
func (m Move) String() string {
	return fmt.Sprintf("%s(%s)", m.Notation(), m.pieceMoved.Code())
}

// ParseNotation splits long algebraic text such as "e2e4" into its squares.
func ParseNotation(text string) (Square, Square, error) {
	if len(text) != 4 {
		return NoSquare, NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Expected: "four characters like e2e4",
			Got:      quoteOrEmpty(text),
		}
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return NoSquare, NoSquare, relocate(err, text, 0)
	}
	to, err := ParseSquare(text[2:])
	if err != nil {
		return NoSquare, NoSquare, relocate(err, text, 2)
	}
	return from, to, nil
}

// relocate points a square parse error at its position within a longer input.
func relocate(err error, input string, shift int) error {
	var pe *errors.ParseError
	if errors.As(err, &pe) {
		pe.Input = input
		if pe.Column > 0 {
			pe.Column += shift
		}
	}
	return err
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
