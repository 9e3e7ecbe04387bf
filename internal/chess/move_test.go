package chess

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", s, err)
	}
	return sq
}

func TestNewMove_ReadsBoard(t *testing.T) {
	b := NewInitialBoard()
	m := NewMove(mustSquare(t, "g1"), mustSquare(t, "f3"), &b)

	if m.PieceMoved() != W(Knight) {
		t.Errorf("PieceMoved() = %v; want wN", m.PieceMoved())
	}
	if m.PieceCaptured() != Empty || m.IsCapture() {
		t.Errorf("PieceCaptured() = %v; want Empty", m.PieceCaptured())
	}
	if m.IsPawnPromotion() || m.IsEnPassant() || m.IsCastling() {
		t.Error("plain knight move has special flags")
	}

	// The move keeps the pieces it saw even if the board changes later.
	b.Set(mustSquare(t, "g1"), Empty)
	if m.PieceMoved() != W(Knight) {
		t.Error("move changed after the board was mutated")
	}
}

func TestNewMove_Capture(t *testing.T) {
	var b Board
	b.Set(mustSquare(t, "d4"), W(Rook))
	b.Set(mustSquare(t, "d7"), B(Bishop))

	m := NewMove(mustSquare(t, "d4"), mustSquare(t, "d7"), &b)
	if m.PieceCaptured() != B(Bishop) || !m.IsCapture() {
		t.Errorf("PieceCaptured() = %v; want bB", m.PieceCaptured())
	}
	if m.CapturedSquare() != mustSquare(t, "d7") {
		t.Errorf("CapturedSquare() = %v; want d7", m.CapturedSquare())
	}
}

func TestNewMove_Promotion(t *testing.T) {
	var b Board
	b.Set(mustSquare(t, "a7"), W(Pawn))
	b.Set(mustSquare(t, "h2"), B(Pawn))
	b.Set(mustSquare(t, "c6"), W(Pawn))

	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"white pawn to rank 8", "a7", "a8", true},
		{"black pawn to rank 1", "h2", "h1", true},
		{"white pawn to rank 7", "c6", "c7", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMove(mustSquare(t, tt.from), mustSquare(t, tt.to), &b)
			if got := m.IsPawnPromotion(); got != tt.want {
				t.Errorf("IsPawnPromotion() = %v; want %v", got, tt.want)
			}
		})
	}

	// A rook reaching the last rank is not a promotion.
	b.Set(mustSquare(t, "b7"), W(Rook))
	if NewMove(mustSquare(t, "b7"), mustSquare(t, "b8"), &b).IsPawnPromotion() {
		t.Error("rook move flagged as promotion")
	}
}

func TestNewMove_EnPassant(t *testing.T) {
	var b Board
	b.Set(mustSquare(t, "e5"), W(Pawn))
	b.Set(mustSquare(t, "d5"), B(Pawn))

	m := NewMove(mustSquare(t, "e5"), mustSquare(t, "d6"), &b, WithEnPassant())
	if !m.IsEnPassant() {
		t.Fatal("IsEnPassant() = false; want true")
	}
	if m.PieceCaptured() != B(Pawn) {
		t.Errorf("PieceCaptured() = %v; want bp", m.PieceCaptured())
	}
	if m.CapturedSquare() != mustSquare(t, "d5") {
		t.Errorf("CapturedSquare() = %v; want d5", m.CapturedSquare())
	}
}

func TestNewMove_Castling(t *testing.T) {
	b := NewInitialBoard()
	ks := NewMove(mustSquare(t, "e1"), mustSquare(t, "g1"), &b, WithCastling())
	qs := NewMove(mustSquare(t, "e8"), mustSquare(t, "c8"), &b, WithCastling())

	if !ks.IsCastling() || !ks.IsKingSideCastle() {
		t.Error("e1g1 should be a king-side castle")
	}
	if !qs.IsCastling() || qs.IsKingSideCastle() {
		t.Error("e8c8 should be a queen-side castle")
	}
}

func TestMoveEqual(t *testing.T) {
	b := NewInitialBoard()
	a := NewMove(mustSquare(t, "e2"), mustSquare(t, "e4"), &b)

	var other Board
	c := NewMove(mustSquare(t, "e2"), mustSquare(t, "e4"), &other)
	d := NewMove(mustSquare(t, "e2"), mustSquare(t, "e3"), &b)

	if !a.Equal(c) {
		t.Error("moves with the same squares should be equal regardless of board")
	}
	if a.Equal(d) {
		t.Error("moves with different end squares should differ")
	}
}

func TestMoveNotation(t *testing.T) {
	b := NewInitialBoard()
	m := NewMove(Sq(6, 4), Sq(4, 4), &b)
	if got := m.Notation(); got != "e2e4" {
		t.Errorf("Notation() = %q; want %q", got, "e2e4")
	}
	if got := m.String(); got != "e2e4(wp)" {
		t.Errorf("String() = %q; want %q", got, "e2e4(wp)")
	}
	if !m.IsDoublePawnPush() {
		t.Error("e2e4 should be a double pawn push")
	}
}

func TestParseNotation(t *testing.T) {
	from, to, err := ParseNotation("g8f6")
	if err != nil {
		t.Fatalf("ParseNotation(\"g8f6\") error: %v", err)
	}
	if from != Sq(0, 6) || to != Sq(2, 5) {
		t.Errorf("ParseNotation(\"g8f6\") = %v, %v; want g8, f6", from, to)
	}

	tests := []struct {
		input  string
		column int
	}{
		{"e2e", 0},
		{"z2e4", 1},
		{"e2e9", 4},
		{"e2x4", 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, _, err := ParseNotation(tt.input)
			if !errors.Is(err, errors.ErrInvalidSquare) {
				t.Fatalf("ParseNotation(%q) error = %v; want ErrInvalidSquare", tt.input, err)
			}
			var pe *errors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ParseNotation(%q) error is not a ParseError", tt.input)
			}
			if pe.Column != tt.column {
				t.Errorf("column = %d; want %d", pe.Column, tt.column)
			}
			if pe.Input != tt.input {
				t.Errorf("Input = %q; want %q", pe.Input, tt.input)
			}
		})
	}
}
