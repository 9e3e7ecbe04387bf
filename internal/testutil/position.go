package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MoveComparer lets cmp compare chess.Move values, which hide their fields.
var MoveComparer = cmp.Comparer(func(a, b chess.Move) bool {
	return a.From() == b.From() &&
		a.To() == b.To() &&
		a.PieceMoved() == b.PieceMoved() &&
		a.PieceCaptured() == b.PieceCaptured() &&
		a.IsPawnPromotion() == b.IsPawnPromotion() &&
		a.IsEnPassant() == b.IsEnPassant() &&
		a.IsCastling() == b.IsCastling()
})

// Diagram builds a board from eight rows of diagram letters, rank 8 first.
// Upper case is White, lower case Black, '.' an empty square; spaces are
// ignored so rows may be written "r . b q k . . r".
func Diagram(t testing.TB, rows ...string) chess.Board {
	t.Helper()
	var board chess.Board
	if len(rows) != chess.BoardSize {
		t.Fatalf("Diagram: got %d rows, want %d", len(rows), chess.BoardSize)
	}
	for row, text := range rows {
		text = strings.ReplaceAll(text, " ", "")
		if len(text) != chess.BoardSize {
			t.Fatalf("Diagram: row %d %q has %d squares, want %d", row, text, len(text), chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := chess.PieceFromLetter(text[col])
			if !ok {
				t.Fatalf("Diagram: row %d has unknown piece %q", row, text[col])
			}
			board[row][col] = piece
		}
	}
	return board
}

// MustSquare parses a square such as "e4", failing the test on error.
func MustSquare(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", text, err)
	}
	return sq
}

// Notations returns the long algebraic form of each move.
func Notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}
