package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// snapshot holds everything the round-trip law compares.
type snapshot struct {
	Board     chess.Board
	ToMove    chess.Colour
	WhiteKing chess.Square
	BlackKing chess.Square
	Rights    chess.CastlingRights
	EnPassant chess.Square
	Plies     int
}

func takeSnapshot(g *GameState) snapshot {
	return snapshot{
		Board:     g.Board(),
		ToMove:    g.ToMove(),
		WhiteKing: g.KingSquare(chess.White),
		BlackKing: g.KingSquare(chess.Black),
		Rights:    g.CastlingRights(),
		EnPassant: g.EnPassantTarget(),
		Plies:     g.PlyCount(),
	}
}

// play applies moves given in long algebraic form, failing if any is illegal.
func play(t *testing.T, g *GameState, notations ...string) {
	t.Helper()
	for _, n := range notations {
		from, to, err := chess.ParseNotation(n)
		if err != nil {
			t.Fatalf("ParseNotation(%q) error: %v", n, err)
		}
		moves := g.ValidMoves()
		m, ok := FindMove(moves, from, to)
		if !ok {
			t.Fatalf("move %s is not legal; legal moves: %v", n, testutil.Notations(moves))
		}
		g.ApplyMove(m)
	}
}

// hasMove reports whether the notation appears in moves.
func hasMove(moves []chess.Move, notation string) bool {
	for _, m := range moves {
		if m.Notation() == notation {
			return true
		}
	}
	return false
}

// findNotation returns the move with the given notation.
func findNotation(t *testing.T, moves []chess.Move, notation string) chess.Move {
	t.Helper()
	for _, m := range moves {
		if m.Notation() == notation {
			return m
		}
	}
	t.Fatalf("move %s not found in %v", notation, testutil.Notations(moves))
	return chess.Move{}
}

// mustState builds a position from a diagram.
func mustState(t *testing.T, toMove chess.Colour, rights chess.CastlingRights, ep chess.Square, rows ...string) *GameState {
	t.Helper()
	g, err := NewGameStateFromBoard(testutil.Diagram(t, rows...), toMove, rights, ep)
	if err != nil {
		t.Fatalf("NewGameStateFromBoard() error: %v", err)
	}
	return g
}

// randomPlayout plays up to plies random legal moves and returns how many
// were played. It stops early at checkmate or stalemate.
func randomPlayout(g *GameState, rng *rand.Rand, plies int) int {
	for i := 0; i < plies; i++ {
		moves := g.ValidMoves()
		if len(moves) == 0 {
			return i
		}
		g.ApplyMove(moves[rng.Intn(len(moves))])
	}
	return plies
}
