// Package engine implements the chess rules: legal move generation, move
// application and reversal, and check, checkmate and stalemate detection.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Status is the terminal state of the side to move.
type Status int

const (
	InProgress Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "InProgress"
	}
}

// plyRecord bundles a played move with the state needed to reverse it.
type plyRecord struct {
	move      chess.Move
	rights    chess.CastlingRights
	enPassant chess.Square
}

// GameState is the mutable authority over a game: board, side to move,
// king locations, castling rights, en passant target and move history.
// It is not safe for concurrent use.
type GameState struct {
	board     chess.Board
	toMove    chess.Colour
	kings     [2]chess.Square // indexed by chess.Colour
	rights    chess.CastlingRights
	enPassant chess.Square
	history   []plyRecord

	// Valid only immediately after ValidMoves.
	checkMate bool
	staleMate bool
}

// NewGameState returns the standard starting position with White to move.
func NewGameState() *GameState {
	g := &GameState{
		board:     chess.NewInitialBoard(),
		toMove:    chess.White,
		rights:    chess.AllCastlingRights,
		enPassant: chess.NoSquare,
	}
	g.kings[chess.White] = chess.Sq(chess.WhiteHomeRow, chess.KingHomeCol)
	g.kings[chess.Black] = chess.Sq(chess.BlackHomeRow, chess.KingHomeCol)
	return g
}

// NewGameStateFromBoard sets up an arbitrary position. Each side must have
// exactly one king. Castling rights whose king or rook is not on its home
// square are dropped. enPassant may be chess.NoSquare.
func NewGameStateFromBoard(board chess.Board, toMove chess.Colour, rights chess.CastlingRights, enPassant chess.Square) (*GameState, error) {
	g := &GameState{
		board:     board,
		toMove:    toMove,
		rights:    rights,
		enPassant: chess.NoSquare,
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := chess.MakeColouredPiece(colour, chess.King)
		if n := board.Count(king); n != 1 {
			return nil, fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidPosition)
		}
		g.kings[colour] = board.FindKing(colour)
		g.rights = trimRights(&board, colour, g.rights)
	}

	if enPassant.Valid() {
		// The target lies behind a pawn the opponent just pushed two squares.
		wantRow := chess.PawnStartRow(toMove.Opposite()) + chess.ColourOffset(toMove.Opposite())
		pusher := chess.MakeColouredPiece(toMove.Opposite(), chess.Pawn)
		if enPassant.Row != wantRow || board.At(enPassant.Offset(chess.ColourOffset(toMove.Opposite()), 0)) != pusher {
			return nil, fmt.Errorf("en passant target %s with %s to move: %w", enPassant, toMove, errors.ErrInvalidPosition)
		}
		g.enPassant = enPassant
	}

	return g, nil
}

// trimRights drops rights that the board cannot support.
func trimRights(board *chess.Board, colour chess.Colour, rights chess.CastlingRights) chess.CastlingRights {
	home := chess.HomeRow(colour)
	if board.At(chess.Sq(home, chess.KingHomeCol)) != chess.MakeColouredPiece(colour, chess.King) {
		rights.RevokeAll(colour)
		return rights
	}
	rook := chess.MakeColouredPiece(colour, chess.Rook)
	if board.At(chess.Sq(home, chess.KingsideRookCol)) != rook {
		rights.RevokeKingSide(colour)
	}
	if board.At(chess.Sq(home, chess.QueensideRookCol)) != rook {
		rights.RevokeQueenSide(colour)
	}
	return rights
}

// Board returns a snapshot of the board contents.
func (g *GameState) Board() chess.Board {
	return g.board
}

// PieceAt returns the piece on a square.
func (g *GameState) PieceAt(sq chess.Square) chess.Piece {
	return g.board.At(sq)
}

// ToMove returns the side to move.
func (g *GameState) ToMove() chess.Colour {
	return g.toMove
}

// KingSquare returns the cached king location for a colour.
func (g *GameState) KingSquare(colour chess.Colour) chess.Square {
	return g.kings[colour]
}

// CastlingRights returns the current castling rights.
func (g *GameState) CastlingRights() chess.CastlingRights {
	return g.rights
}

// EnPassantTarget returns the square a pawn passed over on the previous
// ply, or chess.NoSquare.
func (g *GameState) EnPassantTarget() chess.Square {
	return g.enPassant
}

// CheckMate reports the flag set by the latest ValidMoves call.
func (g *GameState) CheckMate() bool {
	return g.checkMate
}

// StaleMate reports the flag set by the latest ValidMoves call.
func (g *GameState) StaleMate() bool {
	return g.staleMate
}

// Status combines the terminal flags from the latest ValidMoves call.
func (g *GameState) Status() Status {
	switch {
	case g.checkMate:
		return Checkmate
	case g.staleMate:
		return Stalemate
	default:
		return InProgress
	}
}

// PlyCount returns the number of moves played.
func (g *GameState) PlyCount() int {
	return len(g.history)
}

// History returns the played moves, oldest first.
func (g *GameState) History() []chess.Move {
	moves := make([]chess.Move, len(g.history))
	for i, rec := range g.history {
		moves[i] = rec.move
	}
	return moves
}

// LastMove returns the most recent move, if any.
func (g *GameState) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1].move, true
}

// RightsLog returns the castling rights before the first ply followed by
// the rights after every ply, so it always has PlyCount()+1 entries.
func (g *GameState) RightsLog() []chess.CastlingRights {
	log := make([]chess.CastlingRights, 0, len(g.history)+1)
	for _, rec := range g.history {
		log = append(log, rec.rights)
	}
	return append(log, g.rights)
}

// Clone returns an independent deep copy of the game state.
func (g *GameState) Clone() *GameState {
	c := *g
	c.history = make([]plyRecord, len(g.history))
	copy(c.history, g.history)
	return &c
}
