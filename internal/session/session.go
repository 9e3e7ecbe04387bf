// Package session is the boundary a front end drives: it holds one game,
// matches submitted square pairs against the legal move list, and reports
// whose turn it is and whether the game has ended.
package session

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Session owns a game and the legal moves for its current position.
// It is not safe for concurrent use.
type Session struct {
	cfg   *config.Config
	game  *engine.GameState
	legal []chess.Move
}

// New starts a session at the standard initial position. A nil cfg uses
// the defaults.
func New(cfg *config.Config) *Session {
	return NewFromState(cfg, engine.NewGameState())
}

// NewFromState starts a session from an existing game, which the session
// takes ownership of.
func NewFromState(cfg *config.Config, game *engine.GameState) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	s := &Session{cfg: cfg, game: game}
	s.refresh()
	return s
}

// refresh regenerates the legal list and with it the terminal flags.
func (s *Session) refresh() {
	s.legal = s.game.ValidMoves()
}

// Board returns a snapshot of the board.
func (s *Session) Board() chess.Board {
	return s.game.Board()
}

// ToMove returns the side to move.
func (s *Session) ToMove() chess.Colour {
	return s.game.ToMove()
}

// Status reports whether the side to move is mated, stalemated or playing on.
func (s *Session) Status() engine.Status {
	return s.game.Status()
}

// CheckMate reports whether the side to move has been checkmated.
func (s *Session) CheckMate() bool {
	return s.game.CheckMate()
}

// StaleMate reports whether the side to move has been stalemated.
func (s *Session) StaleMate() bool {
	return s.game.StaleMate()
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	return s.game.InCheck()
}

// PlyCount returns the number of moves played.
func (s *Session) PlyCount() int {
	return s.game.PlyCount()
}

// LegalMoves returns a copy of the legal moves.
func (s *Session) LegalMoves() []chess.Move {
	moves := make([]chess.Move, len(s.legal))
	copy(moves, s.legal)
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on sq, for front ends
// that highlight destinations once a piece is picked up.
func (s *Session) LegalMovesFrom(sq chess.Square) []chess.Move {
	var moves []chess.Move
	for _, m := range s.legal {
		if m.From() == sq {
			moves = append(moves, m)
		}
	}
	return moves
}

// LastMove returns the most recent move, if any.
func (s *Session) LastMove() (chess.Move, bool) {
	return s.game.LastMove()
}

// Submit plays the legal move joining from and to. It fails with
// ErrGameOver once the game has ended and ErrIllegalMove when no legal
// move matches, leaving the game untouched either way.
func (s *Session) Submit(from, to chess.Square) (chess.Move, error) {
	text := from.String() + to.String()
	if s.game.Status() != engine.InProgress {
		return chess.Move{}, s.moveError(errors.ErrGameOver, text)
	}

	move, ok := engine.FindMove(s.legal, from, to)
	if !ok {
		return chess.Move{}, s.moveError(errors.ErrIllegalMove, text)
	}

	mover := s.game.ToMove()
	s.game.ApplyMove(move)
	s.refresh()

	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "ply %d: %s plays %s\n", s.game.PlyCount(), mover, move.Notation())
	}
	if result := s.Result(); result != "" && s.cfg.Verbosity > 0 {
		fmt.Fprintf(s.cfg.LogFile, "%s after %d plies\n", result, s.game.PlyCount())
	}
	return move, nil
}

// SubmitNotation parses long algebraic text such as "e2e4" and submits it.
func (s *Session) SubmitNotation(text string) (chess.Move, error) {
	from, to, err := chess.ParseNotation(text)
	if err != nil {
		return chess.Move{}, s.moveError(err, text)
	}
	return s.Submit(from, to)
}

func (s *Session) moveError(err error, text string) error {
	return &errors.MoveError{
		Err:      err,
		PlyNum:   s.game.PlyCount() + 1,
		MoveText: text,
		ToMove:   s.game.ToMove().String(),
	}
}

// Undo takes back the last move. It returns false when there is nothing
// to take back.
func (s *Session) Undo() bool {
	last, ok := s.game.LastMove()
	if !ok {
		return false
	}
	s.game.UndoMove()
	s.refresh()

	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "undo %s\n", last.Notation())
	}
	return true
}

// Reset starts a new game from the initial position.
func (s *Session) Reset() {
	s.game = engine.NewGameState()
	s.refresh()

	if s.cfg.Verbosity > 1 {
		fmt.Fprintln(s.cfg.LogFile, "new game")
	}
}

// History returns the played moves in long algebraic form.
func (s *Session) History() []string {
	moves := s.game.History()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

// Result describes a finished game, or returns "" while it is in progress.
func (s *Session) Result() string {
	switch s.game.Status() {
	case engine.Checkmate:
		return fmt.Sprintf("%s wins by checkmate", s.game.ToMove().Opposite())
	case engine.Stalemate:
		return "Stalemate"
	default:
		return ""
	}
}
