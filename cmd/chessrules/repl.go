package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const lineWidth = 72

const commandHelp = `  e2e4          play the move from e2 to e4 (promotion is always to a queen)
  from <sq>     list the legal moves of the piece on <sq>
  moves         list every legal move
  undo          take back the last move
  new           start a new game
  board         redraw the board
  history       print the moves played so far
  export        print the game as JSON
  help          show this list
  quit          leave
`

// REPL reads commands line by line and drives a session with them.
type REPL struct {
	sess     *session.Session
	cfg      *config.Config
	renderer *output.BoardRenderer
	out      io.Writer
}

// NewREPL creates a REPL writing to the configured output.
func NewREPL(sess *session.Session, cfg *config.Config) *REPL {
	return &REPL{
		sess:     sess,
		cfg:      cfg,
		renderer: output.NewBoardRenderer(cfg.Display),
		out:      cfg.OutputFile,
	}
}

// Run shows the board and then executes commands from in until quit or
// end of input.
func (r *REPL) Run(in io.Reader) error {
	r.show()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if quit := r.Execute(scanner.Text()); quit {
			return nil
		}
	}
}

// Execute runs one command line. It returns true when the user asked
// to quit.
func (r *REPL) Execute(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch cmd := fields[0]; cmd {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(r.out, commandHelp)
	case "board":
		r.show()
	case "moves":
		output.WriteMoves(r.out, r.sess.LegalMoves(), lineWidth)
	case "from":
		r.listFrom(fields[1:])
	case "undo":
		if !r.sess.Undo() {
			fmt.Fprintln(r.out, "Nothing to undo")
			return false
		}
		r.show()
	case "new":
		r.sess.Reset()
		r.show()
	case "history":
		output.WriteHistory(r.out, r.sess.History(), r.sess.Result(), lineWidth)
	case "export":
		record := output.NewGameRecord(r.sess.Board(), r.sess.ToMove(), r.sess.History(), r.sess.Result())
		if err := record.WriteJSON(r.out); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
	default:
		if _, err := r.sess.SubmitNotation(cmd); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return false
		}
		r.show()
	}
	return false
}

func (r *REPL) listFrom(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: from <square>")
		return
	}
	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	moves := r.sess.LegalMovesFrom(sq)
	if len(moves) == 0 {
		fmt.Fprintf(r.out, "No legal moves from %s\n", sq)
		return
	}
	output.WriteMoves(r.out, moves, lineWidth)
}

// show draws the board followed by the side to move or the result.
func (r *REPL) show() {
	var last *chess.Move
	if m, ok := r.sess.LastMove(); ok {
		last = &m
	}
	if err := r.renderer.Render(r.out, r.sess.Board(), last); err != nil {
		fmt.Fprintf(r.cfg.LogFile, "render: %v\n", err)
		return
	}
	if err := r.renderer.Status(r.out, r.sess.ToMove(), r.sess.InCheck(), r.sess.Result()); err != nil {
		fmt.Fprintf(r.cfg.LogFile, "render: %v\n", err)
	}
}
