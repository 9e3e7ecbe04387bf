package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// LineWriter writes space-separated words, wrapping before maxLineLength.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewLineWriter creates a LineWriter. A non-positive maxLineLength means 80.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, preceded by a space or a line break.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *LineWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// FormatMoves returns the moves' notation sorted and space separated.
func FormatMoves(moves []chess.Move) string {
	notations := make([]string, len(moves))
	for i, m := range moves {
		notations[i] = m.Notation()
	}
	sort.Strings(notations)
	return strings.Join(notations, " ")
}

// WriteMoves writes the moves' notation sorted and wrapped at width.
func WriteMoves(w io.Writer, moves []chess.Move, width int) {
	notations := make([]string, len(moves))
	for i, m := range moves {
		notations[i] = m.Notation()
	}
	sort.Strings(notations)

	lw := NewLineWriter(w, width)
	for _, n := range notations {
		lw.Write(n)
	}
	lw.NewLine()
}

// WriteHistory writes a game's moves numbered in pairs, "1. e2e4 e7e5 2. ...",
// followed by the result when there is one.
func WriteHistory(w io.Writer, notations []string, result string, width int) {
	lw := NewLineWriter(w, width)
	for i, n := range notations {
		if i%2 == 0 {
			lw.Write(fmt.Sprintf("%d.", i/2+1))
		}
		lw.Write(n)
	}
	if result != "" {
		lw.Write(result)
	}
	lw.NewLine()
}

// GameRecord is the JSON form of a game in progress or finished.
type GameRecord struct {
	Moves  []string `json:"moves"`
	ToMove string   `json:"to_move"`
	Result string   `json:"result,omitempty"`
	Board  []string `json:"board"` // Rank 8 first, one letter per square
}

// NewGameRecord builds a record from a board snapshot and move list.
func NewGameRecord(board chess.Board, toMove chess.Colour, notations []string, result string) *GameRecord {
	rec := &GameRecord{
		Moves:  append([]string{}, notations...),
		ToMove: toMove.String(),
		Result: result,
		Board:  make([]string, chess.BoardSize),
	}
	for row := 0; row < chess.BoardSize; row++ {
		letters := make([]byte, chess.BoardSize)
		for col := range letters {
			letters[col] = board[row][col].Letter()
		}
		rec.Board[row] = string(letters)
	}
	return rec
}

// WriteJSON writes the record as indented JSON.
func (g *GameRecord) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}
