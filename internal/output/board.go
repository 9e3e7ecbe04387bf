// Package output renders boards, move lists and game records for terminals.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// unicodeGlyphs maps kinds to chess symbols, white first then black.
var unicodeGlyphs = map[chess.Kind][2]rune{
	chess.King:   {'♔', '♚'},
	chess.Queen:  {'♕', '♛'},
	chess.Rook:   {'♖', '♜'},
	chess.Bishop: {'♗', '♝'},
	chess.Knight: {'♘', '♞'},
	chess.Pawn:   {'♙', '♟'},
}

// BoardRenderer draws a board snapshot with rank and file labels.
type BoardRenderer struct {
	display config.DisplayConfig

	lightSquare *color.Color
	darkSquare  *color.Color
	lightMarked *color.Color
	darkMarked  *color.Color
	label       *color.Color
	result      *color.Color
	check       *color.Color
}

// NewBoardRenderer creates a renderer for the given display settings.
// Colour output also depends on fatih/color's terminal detection.
func NewBoardRenderer(display config.DisplayConfig) *BoardRenderer {
	r := &BoardRenderer{
		display:     display,
		lightSquare: color.New(color.BgHiWhite, color.FgBlack),
		darkSquare:  color.New(color.BgGreen, color.FgBlack),
		lightMarked: color.New(color.BgHiYellow, color.FgBlack),
		darkMarked:  color.New(color.BgYellow, color.FgBlack),
		label:       color.New(color.Faint),
		result:      color.New(color.FgRed, color.Bold),
		check:       color.New(color.FgYellow, color.Bold),
	}
	if !display.Colour {
		for _, c := range r.colours() {
			c.DisableColor()
		}
	}
	return r
}

func (r *BoardRenderer) colours() []*color.Color {
	return []*color.Color{r.lightSquare, r.darkSquare, r.lightMarked, r.darkMarked, r.label, r.result, r.check}
}

// ForceColour turns colour on regardless of terminal detection.
func (r *BoardRenderer) ForceColour() {
	r.display.Colour = true
	for _, c := range r.colours() {
		c.EnableColor()
	}
}

// Render writes the board, rank 8 at the top. last, when non-nil and
// highlighting is on, marks the squares the previous ply used.
func (r *BoardRenderer) Render(w io.Writer, board chess.Board, last *chess.Move) error {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteString(r.label.Sprintf("%c ", chess.RankBase+byte(chess.BoardSize-1-row)))
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			sb.WriteString(r.square(sq, board.At(sq), last))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for col := 0; col < chess.BoardSize; col++ {
		if r.display.Colour {
			sb.WriteString(r.label.Sprintf(" %c ", chess.FileBase+byte(col)))
		} else {
			sb.WriteString(fmt.Sprintf("%c ", chess.FileBase+byte(col)))
		}
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// square formats one cell: three columns on a coloured background, or the
// glyph and a separator in plain text, where '*' marks the last move.
func (r *BoardRenderer) square(sq chess.Square, piece chess.Piece, last *chess.Move) string {
	glyph := r.glyph(piece)
	marked := r.display.HighlightLastMove && last != nil && (sq == last.From() || sq == last.To())
	if !r.display.Colour {
		if marked {
			return glyph + "*"
		}
		return glyph + " "
	}

	light := (sq.Row+sq.Col)%2 == 0
	var c *color.Color
	switch {
	case light && marked:
		c = r.lightMarked
	case light:
		c = r.lightSquare
	case marked:
		c = r.darkMarked
	default:
		c = r.darkSquare
	}
	if piece.IsEmpty() {
		glyph = " "
	}
	return c.Sprint(" " + glyph + " ")
}

func (r *BoardRenderer) glyph(piece chess.Piece) string {
	if !r.display.Unicode {
		return string(piece.Letter())
	}
	if piece.IsEmpty() {
		return "·"
	}
	glyphs := unicodeGlyphs[piece.Kind()]
	if piece.Colour() == chess.White {
		return string(glyphs[0])
	}
	return string(glyphs[1])
}

// Status writes whose turn it is, or the result once the game is over.
func (r *BoardRenderer) Status(w io.Writer, toMove chess.Colour, inCheck bool, result string) error {
	var line string
	switch {
	case result != "":
		line = r.result.Sprint(result)
	case inCheck:
		line = r.check.Sprintf("%s to move (check)", toMove)
	default:
		line = fmt.Sprintf("%s to move", toMove)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
