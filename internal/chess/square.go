package chess

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a (row, column) board coordinate. Row 0 is rank 8 and
// column 0 is file 'a'.
type Square struct {
	Row int
	Col int
}

// NoSquare is the "none" value, used for an absent en passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq is a shorthand constructor.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away. The result may be
// off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file letter 'a'..'h'.
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit '1'..'8'.
func (s Square) Rank() byte {
	return byte(RankBase + (BoardSize - 1 - s.Row))
}

// String returns the square in file+rank form, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts a file+rank string such as "e2" into a Square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Expected: "file and rank",
			Got:      quoteOrEmpty(text),
		}
	}
	file, rank := text[0], text[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < FileBase || file >= FileBase+BoardSize {
		return NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Column:   1,
			Expected: "file a-h",
			Got:      string(text[0]),
		}
	}
	if rank < RankBase || rank >= RankBase+BoardSize {
		return NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Column:   2,
			Expected: "rank 1-8",
			Got:      string(text[1]),
		}
	}
	return Square{
		Row: BoardSize - 1 - int(rank-RankBase),
		Col: int(file - FileBase),
	}, nil
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return "empty input"
	}
	return `"` + s + `"`
}
