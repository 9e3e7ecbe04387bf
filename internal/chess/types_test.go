package chess

import "testing"

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("String() = %q/%q", White.String(), Black.String())
	}
	if White.Code() != 'w' || Black.Code() != 'b' {
		t.Errorf("Code() = %c/%c; want w/b", White.Code(), Black.Code())
	}
}

func TestRowHelpers(t *testing.T) {
	tests := []struct {
		colour    Colour
		home      int
		pawnStart int
		promotion int
		offset    int
	}{
		{White, 7, 6, 0, -1},
		{Black, 0, 1, 7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			if got := HomeRow(tt.colour); got != tt.home {
				t.Errorf("HomeRow() = %d; want %d", got, tt.home)
			}
			if got := PawnStartRow(tt.colour); got != tt.pawnStart {
				t.Errorf("PawnStartRow() = %d; want %d", got, tt.pawnStart)
			}
			if got := PromotionRow(tt.colour); got != tt.promotion {
				t.Errorf("PromotionRow() = %d; want %d", got, tt.promotion)
			}
			if got := ColourOffset(tt.colour); got != tt.offset {
				t.Errorf("ColourOffset() = %d; want %d", got, tt.offset)
			}
		})
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for _, kind := range Kinds {
			p := MakeColouredPiece(colour, kind)
			if p == Empty {
				t.Fatalf("MakeColouredPiece(%v, %v) = Empty", colour, kind)
			}
			if p.Colour() != colour {
				t.Errorf("%v.Colour() = %v; want %v", p, p.Colour(), colour)
			}
			if p.Kind() != kind {
				t.Errorf("%v.Kind() = %v; want %v", p, p.Kind(), kind)
			}
			if !p.Is(colour, kind) || !p.IsColour(colour) || p.IsColour(colour.Opposite()) {
				t.Errorf("%v colour/kind predicates disagree", p)
			}
		}
	}
	if Empty.IsColour(White) || Empty.IsColour(Black) {
		t.Error("Empty reports a colour")
	}
	if Empty.Kind() != NoKind {
		t.Errorf("Empty.Kind() = %v; want NoKind", Empty.Kind())
	}
}

func TestPieceCode(t *testing.T) {
	tests := []struct {
		piece Piece
		code  string
	}{
		{W(Pawn), "wp"},
		{B(Pawn), "bp"},
		{W(Rook), "wR"},
		{B(Knight), "bN"},
		{W(Bishop), "wB"},
		{B(Queen), "bQ"},
		{W(King), "wK"},
		{Empty, "--"},
	}
	for _, tt := range tests {
		if got := tt.piece.Code(); got != tt.code {
			t.Errorf("Code() = %q; want %q", got, tt.code)
		}
	}
}

func TestPieceLetterRoundTrip(t *testing.T) {
	for _, c := range []byte("PNBRQKpnbrqk.") {
		p, ok := PieceFromLetter(c)
		if !ok {
			t.Fatalf("PieceFromLetter(%c) failed", c)
		}
		if got := p.Letter(); got != c {
			t.Errorf("PieceFromLetter(%c).Letter() = %c", c, got)
		}
	}
	if _, ok := PieceFromLetter('x'); ok {
		t.Error("PieceFromLetter('x') = ok; want failure")
	}
}

func TestKindString(t *testing.T) {
	if Queen.String() != "Queen" {
		t.Errorf("Queen.String() = %q", Queen.String())
	}
	if Kind(42).String() != "Unknown" {
		t.Errorf("Kind(42).String() = %q", Kind(42).String())
	}
	if Kind(42).Letter() != '?' {
		t.Errorf("Kind(42).Letter() = %c", Kind(42).Letter())
	}
}
