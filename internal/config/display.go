package config

// DisplayConfig holds settings for drawing boards in a terminal.
type DisplayConfig struct {
	// Colour paints squares and pieces with ANSI colours
	Colour bool `json:"colour"`

	// Unicode draws pieces with chess glyphs instead of letters
	Unicode bool `json:"unicode"`

	// HighlightLastMove marks the squares of the previous ply
	HighlightLastMove bool `json:"highlight_last_move"`
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:            true,
		HighlightLastMove: true,
	}
}
