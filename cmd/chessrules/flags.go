// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Perft
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to depth N from the initial position and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the node count below each root move")
	workers    = flag.Int("workers", 0, "Number of perft worker goroutines (0 = one per CPU core)")

	// Display
	noColour    = flag.Bool("nocolor", false, "Disable ANSI colours")
	unicode     = flag.Bool("unicode", false, "Draw pieces with Unicode chess symbols")
	noHighlight = flag.Bool("nohighlight", false, "Don't highlight the last move")

	// Configuration file
	configFile  = flag.String("config", "", "Read settings from this JSON file instead of the XDG config path")
	writeConfig = flag.Bool("writeconfig", false, "Save the effective settings to the XDG config path and exit")

	// Logging
	verbosity = flag.Int("v", -1, "Log level: 0 silent, 1 results, 2 every ply (default from config)")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("a", "", "Append diagnostics to log file")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides configuration values with the flags that were given.
// Flags left at their defaults keep whatever the config file set.
func applyFlags(cfg *config.Config) {
	applyDisplayFlags(cfg)
	applyPerftFlags(cfg)

	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	if *noColour {
		cfg.Display.Colour = false
	}
	if *unicode {
		cfg.Display.Unicode = true
	}
	if *noHighlight {
		cfg.Display.HighlightLastMove = false
	}
}

// applyPerftFlags configures the perft worker pool.
func applyPerftFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}
