// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/advisor"
	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game options
	movesList = flag.String("moves", "", "Space-separated coordinate moves to replay from the start (e.g. \"e2e4 e7e5\")")
	square    = flag.String("square", "", "List the legal moves of the piece on this square (e.g. e2)")
	showFEN   = flag.Bool("fen", false, "Print the final position as FEN")
	showBoard = flag.Bool("board", false, "Print the final position as a diagram")

	// Perft
	perftDepth   = flag.Int("perft", 0, "Count leaf nodes of the legal move tree to this depth")
	perftWorkers = flag.Int("workers", 0, "Parallel perft workers (0 = one per CPU)")
	perftDivide  = flag.Bool("divide", false, "Print per-move perft counts")

	// Advisor
	suggest     = flag.Bool("suggest", false, "Ask the advisor for a move and play it")
	advisorURL  = flag.String("advisor", "", "Engine service URL (default http://localhost:3001)")
	timeout     = flag.Duration("timeout", 0, "Advisor request timeout (default 10s)")
	preset      = flag.String("preset", "", "Difficulty preset: learner, beginner, club, expert, master")
	skillLevel  = flag.Int("skill", -1, "Override the preset's skill level (0-20)")
	searchDepth = flag.Int("depth", 0, "Override the preset's search depth")
	noOffline   = flag.Bool("online", false, "Fail instead of falling back to the local suggester")

	// Logging and output
	logLevel   = flag.String("loglevel", "", "Log level: debug, info, warn, error")
	logFormat  = flag.String("logformat", "", "Log format: text, json, logfmt")
	logFile    = flag.String("l", "", "Write log to file")
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyLogFlags(cfg)
	applyPerftFlags(cfg)
	return applyAdvisorFlags(cfg)
}

// applyLogFlags configures logging settings.
func applyLogFlags(cfg *config.Config) {
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	if *perftWorkers > 0 {
		cfg.Perft.Workers = *perftWorkers
	}
}

// applyAdvisorFlags configures the advisor. A preset is applied before
// the individual overrides, which switch the selection to custom.
func applyAdvisorFlags(cfg *config.Config) error {
	if *advisorURL != "" {
		cfg.Advisor.URL = *advisorURL
	}
	if *timeout > 0 {
		cfg.Advisor.Timeout = *timeout
	}
	if *preset != "" {
		if err := cfg.SelectPreset(*preset); err != nil {
			return err
		}
	}
	if *skillLevel >= 0 {
		cfg.UpdateOptions(func(o *advisor.EngineOptions) { o.SkillLevel = *skillLevel })
	}
	if *searchDepth > 0 {
		cfg.UpdateOptions(func(o *advisor.EngineOptions) { o.Depth = *searchDepth })
	}
	if *noOffline {
		cfg.Advisor.Offline = false
	}
	return nil
}
