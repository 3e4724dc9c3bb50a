// chessrules replays coordinate moves through the rules engine, lists legal
// moves, counts move trees and asks a move-suggestion service for moves.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lgbarn/chessrules-go/internal/advisor"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("command failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.Log.File = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// run carries out the requested commands in order: replay, suggestion,
// square listing, perft, then position output.
func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	out := cfg.OutputFile
	game := session.New(session.WithLogger(logger), session.WithEngineOptions(cfg.Advisor.Options))

	if err := replayMoves(game, *movesList); err != nil {
		return err
	}

	if *suggest {
		move, err := game.RequestSuggestion(ctx, newSuggester(cfg, logger))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "suggested: %s\n", notation.Encode(move))
	}

	if *square != "" {
		if err := listMoves(out, game, *square); err != nil {
			return err
		}
	}

	if cfg.Perft.Depth > 0 {
		if err := runPerft(out, game, cfg); err != nil {
			return err
		}
	}

	if *showBoard {
		fmt.Fprint(out, game.Board().String())
	}
	if *showFEN {
		fmt.Fprintln(out, game.FEN())
	}
	if v := game.Verdict(); v.IsOver() {
		fmt.Fprintf(out, "%s: %s to move\n", v, game.Turn())
	}
	return nil
}

// replayMoves plays each whitespace-separated coordinate move.
func replayMoves(game *session.Game, moves string) error {
	for i, text := range strings.Fields(moves) {
		if _, err := game.PlayCoordinate(text); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, text, err)
		}
	}
	return nil
}

// listMoves prints the legal moves of the piece on the named square.
func listMoves(out io.Writer, game *session.Game, name string) error {
	pos, err := notation.ParseSquare(name)
	if err != nil {
		return err
	}
	moves, err := game.LegalMoves(pos)
	if err != nil {
		return err
	}
	encoded := make([]string, len(moves))
	for i, m := range moves {
		encoded[i] = notation.Encode(m)
	}
	fmt.Fprintf(out, "%s: %s\n", name, strings.Join(encoded, " "))
	return nil
}

// runPerft prints the node count of the current position.
func runPerft(out io.Writer, game *session.Game, cfg *config.Config) error {
	total, divide, err := engine.ParallelPerft(game.Board(), game.Turn(), game.History(), cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return err
	}
	if *perftDivide {
		for _, d := range divide {
			fmt.Fprintf(out, "%s: %d\n", notation.Encode(d.Move), d.Nodes)
		}
	}
	fmt.Fprintf(out, "perft(%d) = %d\n", cfg.Perft.Depth, total)
	return nil
}

// newSuggester builds the HTTP advisor, backed by the local suggester
// when offline play is allowed.
func newSuggester(cfg *config.Config, logger *log.Logger) advisor.Suggester {
	remote := advisor.NewHTTPClient(cfg.Advisor.URL,
		advisor.WithTimeout(cfg.Advisor.Timeout),
		advisor.WithLogger(logger),
	)
	if !cfg.Advisor.Offline {
		return remote
	}
	return &advisor.Fallback{
		Primary:   remote,
		Secondary: &advisor.Local{Logger: logger},
		Logger:    logger,
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Checks chess moves against the rules and asks an engine service for moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPresets (-preset):\n")
	for _, id := range config.PresetOrder {
		p := config.DefaultPresets()[id]
		fmt.Fprintf(os.Stderr, "  %-9s %s\n", id, p.Description)
	}
}
