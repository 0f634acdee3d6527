package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/cardmill"
	"github.com/fwojciec/cardmill/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *cardmill.Config
	Runner    *pipeline.Runner
	Publisher cardmill.Publisher
	Runs      cardmill.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Gen     GenCmd     `cmd:"" help:"Generate flashcards from article or video URLs"`
	Decks   DecksCmd   `cmd:"" help:"List available flashcard decks"`
	History HistoryCmd `cmd:"" help:"Show recent pipeline runs"`
}

// GenCmd is the "gen" subcommand.
type GenCmd struct {
	URLs []string `arg:"" help:"Article or video URLs to process"`

	NoPublish bool   `help:"Generate and save cards without publishing"`
	Steering  string `short:"s" help:"Extra instructions for card generation"`
	Extended  bool   `short:"e" help:"Ask the model to reason step by step first"`
	Deck      string `short:"d" help:"Target deck ID (overrides config)"`
	Out       string `short:"o" help:"Output directory (overrides config)"`
	Provider  string `help:"Model backend: openai or gemini (overrides config)"`
	Model     string `short:"m" help:"Model name (overrides config)"`
	BaseURL   string `help:"OpenAI-compatible server URL (overrides config)"`
	Fallback  string `help:"Generic extractor: trafilatura or readability (overrides config)"`
	Browser   bool   `short:"b" help:"Retry 403 responses with a headless browser"`
	PDF       bool   `help:"Also render each article as a PDF"`
	History   string `help:"Run ledger database path (overrides config)"`

	Timeout time.Duration `default:"30s" help:"Per-request fetch timeout"`
	Rate    float64       `default:"1.0" help:"Maximum requests per second per host"`
}

// DecksCmd is the "decks" subcommand.
type DecksCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Number of runs to show"`
}
