// Command cardmill turns articles and video transcripts into spaced
// repetition flashcards.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cardmill"
	"github.com/fwojciec/cardmill/fs"
	"github.com/fwojciec/cardmill/gemini"
	"github.com/fwojciec/cardmill/gofpdf"
	cmgoquery "github.com/fwojciec/cardmill/goquery"
	cmhttp "github.com/fwojciec/cardmill/http"
	"github.com/fwojciec/cardmill/htmltomarkdown"
	"github.com/fwojciec/cardmill/mochi"
	cmopenai "github.com/fwojciec/cardmill/openai"
	"github.com/fwojciec/cardmill/pipeline"
	"github.com/fwojciec/cardmill/readability"
	"github.com/fwojciec/cardmill/rod"
	"github.com/fwojciec/cardmill/sqlite"
	"github.com/fwojciec/cardmill/trafilatura"
	"github.com/fwojciec/cardmill/yaml"
	"github.com/fwojciec/cardmill/ytdlp"
	cmzerolog "github.com/fwojciec/cardmill/zerolog"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath locates the user config file. Set before calling Run().
	ConfigPath string

	// SQLite database backing the run ledger, when enabled.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cardmill"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cardmill --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	config, err := yaml.Load(m.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyGenFlags(config, &cli.Gen); err != nil {
		return err
	}
	deps.Config = config

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()

	if cmd == "gen" {
		if err := m.wireGen(ctx, deps, cli, logger, stderr); err != nil {
			return err
		}
		defer m.Close()
		if deps.Runner.Fetcher != nil {
			defer deps.Runner.Fetcher.Close()
		}
		if deps.Runner.BrowserFetcher != nil {
			defer deps.Runner.BrowserFetcher.Close()
		}
	}

	if cmd == "decks" {
		publisher, err := mochiClient()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set MOCHI_API_KEY to use Mochi commands")
			return err
		}
		deps.Publisher = publisher
	}

	if cmd == "history" {
		if config.HistoryPath == "" {
			return cardmill.Errorf(cardmill.EINVALID, "run history is disabled; set history_path in the config file")
		}
		m.DB = sqlite.NewDB(config.HistoryPath)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open run history at %q: %w", config.HistoryPath, err)
		}
		defer m.Close()
		deps.Runs = sqlite.NewRunService(m.DB)
	}

	return kongCtx.Run(deps)
}

// wireGen assembles the pipeline for the gen command.
func (m *Main) wireGen(ctx context.Context, deps *Dependencies, cli *CLI, logger zerolog.Logger, stderr io.Writer) error {
	config := deps.Config

	fetcher := cmzerolog.NewLoggingFetcher(cmhttp.NewFetcher(cmhttp.WithTimeout(cli.Gen.Timeout)), logger)

	converter := htmltomarkdown.NewConverter()
	var generic cardmill.Extractor
	if config.Fallback == "readability" {
		generic = readability.NewExtractor()
	} else {
		generic = trafilatura.NewExtractor(converter)
	}
	chain := cardmill.NewChain(generic,
		cmgoquery.NewSubstackExtractor(),
		cmgoquery.NewUberExtractor(),
		cmgoquery.NewJaneStreetExtractor(),
	)

	generator, err := newGenerator(ctx, config)
	if err != nil {
		return err
	}

	storeOpts := []fs.Option{}
	if cli.Gen.PDF {
		storeOpts = append(storeOpts, fs.WithPDFRenderer(gofpdf.NewRenderer()))
	}

	runner := &pipeline.Runner{
		Fetcher:   fetcher,
		Chain:     cmzerolog.NewLoggingChain(chain, logger),
		Store:     fs.NewStore(config.OutputDir, storeOpts...),
		Generator: generator,
		Images:    cmhttp.NewImageFetcher(),
		Limiter:   pipeline.NewHostLimiter(cli.Gen.Rate),
		Logger:    logger,
	}

	if config.BrowserFallback {
		browser, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		runner.BrowserFetcher = browser
	}

	if modelPath := os.Getenv("WHISPER_MODEL"); modelPath != "" {
		runner.Transcriber = ytdlp.NewTranscriber(modelPath)
	}

	if config.HistoryPath != "" {
		m.DB = sqlite.NewDB(config.HistoryPath)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open run history at %q: %w", config.HistoryPath, err)
		}
		runner.Runs = sqlite.NewRunService(m.DB)
	}

	if !cli.Gen.NoPublish {
		publisher, err := mochiClient()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set MOCHI_API_KEY, or pass --no-publish to skip publishing")
			return err
		}
		if config.DeckID == "" {
			return cardmill.Errorf(cardmill.EINVALID, "no deck configured; pass --deck or set deck_id in the config file")
		}
		runner.Publisher = publisher
		deps.Publisher = publisher
	}

	deps.Runner = runner
	return nil
}

// newGenerator builds the card generator selected by the config.
func newGenerator(ctx context.Context, config *cardmill.Config) (cardmill.Generator, error) {
	switch config.Provider {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, cardmill.Errorf(cardmill.EUNAUTHORIZED, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client, config.Model), nil
	default:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" && config.BaseURL == "" {
			return nil, cardmill.Errorf(cardmill.EUNAUTHORIZED, "OPENAI_API_KEY not set")
		}
		client := cmopenai.NewClient(apiKey, config.BaseURL)
		return cmopenai.NewGenerator(client, config.Model), nil
	}
}

// mochiClient builds a Mochi client from the environment.
func mochiClient() (*mochi.Client, error) {
	apiKey := os.Getenv("MOCHI_API_KEY")
	if apiKey == "" {
		return nil, cardmill.Errorf(cardmill.EUNAUTHORIZED, "MOCHI_API_KEY not set")
	}
	return mochi.NewClient(apiKey), nil
}

// applyGenFlags overlays gen command flags on top of the loaded config and
// re-validates the result, since flag values skip the config file checks.
func applyGenFlags(config *cardmill.Config, gen *GenCmd) error {
	if gen.Deck != "" {
		config.DeckID = gen.Deck
	}
	if gen.Out != "" {
		config.OutputDir = gen.Out
	}
	if gen.Provider != "" {
		config.Provider = gen.Provider
	}
	if gen.Model != "" {
		config.Model = gen.Model
	}
	if gen.BaseURL != "" {
		config.BaseURL = gen.BaseURL
	}
	if gen.Fallback != "" {
		config.Fallback = gen.Fallback
	}
	if gen.Browser {
		config.BrowserFallback = true
	}
	if gen.History != "" {
		config.HistoryPath = gen.History
	}
	return config.Validate()
}

func defaultConfigPath() string {
	if path := os.Getenv("CARDMILL_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cardmill.yaml"
	}
	return filepath.Join(home, ".cardmill", "config.yaml")
}
