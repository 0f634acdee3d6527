package cardmill

// Config holds user defaults loaded from the optional config file.
// Flags override config values; secrets come from the environment only.
type Config struct {
	// DeckID is the default Mochi deck cards are filed into.
	DeckID string `yaml:"deck_id"`

	// OutputDir is where per-article output directories are created.
	OutputDir string `yaml:"output_dir"`

	// Provider selects the model backend: "openai" or "gemini".
	Provider string `yaml:"provider"`

	// Model names the model to request from the provider.
	Model string `yaml:"model"`

	// BaseURL points the openai provider at an OpenAI-compatible server,
	// e.g. a local llama.cpp or LM Studio instance.
	BaseURL string `yaml:"base_url"`

	// Fallback selects the generic extractor: "trafilatura" or
	// "readability".
	Fallback string `yaml:"fallback"`

	// BrowserFallback enables the one-shot headless-browser retry when a
	// site answers 403.
	BrowserFallback bool `yaml:"browser_fallback"`

	// HistoryPath is the run-ledger database path. Empty disables the
	// ledger.
	HistoryPath string `yaml:"history_path"`
}

// Validate returns an error if any enumerated field holds an unknown value.
func (c *Config) Validate() error {
	if c.Provider != "openai" && c.Provider != "gemini" {
		return Errorf(EINVALID, "unknown provider %q", c.Provider)
	}
	if c.Fallback != "trafilatura" && c.Fallback != "readability" {
		return Errorf(EINVALID, "unknown fallback extractor %q", c.Fallback)
	}
	return nil
}
