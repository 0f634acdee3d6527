// Package yaml loads user configuration from a YAML file.
package yaml

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/cardmill"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *cardmill.Config {
	return &cardmill.Config{
		OutputDir: "output",
		Provider:  "openai",
		Fallback:  "trafilatura",
	}
}

// Load reads the config file at path. A missing file is not an error and
// returns the defaults, so the CLI works without any setup.
func Load(path string) (*cardmill.Config, error) {
	config := DefaultConfig()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, cardmill.Errorf(cardmill.EINVALID, "parse config %s: %s", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
