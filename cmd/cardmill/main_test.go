package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cardmill"
	"github.com/fwojciec/cardmill/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := NewMain()
		m.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), nil, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "cardmill")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		t.Parallel()

		m := NewMain()
		m.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Generate flashcards")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		m := NewMain()
		m.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"bogus"}, &stdout, &stderr)

		require.Error(t, err)
	})

	t.Run("history without ledger configured errors", func(t *testing.T) {
		t.Parallel()

		m := NewMain()
		m.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"history"}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "history_path")
	})
}

func TestGenCmd_FetchFlags(t *testing.T) {
	t.Parallel()

	t.Run("explicit values", func(t *testing.T) {
		t.Parallel()

		cli := &CLI{}
		parser, err := kong.New(cli)
		require.NoError(t, err)

		_, err = parser.Parse([]string{"gen", "--timeout", "5s", "--rate", "0.5", "https://example.com/post"})
		require.NoError(t, err)

		assert.Equal(t, 5*time.Second, cli.Gen.Timeout)
		assert.Equal(t, 0.5, cli.Gen.Rate)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cli := &CLI{}
		parser, err := kong.New(cli)
		require.NoError(t, err)

		_, err = parser.Parse([]string{"gen", "https://example.com/post"})
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cli.Gen.Timeout)
		assert.Equal(t, 1.0, cli.Gen.Rate)
	})
}

func TestApplyGenFlags(t *testing.T) {
	t.Parallel()

	config := yaml.DefaultConfig()
	require.NoError(t, applyGenFlags(config, &GenCmd{
		Deck:     "deck999",
		Provider: "gemini",
		Browser:  true,
	}))

	assert.Equal(t, "deck999", config.DeckID)
	assert.Equal(t, "gemini", config.Provider)
	assert.True(t, config.BrowserFallback)
	// Flags left empty keep config values.
	assert.Equal(t, "output", config.OutputDir)
	assert.Equal(t, "trafilatura", config.Fallback)
}

func TestApplyGenFlags_RejectsUnknownValues(t *testing.T) {
	t.Parallel()

	t.Run("provider", func(t *testing.T) {
		t.Parallel()

		err := applyGenFlags(yaml.DefaultConfig(), &GenCmd{Provider: "gemini2"})
		require.Error(t, err)
		assert.Equal(t, cardmill.EINVALID, cardmill.ErrorCode(err))
		assert.Contains(t, cardmill.ErrorMessage(err), "gemini2")
	})

	t.Run("fallback", func(t *testing.T) {
		t.Parallel()

		err := applyGenFlags(yaml.DefaultConfig(), &GenCmd{Fallback: "boilerpipe"})
		require.Error(t, err)
		assert.Equal(t, cardmill.EINVALID, cardmill.ErrorCode(err))
	})
}
