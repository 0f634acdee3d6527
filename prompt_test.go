package cardmill_test

import (
	"testing"

	"github.com/fwojciec/cardmill"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("deterministic for fixed inputs", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		a := cardmill.BuildPrompt(doc, "focus on HBM", false)
		b := cardmill.BuildPrompt(doc, "focus on HBM", false)

		assert.Equal(t, a, b)
	})

	t.Run("contains article markdown", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		prompt := cardmill.BuildPrompt(doc, "", false)

		assert.Contains(t, prompt, "# The Memory Wall")
		assert.Contains(t, prompt, "DRAM scaling has stalled.")
		assert.Contains(t, prompt, "**Source:** "+doc.URL)
	})

	t.Run("includes steering text when provided", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		with := cardmill.BuildPrompt(doc, "only make cards about HBM stacking", false)
		without := cardmill.BuildPrompt(doc, "", false)

		assert.Contains(t, with, "only make cards about HBM stacking")
		assert.NotContains(t, without, "Additional instructions")
	})

	t.Run("extended mode adds reasoning instruction", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		extended := cardmill.BuildPrompt(doc, "", true)
		plain := cardmill.BuildPrompt(doc, "", false)

		assert.NotEqual(t, plain, extended)
		assert.Contains(t, extended, "step by step")
		assert.NotContains(t, plain, "step by step")
	})

	t.Run("requests the card format", func(t *testing.T) {
		t.Parallel()

		prompt := cardmill.BuildPrompt(testDocument(), "", false)

		assert.Contains(t, prompt, "### Card <X>")
		assert.Contains(t, prompt, "Front: <Prompt>")
		assert.Contains(t, prompt, "Back: <Answer>")
	})
}
