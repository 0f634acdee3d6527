package cardmill_test

import (
	"testing"

	"github.com/fwojciec/cardmill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	t.Parallel()

	t.Run("parses well-formed output", func(t *testing.T) {
		t.Parallel()

		output := `### Card 1
Front: What limits DRAM scaling?
Back: Capacitor leakage at small feature sizes.
---
### Card 2
Front: What does HBM stand for?
Back: High Bandwidth Memory.
---`

		cards, err := cardmill.ParseCards(output)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "What limits DRAM scaling?", cards[0].Front)
		assert.Equal(t, "Capacitor leakage at small feature sizes.", cards[0].Back)
		assert.Equal(t, "What does HBM stand for?", cards[1].Front)
	})

	t.Run("skips malformed segments", func(t *testing.T) {
		t.Parallel()

		output := `### Card 1
Front: Complete card?
Back: Yes.
---
### Card 2
Front: Missing back
---
Some trailing commentary from the model.`

		cards, err := cardmill.ParseCards(output)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "Complete card?", cards[0].Front)
	})

	t.Run("strips think blocks", func(t *testing.T) {
		t.Parallel()

		output := `<think>
The article is about DRAM. Front: this should not leak.
</think>
### Card 1
Front: Real question?
Back: Real answer.
---`

		cards, err := cardmill.ParseCards(output)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "Real question?", cards[0].Front)
	})

	t.Run("supports multi-line backs", func(t *testing.T) {
		t.Parallel()

		output := `### Card 1
Front: Name the three HBM generations discussed.
Back: HBM2.
HBM2E.
HBM3.
---`

		cards, err := cardmill.ParseCards(output)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "HBM2.\nHBM2E.\nHBM3.", cards[0].Back)
	})

	t.Run("no cards is an error", func(t *testing.T) {
		t.Parallel()

		_, err := cardmill.ParseCards("The article was too short to make cards from.")
		require.Error(t, err)
		assert.Equal(t, cardmill.EINVALID, cardmill.ErrorCode(err))
	})
}

func TestCardCandidate_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		c := cardmill.CardCandidate{Front: "Q", Back: "A"}
		assert.NoError(t, c.Validate())
	})

	t.Run("missing front", func(t *testing.T) {
		t.Parallel()
		c := cardmill.CardCandidate{Back: "A"}
		assert.Equal(t, cardmill.EINVALID, cardmill.ErrorCode(c.Validate()))
	})

	t.Run("missing back", func(t *testing.T) {
		t.Parallel()
		c := cardmill.CardCandidate{Front: "Q"}
		assert.Equal(t, cardmill.EINVALID, cardmill.ErrorCode(c.Validate()))
	})
}
