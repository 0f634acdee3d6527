package cardmill

import (
	"context"
	"regexp"
	"strings"
)

// CardDelimiter separates cards in model output and sides within published
// card content.
const CardDelimiter = "---"

// CardCandidate is a proposed question/answer pair awaiting publication.
// Ephemeral: it exists only for the duration of one pipeline run unless
// written to the run ledger.
type CardCandidate struct {
	Front string
	Back  string
	Tags  []string
}

// Validate returns an error if the candidate is missing a side.
func (c *CardCandidate) Validate() error {
	if strings.TrimSpace(c.Front) == "" {
		return Errorf(EINVALID, "card front required")
	}
	if strings.TrimSpace(c.Back) == "" {
		return Errorf(EINVALID, "card back required")
	}
	return nil
}

// Generator invokes a language model and parses its output into card
// candidates. A failed model call or unparsable output surfaces as an
// error; there is no partial output and no retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]CardCandidate, error)
}

// thinkRe strips chain-of-thought blocks some local models emit before the
// cards themselves.
var thinkRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// ParseCards parses model output in the card format requested by the
// prompt: "### Card <n>" / "Front: ..." / "Back: ..." segments separated by
// the card delimiter. Malformed segments are skipped; an output with no
// parsable card at all is an EINVALID error.
func ParseCards(output string) ([]CardCandidate, error) {
	output = thinkRe.ReplaceAllString(output, "")

	var cards []CardCandidate
	for _, segment := range strings.Split(output, "\n"+CardDelimiter) {
		card := parseCard(segment)
		if card == nil {
			continue
		}
		cards = append(cards, *card)
	}

	if len(cards) == 0 {
		return nil, Errorf(EINVALID, "no cards found in model output")
	}
	return cards, nil
}

// parseCard extracts one Front/Back pair from a card segment.
// Returns nil when either side is missing. Multi-line backs are supported:
// lines after "Back:" belong to the back until the segment ends.
func parseCard(segment string) *CardCandidate {
	var front, back string
	var inBack bool

	for _, line := range strings.Split(segment, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Front:"):
			front = strings.TrimSpace(strings.TrimPrefix(trimmed, "Front:"))
			inBack = false
		case strings.HasPrefix(trimmed, "Back:"):
			back = strings.TrimSpace(strings.TrimPrefix(trimmed, "Back:"))
			inBack = true
		case inBack && trimmed != "" && !strings.HasPrefix(trimmed, "###"):
			back += "\n" + trimmed
		}
	}

	card := &CardCandidate{Front: front, Back: strings.TrimSpace(back)}
	if card.Validate() != nil {
		return nil
	}
	return card
}
