package cardmill

import (
	"strings"
)

// prePrompt is the retrieval-practice instruction preamble.
// Guidelines adapted from https://andymatuschak.org/prompts/.
const prePrompt = `I want you to create a set of 10 spaced repetition cards based on an article or text so that I can use these cards to retain and remember important things from the article for longer.
These cards have two sides: a front and a back. The front is a retrieval practice prompt and the back is the answer to that prompt.
Each card should be structured as: line 1 = ### Card <X>, line 2 = Front: <Prompt>, line 3 = Back: <Answer>
Make sure to include a delimiter like ` + CardDelimiter + ` after each card.

Here are a few guidelines for writing good retrieval practice prompts:
1. Retrieval practice prompts should be focused. A question or answer involving too much detail will dull your concentration and stimulate incomplete retrievals. It is usually best to focus on one detail at a time.
2. Retrieval practice prompts should be precise about what they are asking for. Vague questions elicit vague answers.
3. Retrieval practice prompts should produce consistent answers, lighting the same bulbs each time you perform the task, to avoid retrieval-induced forgetting.
4. Retrieval practice prompts should be tractable. Strive for prompts you can almost always answer correctly, breaking tasks down or adding cues where needed.
5. Retrieval practice prompts should be effortful. The prompt must actually involve retrieving the answer from memory; do not give the answer away.
6. ABOVE ALL, FOCUS ON GENERATING CARDS FOR REMEMBERING THE TECHNICAL DETAILS OF THE ARTICLE. NO QUESTIONS ABOUT THE AUTHORS, SOCIAL MEDIA, OR ANY OTHER IRRELEVANT CONTENT.

You should only use the article text to come up with good retrieval practice prompts and answers to those prompts.`

// extendedInstruction is appended when extended reasoning mode is enabled.
const extendedInstruction = `Before writing the cards, reason carefully step by step about which facts in the article are most worth remembering, then write the cards. Only the cards themselves should appear in the final output format described above.`

// BuildPrompt turns a document plus optional steering text into a single
// model prompt. Pure: the same document, steering text, and extended flag
// always produce the same prompt.
func BuildPrompt(doc *Document, steering string, extended bool) string {
	var sb strings.Builder
	sb.WriteString(prePrompt)
	sb.WriteString("\n")

	if extended {
		sb.WriteString("\n")
		sb.WriteString(extendedInstruction)
		sb.WriteString("\n")
	}

	if s := strings.TrimSpace(steering); s != "" {
		sb.WriteString("\nAdditional instructions from the reader:\n")
		sb.WriteString(s)
		sb.WriteString("\n")
	}

	sb.WriteString("\nHere is the article in markdown format:\n\n")
	sb.WriteString(FormatMarkdown(doc))

	return sb.String()
}
