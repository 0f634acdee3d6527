// Package cardmill turns articles into spaced-repetition flashcards.
// It fetches a URL, extracts the readable content into a normalized
// Document, prompts a language model to produce card candidates, and
// optionally publishes them to the Mochi flashcard service.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, mochi/, openai/).
package cardmill
