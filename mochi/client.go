// Package mochi implements publishing cards to the Mochi flashcard service.
package mochi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/cardmill"
)

// DefaultBaseURL is the production Mochi API endpoint.
const DefaultBaseURL = "https://app.mochi.cards/api"

// DefaultTimeout bounds each API call.
const DefaultTimeout = 30 * time.Second

// Ensure Client implements cardmill.Publisher at compile time.
var _ cardmill.Publisher = (*Client)(nil)

// Client talks to the Mochi HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	auth       string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client authenticating with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		// Mochi uses basic auth with the API key as username and no password.
		auth: "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// cardPayload is the wire format for card creation.
type cardPayload struct {
	Content       string `json:"content"`
	DeckID        string `json:"deck-id"`
	ReviewReverse bool   `json:"review-reverse?"`
	Archived      bool   `json:"archived?"`
}

// deckDoc is the wire format of a deck in list responses.
type deckDoc struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Archived bool   `json:"archived?"`
}

// CreateCard publishes a single card to the given deck. The source URL is
// appended to the card so every card links back to its article.
func (c *Client) CreateCard(ctx context.Context, card cardmill.CardCandidate, deckID, sourceURL string) error {
	if err := card.Validate(); err != nil {
		return err
	}
	if deckID == "" {
		return cardmill.Errorf(cardmill.EINVALID, "deck ID required")
	}

	payload := cardPayload{
		Content: cardContent(card, sourceURL),
		DeckID:  deckID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return cardmill.Errorf(cardmill.EINTERNAL, "marshal card: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/cards/", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return cardmill.Errorf(cardmill.EUNAVAILABLE, "create card: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError("create card", resp)
	}
	return nil
}

// ListDecks returns the account's decks, skipping archived ones.
func (c *Client) ListDecks(ctx context.Context) ([]cardmill.Deck, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/decks/", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, cardmill.Errorf(cardmill.EUNAVAILABLE, "list decks: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError("list decks", resp)
	}

	var result struct {
		Docs []deckDoc `json:"docs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, cardmill.Errorf(cardmill.EINTERNAL, "decode decks: %s", err)
	}

	var decks []cardmill.Deck
	for _, d := range result.Docs {
		if d.Archived {
			continue
		}
		decks = append(decks, cardmill.Deck{ID: d.ID, Name: d.Name})
	}
	return decks, nil
}

// cardContent renders a card in Mochi's markdown format. The front and back
// are separated by the card delimiter and the source URL closes the card.
func cardContent(card cardmill.CardCandidate, sourceURL string) string {
	var sb strings.Builder
	sb.WriteString(card.Front)
	sb.WriteString("\n")
	sb.WriteString(cardmill.CardDelimiter)
	sb.WriteString("\n")
	sb.WriteString(card.Back)
	if sourceURL != "" {
		sb.WriteString("\n")
		sb.WriteString(cardmill.CardDelimiter)
		sb.WriteString("\n")
		sb.WriteString(sourceURL)
	}
	return sb.String()
}

// apiError converts a non-2xx response into an application error.
func apiError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = resp.Status
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return cardmill.Errorf(cardmill.EUNAUTHORIZED, "%s: %s", op, msg)
	case resp.StatusCode == http.StatusNotFound:
		return cardmill.Errorf(cardmill.ENOTFOUND, "%s: %s", op, msg)
	case resp.StatusCode >= 500:
		return cardmill.Errorf(cardmill.EUNAVAILABLE, "%s: %s", op, msg)
	default:
		return cardmill.Errorf(cardmill.EINVALID, "%s: %s", op, msg)
	}
}
