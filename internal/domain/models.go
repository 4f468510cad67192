package domain

import "encoding/json"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// DrawRequest is a reading request: the cards the querent picked, the
// theme they chose and an optional question.
type DrawRequest struct {
	Cards    []string
	Theme    string
	Question string
}

// Validate reports ErrNoCards when the draw is empty.
func (d DrawRequest) Validate() error {
	if len(d.Cards) == 0 {
		return ErrNoCards
	}
	return nil
}

// InterpretationError is the failure side of an InterpretationResult.
// UpstreamStatus is zero when the completion API was never reached.
type InterpretationError struct {
	Message        string
	UpstreamStatus int
}

// InterpretationResult is either a Text or an Err, never both.
type InterpretationResult struct {
	Text string
	Err  *InterpretationError
}

func (r InterpretationResult) OK() bool { return r.Err == nil }

// SubscriptionResult is the outcome of forwarding a signup to the mailing
// list provider. On failure Payload holds the provider's error body as-is.
type SubscriptionResult struct {
	Success        bool
	Message        string
	Payload        json.RawMessage
	ProviderStatus int
}

// Card represents a single tarot card in a deck.
type Card struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// DrawnCard is a card that has been drawn as part of a spread.
type DrawnCard struct {
	Card
	Position int `json:"position"`
}

// Deck is a collection of tarot cards.
type Deck struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// Spread is the result of drawing cards from a deck.
type Spread struct {
	DeckID string
	Cards  []DrawnCard
}

// Names returns the card names in position order.
func (s Spread) Names() []string {
	out := make([]string, len(s.Cards))
	for i, c := range s.Cards {
		out[i] = c.Name
	}
	return out
}
