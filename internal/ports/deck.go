package ports

import (
	"context"

	"github.com/csebille-ai/opanoma-prod/internal/domain"
)

// DeckStore provides access to the embedded tarot decks.
type DeckStore interface {
	GetDeck(ctx context.Context, deckID string) (domain.Deck, error)
}
