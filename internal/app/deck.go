package app

import (
	"context"
	"fmt"

	"github.com/csebille-ai/opanoma-prod/internal/domain"
	"github.com/csebille-ai/opanoma-prod/internal/ports"
)

// DeckService serves decks and draws random spreads from them.
type DeckService struct {
	store ports.DeckStore
	rng   domain.RNG
}

func NewDeckService(store ports.DeckStore, rng domain.RNG) *DeckService {
	return &DeckService{store: store, rng: rng}
}

func (s *DeckService) Deck(ctx context.Context, deckID string) (domain.Deck, error) {
	deck, err := s.store.GetDeck(ctx, deckID)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("get deck: %w", err)
	}
	return deck, nil
}

// Draw picks n unique cards from the deck.
func (s *DeckService) Draw(ctx context.Context, deckID string, n int) (domain.Spread, error) {
	deck, err := s.Deck(ctx, deckID)
	if err != nil {
		return domain.Spread{}, err
	}
	spread, err := domain.GenerateSpread(deck, n, s.rng)
	if err != nil {
		return domain.Spread{}, fmt.Errorf("generate spread: %w", err)
	}
	return spread, nil
}
