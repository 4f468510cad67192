package decks

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/csebille-ai/opanoma-prod/internal/domain"
)

//go:embed data/*.json
var deckFS embed.FS

// DefaultDeckID is served when a caller does not name a deck.
const DefaultDeckID = "major_arcana"

type deckFile struct {
	name string
	path string
}

var registry = map[string]deckFile{
	DefaultDeckID: {name: "Tarot de Marseille, arcanes majeurs", path: "data/major_arcana.json"},
}

// EmbeddedStore loads decks from embedded JSON files on first use.
type EmbeddedStore struct {
	once  sync.Once
	decks map[string]domain.Deck
	err   error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	s.decks = make(map[string]domain.Deck, len(registry))
	for id, f := range registry {
		raw, err := deckFS.ReadFile(f.path)
		if err != nil {
			s.err = fmt.Errorf("read embedded deck %s: %w", id, err)
			return
		}
		var cards []domain.Card
		if err := json.Unmarshal(raw, &cards); err != nil {
			s.err = fmt.Errorf("parse embedded deck %s: %w", id, err)
			return
		}
		s.decks[id] = domain.Deck{ID: id, Name: f.name, Cards: cards}
	}
}

func (s *EmbeddedStore) GetDeck(_ context.Context, deckID string) (domain.Deck, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Deck{}, s.err
	}
	deck, ok := s.decks[deckID]
	if !ok {
		return domain.Deck{}, fmt.Errorf("%w: %s", domain.ErrDeckNotFound, deckID)
	}
	return deck, nil
}
