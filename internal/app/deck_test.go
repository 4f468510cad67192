package app_test

import (
	"context"
	"testing"

	"github.com/csebille-ai/opanoma-prod/internal/app"
	"github.com/csebille-ai/opanoma-prod/internal/domain"
)

type mockDeckStore struct {
	deck domain.Deck
	err  error
}

func (m *mockDeckStore) GetDeck(_ context.Context, _ string) (domain.Deck, error) {
	return m.deck, m.err
}

type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

func testDeck() domain.Deck {
	cards := make([]domain.Card, 22)
	for i := 0; i < 22; i++ {
		cards[i] = domain.Card{
			ID:       "card_" + string(rune('a'+i)),
			Name:     "Card " + string(rune('A'+i)),
			Keywords: []string{"kw1"},
		}
	}
	return domain.Deck{ID: "major_arcana", Name: "Major Arcana", Cards: cards}
}

func TestDraw_Success(t *testing.T) {
	svc := app.NewDeckService(&mockDeckStore{deck: testDeck()}, fixedRNG{val: 0})

	spread, err := svc.Draw(context.Background(), "major_arcana", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spread.Cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(spread.Cards))
	}
	if spread.DeckID != "major_arcana" {
		t.Errorf("unexpected deck: %s", spread.DeckID)
	}
}

func TestDraw_DeckNotFound(t *testing.T) {
	svc := app.NewDeckService(&mockDeckStore{err: domain.ErrDeckNotFound}, fixedRNG{val: 0})

	_, err := svc.Draw(context.Background(), "nonexistent", 3)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDraw_InvalidN(t *testing.T) {
	svc := app.NewDeckService(&mockDeckStore{deck: testDeck()}, fixedRNG{val: 0})

	_, err := svc.Draw(context.Background(), "major_arcana", 0)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
