package domain

// MaxDraw is the largest spread GenerateSpread accepts.
const MaxDraw = 10

// GenerateSpread draws n unique cards from deck using the provided RNG.
// Positions are 1-based.
func GenerateSpread(deck Deck, n int, rng RNG) (Spread, error) {
	if n < 1 || n > MaxDraw {
		return Spread{}, ErrInvalidN
	}
	if n > len(deck.Cards) {
		return Spread{}, ErrNExceedsDeck
	}

	// Partial Fisher-Yates: only the last n slots are settled.
	indices := make([]int, len(deck.Cards))
	for i := range indices {
		indices[i] = i
	}
	last := len(indices) - 1
	for i := last; i > last-n && i > 0; i-- {
		j := rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	cards := make([]DrawnCard, n)
	for i := 0; i < n; i++ {
		cards[i] = DrawnCard{
			Card:     deck.Cards[indices[last-i]],
			Position: i + 1,
		}
	}

	return Spread{DeckID: deck.ID, Cards: cards}, nil
}
