package http

import (
	"encoding/json"

	"github.com/csebille-ai/opanoma-prod/internal/domain"
)

// InterpretRequest is the body of POST /api/open-proxy. The site's
// front end sends the card list as "cartes".
type InterpretRequest struct {
	Cards    []string `json:"cards"`
	Cartes   []string `json:"cartes"`
	Theme    string   `json:"theme"`
	Question string   `json:"question"`
}

func (r InterpretRequest) draw() domain.DrawRequest {
	cards := r.Cards
	if len(cards) == 0 {
		cards = r.Cartes
	}
	return domain.DrawRequest{Cards: cards, Theme: r.Theme, Question: r.Question}
}

type InterpretResponse struct {
	Result string `json:"result"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

type SubscribeResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error,omitempty"`
}

type DrawResponse struct {
	Deck  string             `json:"deck"`
	Cards []domain.DrawnCard `json:"cards"`
}

type ThemesResponse struct {
	Themes []string `json:"themes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
