package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/csebille-ai/opanoma-prod/internal/adapters/decks"
	"github.com/csebille-ai/opanoma-prod/internal/app"
	"github.com/csebille-ai/opanoma-prod/internal/domain"
)

const (
	msgInvalidBody   = "Requête invalide."
	msgNoCards       = "Aucune carte n'a été tirée."
	msgEmailRequired = "Email is required."
	defaultDrawSize  = 3
)

type Handler struct {
	interpret *app.InterpretService
	subscribe *app.SubscribeService
	decks     *app.DeckService
}

func NewHandler(interpret *app.InterpretService, subscribe *app.SubscribeService, decks *app.DeckService) *Handler {
	return &Handler{interpret: interpret, subscribe: subscribe, decks: decks}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/api/open-proxy", h.Interpret)
	e.POST("/api/subscribe", h.Subscribe)
	e.GET("/api/deck", h.Deck)
	e.GET("/api/draw", h.Draw)
	e.GET("/api/themes", h.Themes)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Interpret(c echo.Context) error {
	var req InterpretRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, InterpretResponse{Result: msgInvalidBody})
	}

	res, err := h.interpret.Interpret(c.Request().Context(), req.draw())
	if errors.Is(err, domain.ErrNoCards) {
		return c.JSON(http.StatusBadRequest, InterpretResponse{Result: msgNoCards})
	}
	if err != nil {
		return mapError(c, err)
	}

	if !res.OK() {
		return c.JSON(http.StatusInternalServerError, InterpretResponse{Result: res.Err.Message})
	}
	return c.JSON(http.StatusOK, InterpretResponse{Result: res.Text})
}

func (h *Handler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, SubscribeResponse{Message: msgInvalidBody})
	}

	res, err := h.subscribe.Subscribe(c.Request().Context(), req.Email)
	if errors.Is(err, domain.ErrEmailRequired) {
		return c.JSON(http.StatusBadRequest, SubscribeResponse{Message: msgEmailRequired})
	}
	if err != nil {
		return mapError(c, err)
	}

	if !res.Success {
		return c.JSON(http.StatusInternalServerError, SubscribeResponse{
			Message: res.Message,
			Error:   res.Payload,
		})
	}
	return c.JSON(http.StatusOK, SubscribeResponse{Success: true, Message: res.Message})
}

func (h *Handler) Deck(c echo.Context) error {
	deck, err := h.decks.Deck(c.Request().Context(), deckParam(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, deck)
}

func (h *Handler) Draw(c echo.Context) error {
	n := defaultDrawSize
	if raw := c.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > domain.MaxDraw {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrInvalidN.Error()})
		}
		n = parsed
	}

	spread, err := h.decks.Draw(c.Request().Context(), deckParam(c), n)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, DrawResponse{Deck: spread.DeckID, Cards: spread.Cards})
}

func (h *Handler) Themes(c echo.Context) error {
	return c.JSON(http.StatusOK, ThemesResponse{Themes: domain.Themes})
}

func deckParam(c echo.Context) string {
	if id := c.QueryParam("deck"); id != "" {
		return id
	}
	return decks.DefaultDeckID
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrDeckNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidN), errors.Is(err, domain.ErrNExceedsDeck):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
