package app_test

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csebille-ai/opanoma-prod/internal/app"
	"github.com/csebille-ai/opanoma-prod/internal/domain"
	"github.com/csebille-ai/opanoma-prod/internal/ports"
)

type mockCompleter struct {
	mu    sync.Mutex
	calls []ports.CompletionRequest
	text  string
	err   error
}

func (m *mockCompleter) Complete(_ context.Context, req ports.CompletionRequest) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	return m.text, m.err
}

// echoCompleter answers with the prompt it was given.
type echoCompleter struct{}

func (echoCompleter) Complete(_ context.Context, req ports.CompletionRequest) (string, error) {
	return req.Messages[0].Content, nil
}

func newInterpretService(c ports.Completer) *app.InterpretService {
	return app.NewInterpretService(c, "gpt-4o-mini", 600, slog.Default())
}

func TestInterpret_Success(t *testing.T) {
	m := &mockCompleter{text: "Une belle énergie de renouveau."}
	svc := newInterpretService(m)

	res, err := svc.Interpret(context.Background(), domain.DrawRequest{
		Cards:    []string{"Le Mat", "L'Étoile"},
		Theme:    "Amour",
		Question: "Vais-je retrouver l'amour ?",
	})
	require.NoError(t, err)

	assert.True(t, res.OK())
	assert.Equal(t, "Une belle énergie de renouveau.", res.Text)

	require.Len(t, m.calls, 1)
	req := m.calls[0]
	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.Equal(t, 600, req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "Le Mat, L'Étoile")
	assert.Contains(t, req.Messages[0].Content, "Amour")
}

func TestInterpret_NoCardsSkipsUpstream(t *testing.T) {
	m := &mockCompleter{text: "unused"}
	svc := newInterpretService(m)

	_, err := svc.Interpret(context.Background(), domain.DrawRequest{Theme: "Santé"})
	assert.ErrorIs(t, err, domain.ErrNoCards)
	assert.Empty(t, m.calls)
}

func TestInterpret_UpstreamErrorMessage(t *testing.T) {
	m := &mockCompleter{err: &domain.UpstreamError{Status: 429, Message: "Rate limit reached"}}
	svc := newInterpretService(m)

	res, err := svc.Interpret(context.Background(), domain.DrawRequest{Cards: []string{"La Roue de Fortune"}})
	require.NoError(t, err)

	require.False(t, res.OK())
	assert.Equal(t, "Erreur OpenAI : Rate limit reached", res.Err.Message)
	assert.Equal(t, 429, res.Err.UpstreamStatus)
	assert.Empty(t, res.Text)
}

func TestInterpret_UpstreamErrorUnknown(t *testing.T) {
	m := &mockCompleter{err: fmt.Errorf("wrapped: %w", &domain.UpstreamError{Status: 500})}
	svc := newInterpretService(m)

	res, err := svc.Interpret(context.Background(), domain.DrawRequest{Cards: []string{"Le Diable"}})
	require.NoError(t, err)

	require.False(t, res.OK())
	assert.Equal(t, "Erreur OpenAI : inconnue", res.Err.Message)
	assert.Equal(t, 500, res.Err.UpstreamStatus)
}

func TestInterpret_TransportError(t *testing.T) {
	m := &mockCompleter{err: fmt.Errorf("%w: dial tcp: connection refused", domain.ErrTransport)}
	svc := newInterpretService(m)

	res, err := svc.Interpret(context.Background(), domain.DrawRequest{Cards: []string{"La Lune"}})
	require.NoError(t, err)

	require.False(t, res.OK())
	assert.Equal(t, app.ConnectionErrorMessage, res.Err.Message)
	assert.Zero(t, res.Err.UpstreamStatus)
}

func TestInterpret_ConcurrentCallsDoNotInterfere(t *testing.T) {
	svc := newInterpretService(echoCompleter{})

	const n = 50
	results := make([]domain.InterpretationResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Interpret(context.Background(), domain.DrawRequest{
				Cards: []string{fmt.Sprintf("Carte-%d-a", i), fmt.Sprintf("Carte-%d-b", i)},
				Theme: fmt.Sprintf("Thème-%d", i),
			})
			if err != nil {
				t.Errorf("call %d: %v", i, err)
				return
			}
			results[i] = res
		}()
	}
	wg.Wait()

	for i, res := range results {
		want := fmt.Sprintf("Carte-%d-a, Carte-%d-b", i, i)
		assert.True(t, strings.Contains(res.Text, want), "call %d lost its cards", i)
		assert.Contains(t, res.Text, fmt.Sprintf(`"Thème-%d"`, i))
	}
}
