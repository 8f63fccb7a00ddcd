package messages

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/kino-avatar/kino/internal/config"
	"github.com/kino-avatar/kino/internal/model/persona"
	"github.com/kino-avatar/kino/internal/service/ai"
)

func setupRouter(responses ...ai.MockResponse) *chi.Mux {
	cfg := config.AIConfig{Model: config.DefaultModel, Temperature: config.DefaultTemperature, MaxTokens: config.DefaultMaxTokens}
	gen := ai.NewGenerator(ai.NewMockChatModel(responses...), persona.Seed()[0], cfg)

	r := chi.NewRouter()
	New(gen).RegisterRoutes(r)
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGenerateMessages(t *testing.T) {
	r := setupRouter(ai.MockResponse{Content: `[{"text":"Hi!","facialExpression":"smile","animation":"Talking"}]`})

	resp := post(r, `{"text":"hello"}`)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"messages":[{"text":"Hi!","facialExpression":"smile","animation":"Talking"}]}`, resp.Body.String())
}

func TestGenerateMessagesUpstreamFailure(t *testing.T) {
	r := setupRouter(ai.MockResponse{Err: errors.New("boom")})

	resp := post(r, `{"text":"hello"}`)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"messages":[{"text":"An error occurred: boom","facialExpression":"smile","animation":"Idle"}]}`, resp.Body.String())
}

func TestGenerateMessagesInvalidBody(t *testing.T) {
	resp := post(setupRouter(), `{`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"messages":[{"text":"No input provided.","facialExpression":"default","animation":"Idle"}]}`, resp.Body.String())
}

func TestGenerateMessagesWithoutGenerator(t *testing.T) {
	r := chi.NewRouter()
	New(nil).RegisterRoutes(r)

	resp := post(r, `{"text":"hello"}`)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "ai service unavailable")
}
