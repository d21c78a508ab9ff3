package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"DietPlanChatbot/internal/prompt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newCompletionServer(t *testing.T, status int, body any, captured *capturedRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if captured != nil {
			_ = json.NewDecoder(r.Body).Decode(captured)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(url string) *Client {
	return NewClient(Config{APIKey: "test-key", BaseURL: url, Model: "test-model", Timeout: 5 * time.Second})
}

func TestComplete_ReturnsReplyAndSendsRoles(t *testing.T) {
	var captured capturedRequest
	server := newCompletionServer(t, http.StatusOK, map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": "  DAY 1\nBreakfast: oats  "}},
		},
	}, &captured)

	reply, err := newTestClient(server.URL).Complete(context.Background(), []prompt.Message{
		{Role: prompt.RoleSystem, Content: "sys"},
		{Role: prompt.RoleUser, Content: "q1"},
		{Role: prompt.RoleAssistant, Content: "a1"},
		{Role: prompt.RoleUser, Content: "q2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "DAY 1\nBreakfast: oats", reply)

	assert.Equal(t, "test-model", captured.Model)
	require.Len(t, captured.Messages, 4)
	roles := []string{captured.Messages[0].Role, captured.Messages[1].Role, captured.Messages[2].Role, captured.Messages[3].Role}
	assert.Equal(t, []string{"system", "user", "assistant", "user"}, roles)
	assert.Equal(t, "q2", captured.Messages[3].Content)
}

func TestComplete_APIErrorIsProviderError(t *testing.T) {
	server := newCompletionServer(t, http.StatusInternalServerError, map[string]any{
		"error": map[string]any{"message": "model overloaded", "type": "server_error"},
	}, nil)

	_, err := newTestClient(server.URL).Complete(context.Background(), []prompt.Message{{Role: prompt.RoleUser, Content: "hi"}})
	require.Error(t, err)

	var providerErr *ProviderError
	require.True(t, errors.As(err, &providerErr))

	var apiErr *openai.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.HTTPStatusCode)
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := newCompletionServer(t, http.StatusOK, map[string]any{"choices": []any{}}, nil)

	_, err := newTestClient(server.URL).Complete(context.Background(), []prompt.Message{{Role: prompt.RoleUser, Content: "hi"}})

	var providerErr *ProviderError
	assert.True(t, errors.As(err, &providerErr))
}

func TestComplete_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newTestClient(url).Complete(context.Background(), []prompt.Message{{Role: prompt.RoleUser, Content: "hi"}})

	var providerErr *ProviderError
	assert.True(t, errors.As(err, &providerErr))
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{APIKey: "k"})
	assert.Equal(t, DefaultModel, c.model)
}
