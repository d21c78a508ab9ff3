/**
* Name:        client.go
* Description: completion provider client (OpenAI-compatible chat completions)
* Workflow:    convert assembled context, send one request, return one reply
 */
package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"DietPlanChatbot/internal/prompt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.1-8b-instant"
)

// Completer turns an assembled context into a single reply.
type Completer interface {
	Complete(ctx context.Context, messages []prompt.Message) (string, error)
}

// ProviderError wraps any failure of the external completion call.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return "completion provider error: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// Client talks to any endpoint implementing the OpenAI chat completions API.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
}

func NewClient(cfg Config) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = DefaultBaseURL
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		api:         openai.NewClientWithConfig(oc),
		model:       model,
		temperature: cfg.Temperature,
	}
}

// Complete sends the whole context in one non-streaming request.
func (c *Client) Complete(ctx context.Context, messages []prompt.Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toOpenAIMessages(messages),
		Temperature: c.temperature,
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &ProviderError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Err: errors.New("no choices in completion response")}
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", &ProviderError{Err: errors.New("empty completion content")}
	}
	return reply, nil
}

func toOpenAIMessages(messages []prompt.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		switch m.Role {
		case prompt.RoleSystem:
			role = openai.ChatMessageRoleSystem
		case prompt.RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}
