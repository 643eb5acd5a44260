// OpenAI-compatible chat completions client for the inference endpoint.
package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"avisame/config"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client struct {
	model      string
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func New(cfg config.Model, logger *zap.SugaredLogger) *Client {
	timeout := 120 * time.Second

	if cfg.TimeoutSecs > 0 {
		timeout = time.Duration(cfg.TimeoutSecs) * time.Second
	}

	return &Client{
		model:      cfg.Name,
		token:      cfg.Token,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("llm"),
	}
}

// Request holds one system+user exchange. Zero-valued sampling fields are
// omitted from the wire request.
type Request struct {
	System      string
	User        string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	TopP        float64   `json:"top_p,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete performs one blocking chat completion round-trip and returns the
// trimmed message content. No internal retries; failures surface as errors.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
	})

	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.baseURL + "/chat/completions"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))

	if err != nil {
		return "", err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	c.logger.With(
		zap.String("endpoint", endpoint),
		zap.String("model", c.model),
	).Debug("Model request")

	resp, err := c.httpClient.Do(httpReq)

	if err != nil {
		return "", fmt.Errorf("model request: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)

	if err != nil {
		return "", fmt.Errorf("read model response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("model returned status %d: %s", resp.StatusCode, truncate(respBody, 512))
	}

	var parsed chatResponse

	err = json.Unmarshal(respBody, &parsed)

	if err != nil {
		return "", fmt.Errorf("unmarshal model response: %w", err)
	}

	if parsed.Error != nil {
		return "", errors.New("model error: " + parsed.Error.Message)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}

	return string(b[:n]) + "..."
}
