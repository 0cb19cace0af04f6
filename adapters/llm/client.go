package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"triagelock/domain/schema"
	"triagelock/internal"
	"triagelock/internal/config"
	"triagelock/internal/errors"
	"triagelock/ports"
)

// New builds a Generator for the configured provider
func New(cfg config.LLMConfig, logger *internal.Logger) (ports.Generator, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(cfg, logger), nil
	case "gemini":
		return NewGeminiClient(cfg, logger), nil
	case "mock":
		return NewMockGenerator(), nil
	default:
		return nil, errors.ConfigInvalid(fmt.Sprintf("unsupported LLM provider: %s", cfg.Provider))
	}
}

// OpenAIClient calls the Chat Completions API with json_object response
// format. The schema contract travels in the system message; validation of
// the returned object happens upstream, not here.
type OpenAIClient struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	limiter     *rate.Limiter
	httpClient  *http.Client
	logger      *internal.Logger
}

// NewOpenAIClient creates a client from config
func NewOpenAIClient(cfg config.LLMConfig, logger *internal.Logger) *OpenAIClient {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	rpm := cfg.RPM
	if rpm <= 0 {
		rpm = 60
	}
	return &OpenAIClient{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		limiter:     rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate makes one schema-constrained call and returns the cleaned JSON
// text of the first choice
func (c *OpenAIClient) Generate(ctx context.Context, text string, s schema.Schema, instruction string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", errors.TransportError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	system := instruction + "\n\n" + ContractLines(s)
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: text},
		},
		Temperature:    c.temperature,
		MaxTokens:      c.maxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrap(err, "marshal request")
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("[OpenAIClient] Sending request - model=%s, schema=%s, inputLength=%d",
		c.model, s.ID, len(text))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.TransportError(fmt.Errorf("request timeout after %v: %w", c.timeout, err))
		}
		return "", errors.TransportError(err)
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.TransportError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.TransportError(fmt.Errorf("openai http %d: %s", resp.StatusCode, string(respRaw)))
	}

	var decoded chatResponse
	if err := json.Unmarshal(respRaw, &decoded); err != nil {
		return "", errors.TransportError(fmt.Errorf("unmarshal response envelope: %w", err))
	}
	if len(decoded.Choices) == 0 {
		return "", errors.TransportError(fmt.Errorf("openai response missing choices"))
	}

	content := cleanJSONContent(decoded.Choices[0].Message.Content)
	c.logger.Debug("[OpenAIClient] Response received - latency=%v, contentLength=%d",
		time.Since(start), len(content))
	return content, nil
}
