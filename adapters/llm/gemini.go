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
)

// GeminiClient calls generateContent with responseMimeType application/json
// and a responseSchema built from the domain schema, so the shape is
// enforced server-side rather than by prompt text alone
type GeminiClient struct {
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

// NewGeminiClient creates a client from config
func NewGeminiClient(cfg config.LLMConfig, logger *internal.Logger) *GeminiClient {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	rpm := cfg.RPM
	if rpm <= 0 {
		rpm = 60
	}
	return &GeminiClient{
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

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  geminiGenConfig `json:"generationConfig"`
}

type geminiGenConfig struct {
	Temperature      float64        `json:"temperature"`
	MaxOutputTokens  int            `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate makes one schema-constrained call and returns the JSON text of
// the first candidate
func (c *GeminiClient) Generate(ctx context.Context, text string, s schema.Schema, instruction string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", errors.TransportError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: instruction}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: text}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:      c.temperature,
			MaxOutputTokens:  c.maxTokens,
			ResponseMimeType: "application/json",
			ResponseSchema:   ResponseSchema(s),
		},
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrap(err, "marshal request")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("[GeminiClient] Sending request - model=%s, schema=%s, inputLength=%d",
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
		return "", errors.TransportError(fmt.Errorf("gemini http %d: %s", resp.StatusCode, string(respRaw)))
	}

	var decoded geminiResponse
	if err := json.Unmarshal(respRaw, &decoded); err != nil {
		return "", errors.TransportError(fmt.Errorf("unmarshal response envelope: %w", err))
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.TransportError(fmt.Errorf("gemini response missing candidates"))
	}

	var sb strings.Builder
	for _, part := range decoded.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	content := cleanJSONContent(sb.String())
	c.logger.Debug("[GeminiClient] Response received - latency=%v, contentLength=%d",
		time.Since(start), len(content))
	return content, nil
}
