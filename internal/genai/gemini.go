package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"docqa/internal/config"
)

// GeminiClient implements Generator against the Gemini generateContent
// REST API.
type GeminiClient struct {
	client   *http.Client
	endpoint string
	model    string
	apiKey   string
}

// NewGemini creates a Gemini client from config.
func NewGemini(cfg config.GenAIConfig) (*GeminiClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("genai endpoint is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("genai model is required")
	}

	return &GeminiClient{
		client: &http.Client{
			Timeout:   time.Duration(cfg.TimeoutSec) * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
	}, nil
}

var _ Generator = (*GeminiClient)(nil)

// generateRequest is the generateContent request payload.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the subset of the generateContent response we consume.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt to the model and returns the first candidate's text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var out generateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return "", fmt.Errorf("generate API returned %s: %s", resp.Status, out.Error.Message)
		}
		return "", fmt.Errorf("generate API returned %s", resp.Status)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generate response contained no candidates")
	}

	var text string
	for _, p := range out.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text, nil
}
