package voyage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Client calls the Voyage AI embeddings endpoint.
type Client struct {
	apiKey   string
	endpoint string
	model    string
	http     *http.Client
}

func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		apiKey:   cfg.APIKey,
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/embeddings",
		model:    cfg.Model,
		http:     cfg.HTTPClient,
	}, nil
}

func (c *Client) Model() string {
	return c.model
}

// Embed embeds texts with no input type hint.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return c.EmbedWithInputType(ctx, texts, "")
}

// EmbedWithInputType embeds texts as InputTypeQuery or InputTypeDocument
// vectors. The result is aligned with texts whatever order the API replies in.
func (c *Client) EmbedWithInputType(ctx context.Context, texts []string, inputType string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("voyage: no texts provided")
	}

	var out EmbedResponse
	if err := c.post(ctx, EmbedRequest{Input: texts, Model: c.model, InputType: inputType}, &out); err != nil {
		return nil, err
	}
	return alignByIndex(out.Data, len(texts))
}

func (c *Client) post(ctx context.Context, body EmbedRequest, out *EmbedResponse) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("voyage: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("voyage: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("voyage: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&body) == nil {
			apiErr.Detail = body.Detail
		}
		return apiErr
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("voyage: decode response: %w", err)
	}
	return nil
}

func alignByIndex(data []EmbeddingData, n int) ([][]float32, error) {
	if len(data) != n {
		return nil, fmt.Errorf("voyage: expected %d embeddings, got %d", n, len(data))
	}
	vectors := make([][]float32, n)
	for _, d := range data {
		if d.Index < 0 || d.Index >= n {
			return nil, fmt.Errorf("voyage: embedding index %d out of range", d.Index)
		}
		if vectors[d.Index] != nil {
			return nil, fmt.Errorf("voyage: duplicate embedding index %d", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

// APIError is a non-200 reply from the embeddings endpoint.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("voyage: API error %d", e.StatusCode)
	}
	return fmt.Sprintf("voyage: API error %d: %s", e.StatusCode, e.Detail)
}
