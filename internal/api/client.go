// Package api implements the client for the hosted ScaleDown compression
// service. It is a collaborator of the local optimizer, not part of it: the
// CLI calls it first and falls back to the local guide-based path when the
// service is unavailable.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/scaledown-ai/scaledown/internal/errors"
)

const (
	defaultBaseURL = "https://api.scaledown.xyz/dev"
	defaultRate    = 0.5
)

// Client handles communication with the ScaleDown API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key, overriding the environment.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		if key != "" {
			c.apiKey = key
		}
	}
}

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a new ScaleDown API client.
// It reads the API key from the SCALEDOWN_API_KEY environment variable
// unless WithAPIKey overrides it.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		apiKey:  os.Getenv("SCALEDOWN_API_KEY"),
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		return nil, errors.APIAuthFailed()
	}

	return c, nil
}

// compressRequest is the wire format for a compression call.
type compressRequest struct {
	Prompt    string `json:"prompt"`
	Model     string `json:"model"`
	ScaleDown struct {
		Rate float64 `json:"rate"`
	} `json:"scaledown"`
}

// Usage reports token accounting from the service.
type Usage struct {
	OriginalTokens   int `json:"original_tokens"`
	CompressedTokens int `json:"compressed_tokens"`
	SavedTokens      int `json:"saved_tokens"`
}

// CompressResponse is the service's compression result, including the cost
// and carbon accounting the local path cannot provide.
type CompressResponse struct {
	CompressedPrompt string  `json:"compressed_prompt"`
	Model            string  `json:"model"`
	Usage            Usage   `json:"usage"`
	CostSavedUSD     float64 `json:"cost_saved_usd"`
	CarbonSavedGrams float64 `json:"carbon_saved_grams"`
}

// apiError is an error payload from the service.
type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Compress sends a prompt to the service for compression. Rate is the
// requested compression rate in [0,1]; values outside that range fall back
// to the default.
func (c *Client) Compress(ctx context.Context, prompt, model string, rate float64) (*CompressResponse, error) {
	if model == "" {
		return nil, errors.NoModelSelected()
	}
	if rate < 0 || rate > 1 {
		rate = defaultRate
	}

	req := compressRequest{
		Prompt: prompt,
		Model:  model,
	}
	req.ScaleDown.Rate = rate

	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.CompressionFailed("failed to encode request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/compress", bytes.NewReader(body))
	if err != nil {
		return nil, errors.CompressionFailed("failed to create request", err)
	}

	httpReq.Header.Set("Accept", "*/*")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.CompressionFailed("API request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.CompressionFailed("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, errors.CompressionFailed(
				fmt.Sprintf("API error (%d): %s", resp.StatusCode, apiErr.Error.Message),
				nil,
			)
		}
		return nil, errors.CompressionFailed(
			fmt.Sprintf("API returned status %d", resp.StatusCode),
			nil,
		)
	}

	var result CompressResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, errors.CompressionFailed("failed to decode response", err)
	}

	return &result, nil
}
