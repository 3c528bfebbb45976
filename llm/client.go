// llm/client.go
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

////////////////////////////////////////////////////////////////////////

// Anything with CallLLM method can act as a Client.
// Client sends a single prompt to a generative model and returns its raw text output.
type Client interface {
	CallLLM(ctx context.Context, prompt string) (string, error)
}

////////////////////////////////////////////////////////////////////////

// GeminiHTTPClient talks to the Gemini generateContent REST endpoint directly.
type GeminiHTTPClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

////////////////////////////////////////////////////////////////////////

// geminiResponse defines the structure of the JSON response we expect from the Gemini API.
// We only map the fields we need to extract the model's text output.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

////////////////////////////////////////////////////////////////////////
// Constructor
////////////////////////////////////////////////////////////////////////

// NewGeminiHTTPClient creates a client for the given base URL (e.g.
// "https://generativelanguage.googleapis.com/v1beta") and model.
// An empty apiKey is still sent; the upstream rejects it.
func NewGeminiHTTPClient(apiKey, baseURL, model string, client *http.Client) *GeminiHTTPClient {
	if client == nil {
		client = &http.Client{}
	}
	return &GeminiHTTPClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  client,
	}
}

////////////////////////////////////////////////////////////////////////

// CallLLM implements the Client interface using the Gemini API.
// It takes a prompt, handles the HTTP request/response, and returns the raw text output from the model.
func (g *GeminiHTTPClient) CallLLM(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	requestBody := map[string]any{
		"contents": []map[string]any{{"parts": []map[string]string{{"text": prompt}}}},
	}
	bodyBytes, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned non-200 status: %s: %s", resp.Status, truncate(string(respBody), 300))
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal api response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("unexpected LLM response format: no content found")
	}

	// Long answers may be split across several parts.
	var sb strings.Builder
	for _, part := range apiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

// truncate returns the first maxLen bytes of s, appending "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
