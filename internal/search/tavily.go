package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const tavilySearchPath = "/search"

// TavilyProvider asks Tavily for a synthesized answer.
type TavilyProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type tavilyRequest struct {
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeAnswer bool   `json:"include_answer"`
}

type tavilyResponse struct {
	Answer *string `json:"answer"`
}

// NewTavilyProvider wires a Tavily client.
func NewTavilyProvider(client *http.Client, baseURL, apiKey string) *TavilyProvider {
	return &TavilyProvider{
		client:  defaultClient(client),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Name implements Provider.
func (p *TavilyProvider) Name() string { return "Tavily" }

// Search returns the answer field, or an empty string when Tavily did not synthesize one.
func (p *TavilyProvider) Search(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(tavilyRequest{Query: query, SearchDepth: "basic", IncludeAnswer: true})
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+tavilySearchPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create tavily request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tavily request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", readError(resp)
	}

	var out tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("could not decode tavily response: %w", err)
	}
	if out.Answer == nil {
		return "", nil
	}
	return *out.Answer, nil
}

var _ Provider = (*TavilyProvider)(nil)
