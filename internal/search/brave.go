package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	braveSearchPath = "/res/v1/web/search"
	braveTopResults = 3
)

// BraveProvider summarises the top Brave web results.
type BraveProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewBraveProvider wires a Brave Search client.
func NewBraveProvider(client *http.Client, baseURL, apiKey string) *BraveProvider {
	return &BraveProvider{
		client:  defaultClient(client),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Name implements Provider.
func (p *BraveProvider) Name() string { return "Brave" }

// Search joins "title: description" for the first three results, one per line.
func (p *BraveProvider) Search(ctx context.Context, query string) (string, error) {
	endpoint := p.baseURL + braveSearchPath + "?" + url.Values{"q": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create brave request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("brave request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", readError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read brave response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return "", errors.New("could not decode brave response: invalid JSON")
	}

	list := gjson.GetBytes(body, "web.results")
	if list.Exists() && !list.IsArray() {
		return "", errors.New("could not decode brave response: web.results is not an array")
	}

	results := list.Array()
	if len(results) > braveTopResults {
		results = results[:braveTopResults]
	}
	lines := make([]string, 0, len(results))
	for i, r := range results {
		title, desc := r.Get("title"), r.Get("description")
		if !title.Exists() || !desc.Exists() {
			return "", fmt.Errorf("could not decode brave response: result %d lacks title or description", i)
		}
		lines = append(lines, title.String()+": "+desc.String())
	}
	return strings.Join(lines, "\n"), nil
}

var _ Provider = (*BraveProvider)(nil)
