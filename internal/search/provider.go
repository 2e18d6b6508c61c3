package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/octobees/prompt-relay/api/internal/config"
)

// Provider turns a query into a short text summary of web findings.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) (string, error)
}

// NewProvider builds the provider selected by configuration.
func NewProvider(cfg config.SearchConfig, client *http.Client) (Provider, error) {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	switch cfg.Provider {
	case config.SearchProviderTavily, "":
		return NewTavilyProvider(client, cfg.TavilyBaseURL, cfg.TavilyAPIKey), nil
	case config.SearchProviderBrave:
		return NewBraveProvider(client, cfg.BraveBaseURL, cfg.BraveAPIKey), nil
	default:
		return nil, fmt.Errorf("unsupported search provider %q", cfg.Provider)
	}
}

func defaultClient(client *http.Client) *http.Client {
	if client == nil {
		return &http.Client{}
	}
	return client
}

// readError summarises a non-2xx upstream response.
func readError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
}
