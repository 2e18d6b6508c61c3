package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTavilyProvider_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tv-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body["query"] != "latest news on X" || body["search_depth"] != "basic" || body["include_answer"] != true {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"answer": "X happened", "results": []any{}})
	}))
	defer server.Close()

	p := NewTavilyProvider(server.Client(), server.URL+"/", "tv-key")
	got, err := p.Search(context.Background(), "latest news on X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "X happened" {
		t.Fatalf("expected answer, got %q", got)
	}
	if p.Name() != "Tavily" {
		t.Fatalf("unexpected name %s", p.Name())
	}
}

func TestTavilyProvider_MissingAnswer(t *testing.T) {
	for name, payload := range map[string]string{
		"absent": `{"results":[]}`,
		"null":   `{"answer":null}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(payload))
			}))
			defer server.Close()

			got, err := NewTavilyProvider(server.Client(), server.URL, "k").Search(context.Background(), "q")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != "" {
				t.Fatalf("expected empty summary, got %q", got)
			}
		})
	}
}

func TestTavilyProvider_Errors(t *testing.T) {
	tests := map[string]http.HandlerFunc{
		"unauthorized": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"invalid api key"}`))
		},
		"malformed": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>oops"))
		},
	}

	for name, h := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(h)
			defer server.Close()

			if _, err := NewTavilyProvider(server.Client(), server.URL, "k").Search(context.Background(), "q"); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	t.Run("transport", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewTavilyProvider(nil, url, "k").Search(context.Background(), "q")
		if err == nil || !strings.Contains(err.Error(), "tavily request failed") {
			t.Fatalf("expected transport error, got %v", err)
		}
	})
}
