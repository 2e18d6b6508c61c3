package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/octobees/prompt-relay/api/internal/logger"
	"github.com/octobees/prompt-relay/api/internal/metrics"
	"github.com/octobees/prompt-relay/api/internal/model"
	"github.com/octobees/prompt-relay/api/internal/search"
)

// EmptyPromptResponse is returned for blank prompts without calling out.
const EmptyPromptResponse = "Empty prompt."

// RelayService composes the prompt, optionally with web context, and runs the model.
type RelayService struct {
	provider search.Provider
	runner   model.Runner
}

// NewRelayService wires the search provider and model runner.
func NewRelayService(provider search.Provider, runner model.Runner) (*RelayService, error) {
	if provider == nil {
		return nil, errors.New("service: search provider must not be nil")
	}
	if runner == nil {
		return nil, errors.New("service: model runner must not be nil")
	}
	return &RelayService{provider: provider, runner: runner}, nil
}

// Ask never fails: search and model errors are folded into the text it returns.
func (s *RelayService) Ask(ctx context.Context, prompt string) string {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return EmptyPromptResponse
	}

	log := logger.FromContext(ctx)
	fullPrompt := prompt
	needsSearch := NeedsSearch(trimmed)
	log.Debug("classified prompt", zap.Bool("needs_search", needsSearch))
	if needsSearch {
		fullPrompt = AugmentPrompt(s.summarize(ctx, prompt), prompt)
	}

	return strings.TrimSpace(s.invoke(ctx, fullPrompt))
}

// AugmentPrompt places the web summary ahead of the user's prompt.
func AugmentPrompt(summary, prompt string) string {
	return "Use this web info:\n" + summary + "\n\nThen answer this:\n" + prompt
}

func (s *RelayService) summarize(ctx context.Context, query string) string {
	name := s.provider.Name()
	started := time.Now()
	summary, err := s.provider.Search(ctx, query)
	metrics.ObserveSearch(strings.ToLower(name), started, err)
	if err != nil {
		logger.FromContext(ctx).Warn("web search failed", zap.String("provider", name), zap.Error(err))
		return fmt.Sprintf("[%s search error: %v]", name, err)
	}
	return summary
}

func (s *RelayService) invoke(ctx context.Context, prompt string) string {
	started := time.Now()
	answer, err := s.runner.Run(ctx, prompt)
	metrics.ObserveModel(started, err)
	if err != nil {
		logger.FromContext(ctx).Error("model invocation failed", zap.Error(err))
		return fmt.Sprintf("[Ollama error: %v]", err)
	}
	return answer
}
