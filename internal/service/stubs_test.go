package service

import "context"

type providerStub struct {
	name    string
	summary string
	err     error
	queries []string
}

func (s *providerStub) Name() string {
	if s.name == "" {
		return "Tavily"
	}
	return s.name
}

func (s *providerStub) Search(ctx context.Context, query string) (string, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

type runnerStub struct {
	answer  string
	err     error
	prompts []string
}

func (s *runnerStub) Run(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if s.answer == "" {
		return "echo: " + prompt + "\n", nil
	}
	return s.answer, nil
}
