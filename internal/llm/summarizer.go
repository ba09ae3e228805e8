package llm

import (
	"context"
	"fmt"

	"github.com/ppiankov/trustlens/internal/model"
)

// Summarizer wraps a provider and attaches narratives to results
type Summarizer struct {
	provider  Provider
	model     string
	maxTokens int
}

// NewSummarizer creates a summarizer from config. An empty provider
// name yields a disabled summarizer.
func NewSummarizer(cfg model.LLMConfig) (*Summarizer, error) {
	if cfg.Provider == "" {
		return &Summarizer{}, nil
	}
	if cfg.Provider != "openai" {
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}

	provider, err := NewOpenAIProvider(cfg)
	if err != nil {
		return nil, err
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}

	return &Summarizer{
		provider:  provider,
		model:     cfg.Model,
		maxTokens: maxTokens,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// Narrate generates an LLMNote for a scored result. Called strictly
// after scoring; a failure here is a warning, never an analysis error.
func (s *Summarizer) Narrate(ctx context.Context, result *model.AnalysisResult) (*model.LLMNote, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	text, err := s.provider.Narrate(ctx, BuildPrompt(result), s.maxTokens)
	if err != nil {
		return nil, err
	}

	return &model.LLMNote{
		Provider:  s.provider.Name(),
		Model:     s.model,
		SummaryMD: text,
	}, nil
}
