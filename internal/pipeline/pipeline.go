// Package pipeline wires the fetch layer, the analyzer core, and the
// renderers together.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/trustlens/internal/analyzer"
	"github.com/ppiankov/trustlens/internal/cache"
	"github.com/ppiankov/trustlens/internal/facts"
	"github.com/ppiankov/trustlens/internal/llm"
	"github.com/ppiankov/trustlens/internal/model"
)

// Pipeline orchestrates the complete analysis process
type Pipeline struct {
	fetcher    *Fetcher
	analyzer   *analyzer.Analyzer
	renderer   *Renderer
	summarizer *llm.Summarizer
	config     *model.Config
}

// NewPipeline creates a pipeline from config
func NewPipeline(cfg *model.Config) *Pipeline {
	var fetchCache, factCache cache.Cache
	if cfg.Cache.Enabled {
		fetchCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		factCache = cache.NewMemoryCache(cfg.FactCheck.CacheTTL, 10*time.Minute)
	}

	var provider facts.Provider
	if cfg.FactCheck.APIKey != "" {
		provider = facts.NewGoogleProvider(cfg.FactCheck, factCache)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		fetcher:    NewFetcher(cfg.HTTP, fetchCache),
		analyzer:   analyzer.New(cfg, provider),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
		config:     cfg,
	}
}

// Analyzer exposes the underlying core for callers that need the
// headline or sentence helpers.
func (p *Pipeline) Analyzer() *analyzer.Analyzer {
	return p.analyzer
}

// AnalyzeText runs the core over plain text
func (p *Pipeline) AnalyzeText(ctx context.Context, text string, opts model.Options) *model.AnalysisResult {
	result := p.analyzer.Analyze(ctx, text, opts)
	p.attachNarrative(ctx, result)
	return result
}

// AnalyzeURL fetches a URL and analyzes its article text. A fetch
// failure never reaches the core: the returned result carries the error
// and a credibility score of 0.
func (p *Pipeline) AnalyzeURL(ctx context.Context, rawURL string, opts model.Options) *model.AnalysisResult {
	doc, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return &model.AnalysisResult{
			Timestamp:        time.Now().UTC(),
			URL:              rawURL,
			Error:            fmt.Sprintf("Failed to analyze URL: %v", err),
			CredibilityScore: 0,
		}
	}

	result := p.analyzer.Analyze(ctx, doc.Text, opts)
	result.URL = doc.FinalURL
	result.Title = doc.Title
	result.MetaDescription = doc.MetaDescription
	result.Domain = doc.Domain

	p.attachNarrative(ctx, result)
	return result
}

// Text returns the fetched article text for a URL, for callers that
// need it alongside the result (e.g. highlight rendering).
func (p *Pipeline) Text(ctx context.Context, rawURL string) (string, error) {
	doc, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

// attachNarrative adds the optional LLM note after scoring is done
func (p *Pipeline) attachNarrative(ctx context.Context, result *model.AnalysisResult) {
	if p.summarizer == nil || !p.summarizer.IsEnabled() {
		return
	}
	note, err := p.summarizer.Narrate(ctx, result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM narrative generation failed: %v\n", err)
		return
	}
	result.LLM = note
}

// RenderReport renders the result to the configured outputs
func (p *Pipeline) RenderReport(result *model.AnalysisResult, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(result, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(result)
	return nil
}

// RenderHighlight writes the highlighted-HTML view of an analysis
func (p *Pipeline) RenderHighlight(text string, result *model.AnalysisResult, htmlPath string, verbose bool) error {
	if htmlPath == "" {
		return nil
	}
	if err := p.renderer.RenderHTML(text, result, htmlPath); err != nil {
		return fmt.Errorf("render HTML: %w", err)
	}
	if verbose {
		fmt.Printf("✓ Wrote HTML: %s\n", htmlPath)
	}
	return nil
}
