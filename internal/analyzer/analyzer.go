// Package analyzer orchestrates the detectors and the scorer.
package analyzer

import (
	"context"
	"sync"
	"time"

	"github.com/ppiankov/trustlens/internal/bias"
	"github.com/ppiankov/trustlens/internal/emotion"
	"github.com/ppiankov/trustlens/internal/facts"
	"github.com/ppiankov/trustlens/internal/model"
	"github.com/ppiankov/trustlens/internal/patterns"
	"github.com/ppiankov/trustlens/internal/score"
)

// Analyzer runs the enabled detectors over a text and scores the merged
// result. All state is immutable after construction, so one Analyzer can
// serve concurrent calls.
type Analyzer struct {
	bias     *bias.Detector
	emotion  *emotion.Analyzer
	facts    *facts.Checker
	patterns *patterns.Analyzer
	scorer   *score.Scorer
}

// New builds an analyzer from config. provider is the external
// fact-check collaborator and may be nil.
func New(cfg *model.Config, provider facts.Provider) *Analyzer {
	db := facts.LoadClaimDB(cfg.Tables.KnownClaimsPath)
	return &Analyzer{
		bias:     bias.NewDetector(cfg.Tables),
		emotion:  emotion.NewAnalyzer(cfg.Tables),
		facts:    facts.NewChecker(db, provider, cfg.FactCheck.Timeout),
		patterns: patterns.NewAnalyzer(cfg.Tables),
		scorer:   score.NewScorer(cfg.Scoring),
	}
}

// Analyze runs the detectors selected by opts. Detectors execute
// concurrently but their issues always merge in the same order (bias,
// emotion, fact-check, patterns) so summaries are reproducible.
func (a *Analyzer) Analyze(ctx context.Context, text string, opts model.Options) *model.AnalysisResult {
	result := &model.AnalysisResult{
		Timestamp:  time.Now().UTC(),
		TextLength: len(text),
		Issues:     []model.Issue{},
		Sources:    []model.Source{},
	}

	var (
		wg            sync.WaitGroup
		biasResult    bias.Result
		emotionResult emotion.Result
		factsResult   facts.Result
		patternResult patterns.Result
	)

	if opts.AnalyzeBias {
		wg.Add(1)
		go func() {
			defer wg.Done()
			biasResult = a.bias.Detect(text)
		}()
	}
	if opts.DetectEmotionalManipulation {
		wg.Add(1)
		go func() {
			defer wg.Done()
			emotionResult = a.emotion.Detect(text)
		}()
	}
	if opts.CheckFacts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			factsResult = a.facts.Check(ctx, text)
		}()
	}
	if opts.AnalyzeLinguisticPatterns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			patternResult = a.patterns.Detect(text)
		}()
	}
	wg.Wait()

	if opts.AnalyzeBias {
		result.Issues = append(result.Issues, biasResult.Issues...)
		meta := biasResult.Metadata
		result.Metadata.Bias = &meta
	}
	if opts.DetectEmotionalManipulation {
		result.Issues = append(result.Issues, emotionResult.Issues...)
		meta := emotionResult.Metadata
		result.Metadata.EmotionalManipulation = &meta
	}
	if opts.CheckFacts {
		result.Issues = append(result.Issues, factsResult.Issues...)
		result.Sources = append(result.Sources, factsResult.Sources...)
		meta := factsResult.Metadata
		result.Metadata.FactChecking = &meta
	}
	if opts.AnalyzeLinguisticPatterns {
		result.Issues = append(result.Issues, patternResult.Issues...)
		meta := patternResult.Metadata
		result.Metadata.LinguisticPatterns = &meta
	}

	scored := a.scorer.Calculate(result)
	result.CredibilityScore = scored.Score
	result.Confidence = scored.Confidence
	result.Summary = scored.Summary

	return result
}

// Emotion exposes the emotion analyzer for helpers like
// ExcessiveSentences that operate outside the main pipeline.
func (a *Analyzer) Emotion() *emotion.Analyzer {
	return a.emotion
}

// Patterns exposes the pattern analyzer for headline-only checks.
func (a *Analyzer) Patterns() *patterns.Analyzer {
	return a.patterns
}
