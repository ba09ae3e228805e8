// Package bias detects loaded language, generalizations, exaggeration,
// subjective framing, and political-leaning term imbalance.
package bias

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/ppiankov/trustlens/internal/model"
	"github.com/ppiankov/trustlens/internal/tables"
)

// qualifier words within 30 chars of a generalization suppress it
var qualifierRe = regexp.MustCompile(`(?i)\bnot\b|\bexcept\b|\bbut\b|\bsome\b|\bfew\b|\bmany\b`)

// attribution verbs in the preceding 40 chars suppress a subjective qualifier
var attributionRe = regexp.MustCompile(`(?i)\bsaid\b|\bstated\b|\bclaimed\b|\baccording to\b|\bbelieves\b|\bthinks\b`)

// Detector scans text for bias signals
type Detector struct {
	loaded         *tables.Matcher
	generalization *tables.Matcher
	exaggeration   *tables.Matcher
	subjective     *tables.Matcher
	left           *tables.Matcher
	right          *tables.Matcher
}

// Result carries the detector's issues and metadata
type Result struct {
	Issues   []model.Issue
	Metadata model.BiasMetadata
}

// NewDetector compiles the bias tables once; the detector is safe for
// concurrent use afterwards.
func NewDetector(cfg model.TablesConfig) *Detector {
	phrases := tables.LoadTableOrDefault(cfg.BiasPhrasesPath, tables.DefaultBiasPhrases())
	political := tables.LoadTableOrDefault(cfg.PoliticalTermsPath, tables.DefaultPoliticalTerms())

	return &Detector{
		loaded:         tables.CompileWords(phrases.Terms("loaded_language")),
		generalization: tables.CompileWords(phrases.Terms("generalization")),
		exaggeration:   tables.CompileWords(phrases.Terms("exaggeration")),
		subjective:     tables.CompileWords(phrases.Terms("subjective_qualifiers")),
		left:           tables.CompileWords(political.Terms("left_leaning")),
		right:          tables.CompileWords(political.Terms("right_leaning")),
	}
}

// Detect scans text and returns one issue per phrase occurrence plus a
// single political_bias issue when the text leans one way.
func (d *Detector) Detect(text string) Result {
	var result Result
	meta := &result.Metadata

	if issues := d.detectLoadedLanguage(text); len(issues) > 0 {
		result.Issues = append(result.Issues, issues...)
		meta.BiasTypesDetected = append(meta.BiasTypesDetected, "loaded_language")
	}
	if issues := d.detectGeneralizations(text); len(issues) > 0 {
		result.Issues = append(result.Issues, issues...)
		meta.BiasTypesDetected = append(meta.BiasTypesDetected, "generalizations")
	}
	if issues := d.detectExaggerations(text); len(issues) > 0 {
		result.Issues = append(result.Issues, issues...)
		meta.BiasTypesDetected = append(meta.BiasTypesDetected, "exaggerations")
	}
	if issues := d.detectSubjectiveLanguage(text); len(issues) > 0 {
		result.Issues = append(result.Issues, issues...)
		meta.BiasTypesDetected = append(meta.BiasTypesDetected, "subjective_language")
	}

	political := d.detectPoliticalLeaning(text)
	if political.Leaning != model.LeaningNeutral {
		meta.PoliticalLeaning = political.Leaning
		meta.PoliticalLeaningConfidence = political.Confidence
		result.Issues = append(result.Issues, model.Issue{
			Type:        model.IssuePoliticalBias,
			Description: fmt.Sprintf("Political bias detected (%s-leaning)", political.Leaning),
			Confidence:  political.Confidence,
			Spans:       political.Spans,
		})
		meta.BiasTypesDetected = append(meta.BiasTypesDetected, "political_bias")
	}

	// Issues per 100 words, capped so 5/100w saturates the level
	wordCount := len(strings.Fields(text))
	level := 0.0
	if wordCount > 0 {
		density := float64(len(result.Issues)) / (float64(wordCount) / 100)
		level = math.Min(1.0, density/5.0)
	}
	meta.OverallBiasLevel = round2(level)

	return result
}

func (d *Detector) detectLoadedLanguage(text string) []model.Issue {
	var issues []model.Issue
	for _, m := range d.loaded.Find(text) {
		issues = append(issues, model.Issue{
			Type:        model.IssueLoadedLanguage,
			Description: fmt.Sprintf("Loaded language: '%s'", m.Text),
			Confidence:  0.8,
			Spans:       []model.Span{m.Span},
		})
	}
	return issues
}

func (d *Detector) detectGeneralizations(text string) []model.Issue {
	var issues []model.Issue
	for _, m := range d.generalization.Find(text) {
		start := m.Span.Start - 30
		if start < 0 {
			start = 0
		}
		end := m.Span.End + 30
		if end > len(text) {
			end = len(text)
		}
		// Qualified or negated statements are not generalizations
		if qualifierRe.MatchString(text[start:end]) {
			continue
		}
		issues = append(issues, model.Issue{
			Type:        model.IssueGeneralization,
			Description: fmt.Sprintf("Generalization: '%s'", m.Text),
			Confidence:  0.7,
			Spans:       []model.Span{m.Span},
		})
	}
	return issues
}

func (d *Detector) detectExaggerations(text string) []model.Issue {
	var issues []model.Issue
	for _, m := range d.exaggeration.Find(text) {
		issues = append(issues, model.Issue{
			Type:        model.IssueExaggeration,
			Description: fmt.Sprintf("Exaggerated language: '%s'", m.Text),
			Confidence:  0.75,
			Spans:       []model.Span{m.Span},
		})
	}
	return issues
}

func (d *Detector) detectSubjectiveLanguage(text string) []model.Issue {
	var issues []model.Issue
	for _, m := range d.subjective.Find(text) {
		start := m.Span.Start - 40
		if start < 0 {
			start = 0
		}
		// Attributed opinions are properly framed, skip them
		if attributionRe.MatchString(text[start:m.Span.Start]) {
			continue
		}
		issues = append(issues, model.Issue{
			Type:        model.IssueSubjective,
			Description: fmt.Sprintf("Subjective language presented as fact: '%s'", m.Text),
			Confidence:  0.65,
			Spans:       []model.Span{m.Span},
		})
	}
	return issues
}

// politicalResult is the internal leaning estimate
type politicalResult struct {
	Leaning    model.Leaning
	Confidence float64
	Spans      []model.Span
}

// detectPoliticalLeaning compares left/right term frequency.
// Fewer than 3 total matches only supports a slight-leaning call; from 3
// up, a >2x imbalance is a full leaning, a >0.3 normalized gap is
// center-left/right, anything else is balanced center.
func (d *Detector) detectPoliticalLeaning(text string) politicalResult {
	result := politicalResult{Leaning: model.LeaningNeutral}

	leftMatches := d.left.Find(text)
	rightMatches := d.right.Find(text)
	leftCount := len(leftMatches)
	rightCount := len(rightMatches)
	total := leftCount + rightCount
	if total == 0 {
		return result
	}

	leftSpans := tables.Spans(leftMatches)
	rightSpans := tables.Spans(rightMatches)

	if total < 3 {
		if leftCount > rightCount {
			result.Leaning = model.LeaningSlightLeft
			result.Confidence = 0.4
			result.Spans = leftSpans
		} else if rightCount > leftCount {
			result.Leaning = model.LeaningSlightRight
			result.Confidence = 0.4
			result.Spans = rightSpans
		}
		return result
	}

	gap := math.Abs(float64(leftCount-rightCount)) / float64(total)
	switch {
	case leftCount > rightCount*2:
		result.Leaning = model.LeaningLeft
		result.Confidence = math.Min(0.9, 0.5+gap*0.5)
		result.Spans = leftSpans
	case rightCount > leftCount*2:
		result.Leaning = model.LeaningRight
		result.Confidence = math.Min(0.9, 0.5+gap*0.5)
		result.Spans = rightSpans
	case gap > 0.3:
		if leftCount > rightCount {
			result.Leaning = model.LeaningCenterLeft
			result.Spans = leftSpans
		} else {
			result.Leaning = model.LeaningCenterRight
			result.Spans = rightSpans
		}
		result.Confidence = 0.6
	default:
		result.Leaning = model.LeaningCenter
		result.Confidence = 0.7
		result.Spans = append(leftSpans, rightSpans...)
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
