// Package emotion detects emotional manipulation: trigger vocabulary,
// urgency and fear phrasing, and typographic shouting.
package emotion

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/ppiankov/trustlens/internal/model"
	"github.com/ppiankov/trustlens/internal/tables"
)

var (
	allCapsRe     = regexp.MustCompile(`\b[A-Z]{3,}\b`)
	exclamationRe = regexp.MustCompile(`!{2,}|(?:![ \t]*){3,}`)
	sentenceRe    = regexp.MustCompile(`[^.!?]+[.!?]`)
)

// Analyzer scans text for emotional manipulation techniques
type Analyzer struct {
	categories []string
	triggers   map[string]*tables.Matcher
	urgency    *tables.Matcher
	fear       *tables.Matcher
}

// Result carries the analyzer's issues and metadata
type Result struct {
	Issues   []model.Issue
	Metadata model.EmotionMetadata
}

// NewAnalyzer compiles the emotion tables once
func NewAnalyzer(cfg model.TablesConfig) *Analyzer {
	triggerTable := tables.LoadTableOrDefault(cfg.EmotionalTriggersPath, tables.DefaultEmotionalTriggers())

	a := &Analyzer{
		categories: triggerTable.Keys(),
		triggers:   make(map[string]*tables.Matcher),
		urgency:    tables.CompileRegexes(tables.LoadListOrDefault(cfg.UrgencyPatternsPath, tables.DefaultUrgencyPatterns())),
		fear:       tables.CompileRegexes(tables.LoadListOrDefault(cfg.FearPatternsPath, tables.DefaultFearPatterns())),
	}
	for _, category := range a.categories {
		a.triggers[category] = tables.CompileWords(triggerTable.Terms(category))
	}
	return a
}

// Detect scans text for emotional manipulation. Each emotion category
// with matches yields one issue aggregating that category's spans.
func (a *Analyzer) Detect(text string) Result {
	var result Result
	meta := &result.Metadata

	// Emotional trigger vocabulary, one issue per matched category
	counts := make(map[string]int)
	for _, category := range a.categories {
		matches := a.triggers[category].Find(text)
		if len(matches) == 0 {
			continue
		}
		meta.EmotionTypesDetected = append(meta.EmotionTypesDetected, category)
		counts[category] = len(matches)
		result.Issues = append(result.Issues, model.Issue{
			Type:        model.IssueEmotionalTrigger,
			Description: fmt.Sprintf("Emotional language (%s)", category),
			Confidence:  0.75,
			Spans:       tables.Spans(matches),
		})
	}

	// Dominant emotion, ties broken by category order
	dominant := ""
	for _, category := range a.categories {
		if counts[category] > counts[dominant] {
			dominant = category
		}
	}
	meta.DominantEmotion = dominant
	totalTriggers := 0
	for _, n := range counts {
		totalTriggers += n
	}

	if matches := a.urgency.Find(text); len(matches) > 0 {
		meta.EmotionTypesDetected = append(meta.EmotionTypesDetected, "urgency")
		result.Issues = append(result.Issues, model.Issue{
			Type:        model.IssueUrgency,
			Description: "Creates artificial sense of urgency",
			Confidence:  0.8,
			Spans:       tables.Spans(matches),
		})
	}

	if matches := a.fear.Find(text); len(matches) > 0 {
		if !contains(meta.EmotionTypesDetected, "fear") {
			meta.EmotionTypesDetected = append(meta.EmotionTypesDetected, "fear")
		}
		result.Issues = append(result.Issues, model.Issue{
			Type:        model.IssueFear,
			Description: "Uses fear-based manipulation",
			Confidence:  0.85,
			Spans:       tables.Spans(matches),
		})
	}

	result.Issues = append(result.Issues, a.detectTypography(text)...)

	wordCount := len(strings.Fields(text))

	// Techniques per 100 words, 3/100w saturates the score
	score := 0.0
	if wordCount > 0 {
		density := float64(len(result.Issues)) / (float64(wordCount) / 100)
		score = math.Min(1.0, density/3.0)
	}
	meta.EmotionalManipulationScore = round2(score)

	// Intensity blends trigger density with category variety
	triggerDensity := 0.0
	if wordCount > 0 {
		triggerDensity = float64(totalTriggers) / (float64(wordCount) / 100)
	}
	variety := float64(len(meta.EmotionTypesDetected))
	intensity := (triggerDensity/5.0)*0.7 + (variety/4.0)*0.3
	meta.EmotionalIntensity = round2(math.Min(1.0, intensity))

	return result
}

// detectTypography flags ALL-CAPS shouting and exclamation runs as two
// independent issues; both may appear for the same text.
func (a *Analyzer) detectTypography(text string) []model.Issue {
	var issues []model.Issue

	var capsSpans []model.Span
	for _, loc := range allCapsRe.FindAllStringIndex(text, -1) {
		// Short all-caps tokens are usually acronyms, not shouting
		if loc[1]-loc[0] > 5 {
			capsSpans = append(capsSpans, model.Span{Start: loc[0], End: loc[1]})
		}
	}
	if len(capsSpans) > 0 {
		issues = append(issues, model.Issue{
			Type:        model.IssueTypography,
			Description: "Using ALL CAPS for emphasis (shouting)",
			Confidence:  0.7,
			Spans:       capsSpans,
		})
	}

	var exclSpans []model.Span
	for _, loc := range exclamationRe.FindAllStringIndex(text, -1) {
		exclSpans = append(exclSpans, model.Span{Start: loc[0], End: loc[1]})
	}
	if len(exclSpans) > 0 {
		issues = append(issues, model.Issue{
			Type:        model.IssueTypography,
			Description: "Excessive exclamation marks",
			Confidence:  0.75,
			Spans:       exclSpans,
		})
	}

	return issues
}

// ExcessiveSentences returns sentences carrying more than two emotional
// trigger words, for callers that want to quote the worst offenders.
func (a *Analyzer) ExcessiveSentences(text string) []string {
	var excessive []string
	for _, sentence := range sentenceRe.FindAllString(text, -1) {
		count := 0
		for _, category := range a.categories {
			count += len(a.triggers[category].Find(sentence))
		}
		if count > 2 {
			excessive = append(excessive, strings.TrimSpace(sentence))
		}
	}
	return excessive
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
