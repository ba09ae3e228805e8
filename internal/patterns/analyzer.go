// Package patterns detects manipulative linguistic patterns: clickbait,
// propaganda techniques, sensationalism, and excessive hedging or
// passive voice.
package patterns

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/ppiankov/trustlens/internal/model"
	"github.com/ppiankov/trustlens/internal/tables"
)

var (
	capsRunRe = regexp.MustCompile(`\b[A-Z]{3,}\b`)

	// Simplified passive voice heuristic: auxiliary + past participle
	passiveRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:is|are|was|were|be|been|being) (?:\w+ed|(?:brought|caught|done|found|given|held|kept|laid|led|left|lost|made|paid|put|read|said|sent|shown|sold|thought|told|won)) by\b`),
		regexp.MustCompile(`(?i)\b(?:is|are|was|were|be|been|being) (?:\w+ed)\b`),
	}
)

// Analyzer scans text for manipulative linguistic patterns
type Analyzer struct {
	clickbait      *tables.Matcher
	techniques     []string
	propaganda     map[string]*tables.Matcher
	hedging        *tables.Matcher
	sensationalist *tables.Matcher
}

// Result carries the analyzer's issues and metadata
type Result struct {
	Issues   []model.Issue
	Metadata model.PatternMetadata
}

// NewAnalyzer compiles the linguistic pattern tables once
func NewAnalyzer(cfg model.TablesConfig) *Analyzer {
	propagandaTable := tables.LoadTableOrDefault(cfg.PropagandaPath, tables.DefaultPropagandaTechniques())

	a := &Analyzer{
		clickbait:      tables.CompileRegexes(tables.LoadListOrDefault(cfg.ClickbaitPatternsPath, tables.DefaultClickbaitPatterns())),
		techniques:     propagandaTable.Keys(),
		propaganda:     make(map[string]*tables.Matcher),
		hedging:        tables.CompileRegexes(tables.LoadListOrDefault(cfg.HedgingPath, tables.DefaultHedgingPatterns())),
		sensationalist: tables.CompileRegexes(tables.LoadListOrDefault(cfg.SensationalistPath, tables.DefaultSensationalistPatterns())),
	}
	for _, technique := range a.techniques {
		a.propaganda[technique] = tables.CompileRegexes(propagandaTable.Terms(technique))
	}
	return a
}

// Detect scans text for manipulative patterns. Each propaganda technique
// with matches produces its own issue carrying only that technique's spans.
func (a *Analyzer) Detect(text string) Result {
	var result Result
	meta := &result.Metadata

	wordCount := len(strings.Fields(text))
	per100 := func(n int) float64 {
		if wordCount == 0 {
			return 0
		}
		return float64(n) / (float64(wordCount) / 100)
	}

	if matches := a.clickbait.Find(text); len(matches) > 0 {
		result.Issues = append(result.Issues, model.Issue{
			Type:        model.IssueClickbait,
			Description: "Clickbait language detected",
			Confidence:  0.85,
			Spans:       tables.Spans(matches),
		})
		meta.PatternsDetected = append(meta.PatternsDetected, "clickbait")
		meta.ClickbaitLevel = math.Min(1.0, per100(len(matches))/2.0)
	}

	totalPropaganda := 0
	for _, technique := range a.techniques {
		matches := a.propaganda[technique].Find(text)
		if len(matches) == 0 {
			continue
		}
		totalPropaganda += len(matches)
		result.Issues = append(result.Issues, model.Issue{
			Type:        model.IssuePropaganda,
			Description: fmt.Sprintf("Propaganda technique detected: %s", strings.ReplaceAll(technique, "_", " ")),
			Confidence:  0.75,
			Spans:       tables.Spans(matches),
		})
	}
	if totalPropaganda > 0 {
		meta.PatternsDetected = append(meta.PatternsDetected, "propaganda_techniques")
		meta.PropagandaLevel = math.Min(1.0, per100(totalPropaganda)/2.0)
	}

	if matches := a.sensationalist.Find(text); len(matches) > 0 {
		result.Issues = append(result.Issues, model.Issue{
			Type:        model.IssueSensationalism,
			Description: "Sensationalist language detected",
			Confidence:  0.8,
			Spans:       tables.Spans(matches),
		})
		meta.PatternsDetected = append(meta.PatternsDetected, "sensationalist_language")
		meta.SensationalismLevel = math.Min(1.0, per100(len(matches))/3.0)
	}

	// Hedging level is always recorded; it only becomes an issue when
	// density exceeds 5 per 100 words.
	if wordCount > 0 {
		hedgingMatches := a.hedging.Find(text)
		hedgingDensity := per100(len(hedgingMatches))
		meta.HedgingLevel = math.Min(1.0, hedgingDensity/5.0)
		if hedgingDensity > 5.0 {
			result.Issues = append(result.Issues, model.Issue{
				Type:        model.IssueHedging,
				Description: "Excessive use of hedging language",
				Confidence:  0.7,
				Spans:       tables.Spans(hedgingMatches),
			})
			meta.PatternsDetected = append(meta.PatternsDetected, "excessive_hedging")
		}

		passiveSpans := detectPassiveVoice(text)
		if per100(len(passiveSpans)) > 8.0 {
			result.Issues = append(result.Issues, model.Issue{
				Type:        model.IssuePassiveVoice,
				Description: "Excessive use of passive voice",
				Confidence:  0.6,
				Spans:       passiveSpans,
			})
			meta.PatternsDetected = append(meta.PatternsDetected, "excessive_passive_voice")
		}
	}

	return result
}

func detectPassiveVoice(text string) []model.Span {
	var spans []model.Span
	for _, re := range passiveRes {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, model.Span{Start: loc[0], End: loc[1]})
		}
	}
	return spans
}

// HeadlineScore rates a title for clickbait, independent of the full
// pipeline. Each clickbait pattern hit and each title heuristic (question
// ending, trailing ellipsis, ALL-CAPS run) adds 0.2, capped at 1.0.
func (a *Analyzer) HeadlineScore(title string) float64 {
	hits := a.clickbait.CountMatching(title)

	if strings.HasSuffix(title, "?") {
		hits++
	}
	if strings.HasSuffix(title, "...") {
		hits++
	}
	if capsRunRe.MatchString(title) {
		hits++
	}

	return math.Min(1.0, float64(hits)*0.2)
}
