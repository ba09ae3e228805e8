package tables

import (
	"fmt"
	"os"
	"regexp"

	"github.com/ppiankov/trustlens/internal/model"
)

// Match is one pattern hit with its location
type Match struct {
	Span model.Span
	Text string
}

// Matcher runs an ordered list of compiled patterns over text.
// Results keep pattern order first, then offset order within a pattern,
// which makes detector output deterministic for identical input.
type Matcher struct {
	res []*regexp.Regexp
}

// CompileWords compiles phrases as case-insensitive whole-word patterns
func CompileWords(terms []string) *Matcher {
	m := &Matcher{}
	for _, term := range terms {
		m.res = append(m.res, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return m
}

// CompileRegexes compiles raw regex fragments case-insensitively.
// A pattern that fails to compile is skipped with a warning so one
// corrupt entry cannot abort the whole analysis.
func CompileRegexes(patterns []string) *Matcher {
	m := &Matcher{}
	for _, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping invalid pattern %q: %v\n", p, err)
			continue
		}
		m.res = append(m.res, re)
	}
	return m
}

// Find returns all matches of all patterns in text
func (m *Matcher) Find(text string) []Match {
	var matches []Match
	for _, re := range m.res {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			matches = append(matches, Match{
				Span: model.Span{Start: loc[0], End: loc[1]},
				Text: text[loc[0]:loc[1]],
			})
		}
	}
	return matches
}

// CountMatching returns how many patterns match text at least once
func (m *Matcher) CountMatching(text string) int {
	count := 0
	for _, re := range m.res {
		if re.MatchString(text) {
			count++
		}
	}
	return count
}

// Any reports whether any pattern matches text
func (m *Matcher) Any(text string) bool {
	for _, re := range m.res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Spans extracts just the spans from a match list
func Spans(matches []Match) []model.Span {
	spans := make([]model.Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, m.Span)
	}
	return spans
}
