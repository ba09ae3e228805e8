// Package render produces marked-up views of analysis results.
package render

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/ppiankov/trustlens/internal/model"
)

// highlightSpan is one span flattened out of an issue
type highlightSpan struct {
	start       int
	end         int
	issueType   model.IssueType
	description string
}

// Highlight renders text as HTML with every issue span wrapped in a
// <span class="highlight-<type>"> element. Spans are sorted by start
// offset; overlapping spans are resolved first-writer-wins, so a span
// beginning inside an already-emitted one is dropped.
func Highlight(text string, result *model.AnalysisResult) string {
	var spans []highlightSpan
	for _, issue := range result.Issues {
		for _, s := range issue.Spans {
			if s.Start < 0 || s.End > len(text) || s.Start > s.End {
				continue
			}
			spans = append(spans, highlightSpan{
				start:       s.Start,
				end:         s.End,
				issueType:   issue.Type,
				description: issue.Description,
			})
		}
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	lastPos := 0
	for _, span := range spans {
		if span.start < lastPos {
			continue
		}
		b.WriteString(html.EscapeString(text[lastPos:span.start]))

		class := "highlight-" + strings.ReplaceAll(strings.ToLower(string(span.issueType)), "_", "-")
		fmt.Fprintf(&b, `<span class="%s" title="%s">%s</span>`,
			class,
			html.EscapeString(span.description),
			html.EscapeString(text[span.start:span.end]))

		lastPos = span.end
	}
	b.WriteString(html.EscapeString(text[lastPos:]))

	return b.String()
}
