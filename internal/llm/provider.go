// Package llm generates an optional narrative addendum for a finished
// analysis. The addendum is produced after scoring and never feeds back
// into the credibility score.
package llm

import (
	"context"
	"fmt"

	"github.com/ppiankov/trustlens/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Narrate generates a prose reading of the analysis result
	Narrate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// BuildPrompt constructs the narration prompt. The model only sees the
// already-computed result, so it cannot influence detection or scoring.
func BuildPrompt(result *model.AnalysisResult) string {
	issuesByType := make(map[model.IssueType]int)
	var order []model.IssueType
	for _, issue := range result.Issues {
		if issuesByType[issue.Type] == 0 {
			order = append(order, issue.Type)
		}
		issuesByType[issue.Type]++
	}

	prompt := fmt.Sprintf(`You are writing a short reader's note for a credibility analysis.

RULES:
1. Describe only the findings below. Do not add facts, sources, or judgments of your own.
2. Never assert that the content is true or false - only describe the detected signals.
3. Keep it under 200 words, plain prose.

Findings:
- Credibility score: %d/100 (confidence %.2f)
- Summary: %s
- Detected issues:
`, result.CredibilityScore, result.Confidence, result.Summary)

	for _, t := range order {
		prompt += fmt.Sprintf("  - %s: %d occurrence(s)\n", t, issuesByType[t])
	}
	if len(order) == 0 {
		prompt += "  (none)\n"
	}
	return prompt
}
