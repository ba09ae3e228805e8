package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/trustlens/internal/model"
	"github.com/ppiankov/trustlens/internal/render"
	"github.com/ppiankov/trustlens/internal/score"
)

// Renderer writes analysis results as JSON, Markdown, or highlighted HTML
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full result as indented JSON
func (r *Renderer) RenderJSON(result *model.AnalysisResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(result *model.AnalysisResult, path string) error {
	var b strings.Builder

	title := result.Title
	if title == "" {
		title = "Text Analysis"
	}
	fmt.Fprintf(&b, "# Credibility Report: %s\n\n", title)

	if result.URL != "" {
		fmt.Fprintf(&b, "**Source:** %s\n\n", result.URL)
	}
	fmt.Fprintf(&b, "**Analyzed:** %s\n\n", result.Timestamp.Format("2006-01-02 15:04:05 UTC"))

	if result.Error != "" {
		fmt.Fprintf(&b, "## Error\n\n%s\n", result.Error)
		return os.WriteFile(path, []byte(b.String()), 0644)
	}

	fmt.Fprintf(&b, "## Score: %d/100 %s\n\n", result.CredibilityScore, score.Badge(result.CredibilityScore))
	fmt.Fprintf(&b, "Confidence: %.2f\n\n", result.Confidence)
	fmt.Fprintf(&b, "%s\n\n", result.Summary)

	if len(result.Issues) > 0 {
		fmt.Fprintf(&b, "## Issues (%d)\n\n", len(result.Issues))
		fmt.Fprintf(&b, "| Type | Confidence | Description |\n")
		fmt.Fprintf(&b, "|------|------------|-------------|\n")
		for _, issue := range result.Issues {
			fmt.Fprintf(&b, "| %s | %.2f | %s |\n",
				issue.Type, issue.Confidence,
				strings.ReplaceAll(issue.Description, "|", "\\|"))
		}
		b.WriteString("\n")
	}

	if len(result.Sources) > 0 {
		fmt.Fprintf(&b, "## Fact-Check Sources (%d)\n\n", len(result.Sources))
		for _, src := range result.Sources {
			status := "refuted"
			if src.Verified {
				status = "verified"
			}
			fmt.Fprintf(&b, "- [%s] %q", status, src.Claim)
			if src.FactCheckURL != "" {
				fmt.Fprintf(&b, " (%s)", src.FactCheckURL)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	r.renderMetadata(&b, result)

	if result.LLM != nil {
		fmt.Fprintf(&b, "## Narrative (%s/%s)\n\n", result.LLM.Provider, result.LLM.Model)
		fmt.Fprintf(&b, "> Generated after scoring. Does not affect the score.\n\n")
		fmt.Fprintf(&b, "%s\n\n", result.LLM.SummaryMD)
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("Generated by TrustLens. Scores describe signal density, not truth.\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

func (r *Renderer) renderMetadata(b *strings.Builder, result *model.AnalysisResult) {
	md := result.Metadata
	if md.Bias == nil && md.EmotionalManipulation == nil && md.FactChecking == nil && md.LinguisticPatterns == nil {
		return
	}

	b.WriteString("## Detector Metadata\n\n")

	if m := md.Bias; m != nil {
		fmt.Fprintf(b, "**Bias** — level %.2f", m.OverallBiasLevel)
		if m.PoliticalLeaning != "" {
			fmt.Fprintf(b, ", leaning %s (%.2f)", m.PoliticalLeaning, m.PoliticalLeaningConfidence)
		}
		if len(m.BiasTypesDetected) > 0 {
			fmt.Fprintf(b, ", types: %s", strings.Join(m.BiasTypesDetected, ", "))
		}
		b.WriteString("\n\n")
	}
	if m := md.EmotionalManipulation; m != nil {
		fmt.Fprintf(b, "**Emotion** — manipulation %.2f, intensity %.2f", m.EmotionalManipulationScore, m.EmotionalIntensity)
		if m.DominantEmotion != "" {
			fmt.Fprintf(b, ", dominant: %s", m.DominantEmotion)
		}
		b.WriteString("\n\n")
	}
	if m := md.FactChecking; m != nil {
		fmt.Fprintf(b, "**Facts** — %d claims, %d verified, %d refuted", m.ClaimsDetected, m.ClaimsVerified, m.ClaimsRefuted)
		if m.OverallFactualAccuracy != nil {
			fmt.Fprintf(b, ", accuracy %.2f", *m.OverallFactualAccuracy)
		}
		b.WriteString("\n\n")
	}
	if m := md.LinguisticPatterns; m != nil {
		fmt.Fprintf(b, "**Patterns** — clickbait %.2f, propaganda %.2f, sensationalism %.2f, hedging %.2f\n\n",
			m.ClickbaitLevel, m.PropagandaLevel, m.SensationalismLevel, m.HedgingLevel)
	}
}

// RenderHTML writes the analyzed text with issue spans wrapped in
// highlight markup, inside a minimal standalone page.
func (r *Renderer) RenderHTML(text string, result *model.AnalysisResult, path string) error {
	body := render.Highlight(text, result)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>TrustLens Report</title>\n<style>\n")
	b.WriteString("body { font-family: sans-serif; max-width: 48em; margin: 2em auto; line-height: 1.6; }\n")
	b.WriteString("span[class^=\"highlight-\"] { background: #fde68a; border-bottom: 2px solid #d97706; cursor: help; }\n")
	b.WriteString(".highlight-false-claim, .highlight-external-fact-check { background: #fecaca; border-bottom-color: #dc2626; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>Credibility Score: %d/100</h1>\n", result.CredibilityScore)
	fmt.Fprintf(&b, "<pre style=\"white-space: pre-wrap; font-family: inherit;\">%s</pre>\n", body)
	b.WriteString("</body>\n</html>\n")

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// RenderSummary prints a compact result summary to stdout
func (r *Renderer) RenderSummary(result *model.AnalysisResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  TrustLens Analysis")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()

	if result.Error != "" {
		fmt.Printf("  Error: %s\n\n", result.Error)
		return
	}

	if result.Title != "" {
		fmt.Printf("  Title:      %s\n", result.Title)
	}
	if result.Domain != "" {
		fmt.Printf("  Domain:     %s\n", result.Domain)
	}
	fmt.Printf("  Score:      %d/100 %s\n", result.CredibilityScore, score.Badge(result.CredibilityScore))
	fmt.Printf("  Confidence: %.2f\n", result.Confidence)
	fmt.Printf("  Issues:     %d\n", len(result.Issues))
	fmt.Println()

	if len(result.Issues) > 0 {
		counts := make(map[model.IssueType]int)
		for _, issue := range result.Issues {
			counts[issue.Type]++
		}
		types := make([]model.IssueType, 0, len(counts))
		for t := range counts {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
		for _, t := range types {
			fmt.Printf("    %-28s %d\n", t, counts[t])
		}
		fmt.Println()
	}

	fmt.Printf("  %s\n", result.Summary)
	fmt.Println()
}
