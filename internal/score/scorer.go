// Package score turns merged detector output into a single credibility
// score with confidence and a narrative summary.
package score

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ppiankov/trustlens/internal/model"
)

// defaultIssueWeights are per-issue-type penalty weights; unknown types
// fall back to 2.
var defaultIssueWeights = map[model.IssueType]float64{
	model.IssueLoadedLanguage: 3,
	model.IssueGeneralization: 4,
	model.IssueExaggeration:   3,
	model.IssueSubjective:     2,
	model.IssuePoliticalBias:  3,

	model.IssueEmotionalTrigger: 3,
	model.IssueUrgency:          4,
	model.IssueFear:             5,
	model.IssueTypography:       2,

	model.IssueFalseClaim:        10,
	model.IssueExternalFactCheck: 8,
	model.IssueUncitedStatistic:  5,

	model.IssueClickbait:      5,
	model.IssuePropaganda:     6,
	model.IssueSensationalism: 4,
	model.IssueHedging:        2,
	model.IssuePassiveVoice:   1,
}

// Scorer calculates credibility scores from analysis results
type Scorer struct {
	weights map[model.IssueType]float64
	factors model.MetadataFactors
}

// NewScorer creates a scorer; cfg overrides are merged over the defaults
func NewScorer(cfg model.ScoringConfig) *Scorer {
	weights := make(map[model.IssueType]float64, len(defaultIssueWeights))
	for k, v := range defaultIssueWeights {
		weights[k] = v
	}
	for k, v := range cfg.IssueWeights {
		weights[model.IssueType(k)] = v
	}

	factors := cfg.MetadataFactors
	if factors == (model.MetadataFactors{}) {
		factors = model.MetadataFactors{
			BiasLevel:             0.2,
			EmotionalManipulation: 0.2,
			FactualAccuracy:       0.4,
			LinguisticPatterns:    0.2,
		}
	}

	return &Scorer{weights: weights, factors: factors}
}

// Calculate derives the credibility score: a base of 100 minus
// weight-times-confidence per issue, minus level-scaled metadata
// penalties. Factual accuracy is the one asymmetric term: it is a bonus,
// added only when the fact checker actually produced a signal.
func (s *Scorer) Calculate(result *model.AnalysisResult) model.ScoreResult {
	base := 100.0

	penalties := make(map[model.IssueType]float64)
	var penaltyOrder []model.IssueType

	for _, issue := range result.Issues {
		weight, ok := s.weights[issue.Type]
		if !ok {
			weight = 2
		}
		penalty := weight * issue.Confidence
		if _, seen := penalties[issue.Type]; !seen {
			penaltyOrder = append(penaltyOrder, issue.Type)
		}
		penalties[issue.Type] += penalty
		base -= penalty
	}

	meta := result.Metadata
	if meta.Bias != nil {
		base -= meta.Bias.OverallBiasLevel * 15 * s.factors.BiasLevel
	}
	if meta.EmotionalManipulation != nil {
		base -= meta.EmotionalManipulation.EmotionalManipulationScore * 15 * s.factors.EmotionalManipulation
	}

	var accuracy *float64
	if meta.FactChecking != nil {
		accuracy = meta.FactChecking.OverallFactualAccuracy
	}
	if accuracy != nil {
		base += *accuracy * 20 * s.factors.FactualAccuracy
	}

	if meta.LinguisticPatterns != nil {
		// Hedging and passive voice stay out of this aggregate
		lp := meta.LinguisticPatterns
		level := (lp.ClickbaitLevel + lp.PropagandaLevel + lp.SensationalismLevel) / 3
		base -= level * 15 * s.factors.LinguisticPatterns
	}

	final := math.Max(0, math.Min(100, base))

	signals := len(result.Issues)
	if accuracy != nil {
		signals++
	}
	confidence := math.Min(0.95, 0.5+float64(signals)/20*0.45)

	return model.ScoreResult{
		Score:          int(math.Round(final)),
		Confidence:     math.Round(confidence*100) / 100,
		Summary:        s.summarize(final, penalties, penaltyOrder, result),
		IssuePenalties: penalties,
	}
}

// summarize builds the human-readable explanation: tier, top concerns,
// claim tallies, leaning and emotion notes, and a recommendation.
func (s *Scorer) summarize(score float64, penalties map[model.IssueType]float64, order []model.IssueType, result *model.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "This content has %s credibility (score: %d/100). ", tier(score), int(math.Round(score)))

	if len(penalties) > 0 {
		// Top 3 issue types by penalty, ties kept in encounter order
		sorted := make([]model.IssueType, len(order))
		copy(sorted, order)
		sort.SliceStable(sorted, func(i, j int) bool {
			return penalties[sorted[i]] > penalties[sorted[j]]
		})
		if len(sorted) > 3 {
			sorted = sorted[:3]
		}

		names := make([]string, len(sorted))
		for i, t := range sorted {
			names[i] = titleCase(strings.ReplaceAll(string(t), "_", " "))
		}
		b.WriteString("Major concerns include: " + strings.Join(names, ", ") + ". ")
	}

	if fc := result.Metadata.FactChecking; fc != nil && fc.OverallFactualAccuracy != nil && fc.ClaimsDetected > 0 {
		fmt.Fprintf(&b, "Factual claims analysis: %d verified, %d refuted out of %d detected claims. ",
			fc.ClaimsVerified, fc.ClaimsRefuted, fc.ClaimsDetected)
	}

	if bias := result.Metadata.Bias; bias != nil && bias.PoliticalLeaning != "" && bias.OverallBiasLevel > 0.3 {
		fmt.Fprintf(&b, "The content shows %s-leaning bias. ", bias.PoliticalLeaning)
	}

	if em := result.Metadata.EmotionalManipulation; em != nil && em.EmotionalManipulationScore > 0.4 && em.DominantEmotion != "" {
		fmt.Fprintf(&b, "The content uses %s-based emotional appeals. ", em.DominantEmotion)
	}

	switch {
	case score >= 75:
		b.WriteString("This content appears to be generally reliable.")
	case score >= 60:
		b.WriteString("Consider verifying key claims with additional sources.")
	case score >= 40:
		b.WriteString("Approach this content with skepticism and verify with trusted sources.")
	default:
		b.WriteString("This content shows significant credibility issues and should be treated with caution.")
	}

	return strings.TrimSpace(b.String())
}

func tier(score float64) string {
	switch {
	case score >= 90:
		return "very high"
	case score >= 75:
		return "high"
	case score >= 60:
		return "moderate"
	case score >= 40:
		return "low"
	default:
		return "very low"
	}
}

// Badge maps a score to a short label for UI consumption
func Badge(score int) string {
	switch {
	case score >= 90:
		return "Highly Credible"
	case score >= 75:
		return "Credible"
	case score >= 60:
		return "Somewhat Credible"
	case score >= 40:
		return "Low Credibility"
	default:
		return "Very Low Credibility"
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
