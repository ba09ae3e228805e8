// Package facts extracts candidate factual claims and resolves them
// against a local claims database and an optional external fact-check
// collaborator.
package facts

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/ppiankov/trustlens/internal/model"
)

// statisticalRe spots numbers and percentages inside a claim
var statisticalRe = regexp.MustCompile(`\d+(?:\.\d+)?(?:\s*%)?`)

// citation markers looked for in a claim and the 100 chars after it
var citationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\([^)]*\d{4}[^)]*\)`),
	regexp.MustCompile(`(?i)according to [^.,;:"]*`),
	regexp.MustCompile(`(?i)cited by [^.,;:"]*`),
	regexp.MustCompile(`(?i)\[[^\]]*\]`),
	regexp.MustCompile(`(?i)https?://\S+`),
	regexp.MustCompile(`(?i)www\.\S+`),
}

// Checker resolves factual claims. Safe for concurrent use: the claim
// database is read-only after construction.
type Checker struct {
	db       *ClaimDB
	provider Provider
	timeout  time.Duration
}

// Result carries the checker's issues, sources, and metadata
type Result struct {
	Issues   []model.Issue
	Sources  []model.Source
	Metadata model.FactMetadata
}

// NewChecker creates a fact checker. provider may be nil, in which case
// every claim not in the local database is treated as unreviewed.
func NewChecker(db *ClaimDB, provider Provider, timeout time.Duration) *Checker {
	if db == nil {
		db = &ClaimDB{}
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Checker{db: db, provider: provider, timeout: timeout}
}

// Check extracts claims from text and resolves each one in order:
// local database first, then the external collaborator, then the
// uncited-statistic heuristic for claims nobody has reviewed.
func (c *Checker) Check(ctx context.Context, text string) Result {
	var result Result
	meta := &result.Metadata

	claims := ExtractClaims(text)
	meta.ClaimsDetected = len(claims)
	if len(claims) == 0 {
		// No claims means no factual-accuracy signal, not perfect accuracy
		return result
	}

	for _, claim := range claims {
		if match, found := c.db.Lookup(claim.Text); found {
			if !match.Verified {
				result.Issues = append(result.Issues, model.Issue{
					Type:        model.IssueFalseClaim,
					Description: fmt.Sprintf("False claim: %q", claim.Text),
					Confidence:  match.Confidence,
					Spans:       []model.Span{{Start: claim.Start, End: claim.End}},
				})
				meta.ClaimsRefuted++
			} else {
				meta.ClaimsVerified++
			}
			result.Sources = append(result.Sources, model.Source{
				Claim:         claim.Text,
				Verified:      match.Verified,
				FactCheckURL:  match.SourceURL,
				PublishedDate: match.PublishedDate,
			})
			continue
		}

		external := c.checkExternal(ctx, claim.Text)
		if external != nil {
			if !external.Verified {
				result.Issues = append(result.Issues, model.Issue{
					Type:        model.IssueExternalFactCheck,
					Description: fmt.Sprintf("Claim disputed by fact-checkers: %q", claim.Text),
					Confidence:  external.Confidence,
					Spans:       []model.Span{{Start: claim.Start, End: claim.End}},
				})
				meta.ClaimsRefuted++
			} else {
				meta.ClaimsVerified++
			}
			result.Sources = append(result.Sources, model.Source{
				Claim:         claim.Text,
				Verified:      external.Verified,
				FactCheckURL:  external.SourceURL,
				PublishedDate: external.PublishedDate,
			})
			continue
		}

		// Unreviewed: statistics without a nearby citation are suspect
		if isStatisticalClaim(claim.Text) && !hasCitation(text, claim.Start, claim.End) {
			result.Issues = append(result.Issues, model.Issue{
				Type:        model.IssueUncitedStatistic,
				Description: fmt.Sprintf("Statistical claim without citation: %q", claim.Text),
				Confidence:  0.7,
				Spans:       []model.Span{{Start: claim.Start, End: claim.End}},
			})
		}
	}

	accuracy := round2(float64(meta.ClaimsVerified) / float64(meta.ClaimsDetected))
	meta.OverallFactualAccuracy = &accuracy

	return result
}

// checkExternal queries the collaborator with a bounded timeout.
// Errors, timeouts, and a nil provider all mean "not found".
func (c *Checker) checkExternal(ctx context.Context, claim string) *CheckResult {
	if c.provider == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.provider.Check(ctx, claim)
	if err != nil {
		return nil
	}
	return result
}

func isStatisticalClaim(claim string) bool {
	return statisticalRe.MatchString(claim)
}

// hasCitation scans the claim itself and the following 100 characters
// for citation markers.
func hasCitation(text string, claimStart, claimEnd int) bool {
	claimText := text[claimStart:claimEnd]
	afterEnd := claimEnd + 100
	if afterEnd > len(text) {
		afterEnd = len(text)
	}
	after := text[claimEnd:afterEnd]

	for _, re := range citationRes {
		if re.MatchString(claimText) || re.MatchString(after) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
