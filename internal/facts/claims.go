package facts

import (
	"regexp"
	"sort"
	"strings"
)

// Claim is a candidate factual assertion with its location in the text
type Claim struct {
	Text  string
	Start int
	End   int
}

// Pattern families for claim-bearing sentences, in resolution order:
// statistics, attributed research, causation, date-anchored statements.
var claimPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?(?:\s*%)?\s*(?:of|in|people|Americans|users|voters|patients).*?[.!?])`),
	regexp.MustCompile(`(?i)([^.!?]*?(?:study shows|research indicates|scientists discovered|experts agree|data reveals|report states).*?[.!?])`),
	regexp.MustCompile(`(?i)([^.!?]*?causes.*?[.!?])`),
	regexp.MustCompile(`(?i)([^.!?]*?(?:in \d{4}|last year|last month|last week|yesterday|today).*?[.!?])`),
}

// ExtractClaims finds candidate factual claims and resolves overlaps
// left to right, keeping the longer claim on any overlap.
func ExtractClaims(text string) []Claim {
	var claims []Claim
	for _, re := range claimPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			claimText := strings.TrimSpace(text[loc[0]:loc[1]])
			if len(claimText) > 10 {
				claims = append(claims, Claim{Text: claimText, Start: loc[0], End: loc[1]})
			}
		}
	}

	sort.SliceStable(claims, func(i, j int) bool { return claims[i].Start < claims[j].Start })

	var deduped []Claim
	for _, claim := range claims {
		if len(deduped) == 0 || claim.Start >= deduped[len(deduped)-1].End {
			deduped = append(deduped, claim)
			continue
		}
		last := deduped[len(deduped)-1]
		if claim.End-claim.Start > last.End-last.Start {
			deduped[len(deduped)-1] = claim
		}
	}
	return deduped
}
