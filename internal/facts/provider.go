package facts

import "context"

// CheckResult is an external fact-checker's verdict on a claim
type CheckResult struct {
	Verified      bool
	Confidence    float64
	SourceURL     string
	PublishedDate string
}

// Provider is the external fact-check collaborator. Check returns
// (nil, nil) when no fact check exists for the claim. The checker treats
// errors and timeouts exactly like "not found": the collaborator is
// optional and its absence is never a failure of the analysis.
type Provider interface {
	Check(ctx context.Context, claim string) (*CheckResult, error)
}
