package facts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ppiankov/trustlens/internal/cache"
	"github.com/ppiankov/trustlens/internal/model"
	"golang.org/x/time/rate"
)

// googleResponse mirrors the Fact Check Tools claims:search payload
type googleResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		ClaimDate   string `json:"claimDate"`
		ClaimReview []struct {
			Publisher struct {
				Name string `json:"name"`
				Site string `json:"site"`
			} `json:"publisher"`
			URL           string `json:"url"`
			ReviewDate    string `json:"reviewDate"`
			TextualRating string `json:"textualRating"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// disputed ratings are checked first: textual ratings like "Not true"
// or "Half True" contain "true" and must not count as verified
var disputedRatings = []string{
	"false", "pants on fire", "misleading", "incorrect",
	"not true", "half true", "mixture", "unproven", "distort",
}

var verifiedRatings = []string{"true", "correct", "accurate"}

// GoogleProvider queries the Google Fact Check Tools API.
// Lookups are rate limited and cached; every failure mode collapses to
// "not found" so the analysis never depends on the API being up.
type GoogleProvider struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	limiter    *rate.Limiter
	cache      cache.Cache
}

// NewGoogleProvider creates a provider from config. The cache may be nil.
func NewGoogleProvider(cfg model.FactCheckConfig, responseCache cache.Cache) *GoogleProvider {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}
	return &GoogleProvider{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		cache:      responseCache,
	}
}

// Check looks up a claim. Returns (nil, nil) when no review exists.
func (p *GoogleProvider) Check(ctx context.Context, claim string) (*CheckResult, error) {
	body, err := p.fetch(ctx, claim)
	if err != nil {
		return nil, err
	}

	var parsed googleResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(parsed.Claims) == 0 || len(parsed.Claims[0].ClaimReview) == 0 {
		return nil, nil
	}

	review := parsed.Claims[0].ClaimReview[0]
	return &CheckResult{
		Verified:      isVerifiedRating(review.TextualRating),
		Confidence:    0.85,
		SourceURL:     review.URL,
		PublishedDate: review.ReviewDate,
	}, nil
}

func (p *GoogleProvider) fetch(ctx context.Context, claim string) ([]byte, error) {
	key := cache.FactCheckKey(claim)
	if p.cache != nil {
		if body, found := p.cache.Get(key); found {
			return body, nil
		}
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s?query=%s&key=%s", p.endpoint, url.QueryEscape(claim), url.QueryEscape(p.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fact check request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fact check API status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if p.cache != nil {
		_ = p.cache.Set(key, body, 0)
	}
	return body, nil
}

func isVerifiedRating(rating string) bool {
	lower := strings.ToLower(rating)
	for _, d := range disputedRatings {
		if strings.Contains(lower, d) {
			return false
		}
	}
	for _, v := range verifiedRatings {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}
