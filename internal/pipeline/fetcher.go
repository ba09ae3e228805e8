package pipeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ppiankov/trustlens/internal/cache"
	"github.com/ppiankov/trustlens/internal/model"
	"github.com/ppiankov/trustlens/internal/util"
)

// Document is a fetched article reduced to plain text plus metadata
type Document struct {
	Text            string
	Title           string
	MetaDescription string
	Domain          string
	FinalURL        string
}

// Fetcher retrieves web pages and hands the core a plain-text string.
// The core never sees HTML or the network.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
	cache      cache.Cache
}

// NewFetcher creates a fetcher. htmlCache may be nil to disable caching;
// robots may be nil to skip robots.txt checks.
func NewFetcher(cfg model.HTTPConfig, htmlCache cache.Cache) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
	}
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var robots *util.RobotsChecker
	if cfg.RespectRobots {
		robots = util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		robots:    robots,
		cache:     htmlCache,
	}
}

// Fetch retrieves a URL and extracts its article text
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Document, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL format: %s", rawURL)
	}

	htmlContent, finalURL, err := f.fetchHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := ExtractArticle(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}

	finalParsed, err := url.Parse(finalURL)
	if err != nil {
		finalParsed = parsed
	}

	return &Document{
		Text:            doc.Text,
		Title:           doc.Title,
		MetaDescription: doc.MetaDescription,
		Domain:          finalParsed.Host,
		FinalURL:        finalURL,
	}, nil
}

func (f *Fetcher) fetchHTML(ctx context.Context, rawURL string) (string, string, error) {
	key := cache.FetchKey(rawURL)
	if f.cache != nil {
		if body, found := f.cache.Get(key); found {
			return string(body), rawURL, nil
		}
	}

	if f.robots != nil {
		allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
		if err == nil && !allowed {
			return "", "", fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
		if crawlDelay > 0 {
			select {
			case <-ctx.Done():
				return "", "", ctx.Err()
			case <-time.After(crawlDelay):
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", "", fmt.Errorf("read body: %w", err)
	}

	if f.cache != nil {
		_ = f.cache.Set(key, body, 0)
	}

	return string(body), resp.Request.URL.String(), nil
}
