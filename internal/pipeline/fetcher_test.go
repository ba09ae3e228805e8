package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/trustlens/internal/cache"
	"github.com/ppiankov/trustlens/internal/model"
)

func testHTTPConfig() model.HTTPConfig {
	return model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "TrustLens-Test/0.1",
		MaxBodyBytes: 1_000_000,
	}
}

const articlePage = `<!DOCTYPE html>
<html>
<head>
<title>Quarterly Budget Report</title>
<meta name="description" content="The council's quarterly budget report.">
</head>
<body>
<nav>Home | About</nav>
<article>
<h1>Budget approved</h1>
<p>The council approved the quarterly budget on Tuesday.</p>
<script>trackPageView();</script>
</article>
</body>
</html>`

func TestFetcher_FetchArticle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("User-Agent"); got != "TrustLens-Test/0.1" {
			t.Errorf("Unexpected User-Agent: %q", got)
		}
		_, _ = w.Write([]byte(articlePage))
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(), nil)

	doc, err := f.Fetch(context.Background(), server.URL+"/article")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if doc.Title != "Quarterly Budget Report" {
		t.Errorf("Unexpected title: %q", doc.Title)
	}
	if doc.MetaDescription != "The council's quarterly budget report." {
		t.Errorf("Unexpected meta description: %q", doc.MetaDescription)
	}
	if !strings.Contains(doc.Text, "approved the quarterly budget") {
		t.Errorf("Expected article text, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "trackPageView") {
		t.Errorf("Expected scripts to be stripped, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "Home | About") {
		t.Errorf("Expected navigation outside the article to be skipped, got %q", doc.Text)
	}
	if doc.Domain == "" {
		t.Error("Expected the domain to be set")
	}
}

func TestFetcher_InvalidURL(t *testing.T) {
	f := NewFetcher(testHTTPConfig(), nil)

	if _, err := f.Fetch(context.Background(), "not-a-url"); err == nil {
		t.Error("Expected an error for a schemeless URL")
	}
	if _, err := f.Fetch(context.Background(), ""); err == nil {
		t.Error("Expected an error for an empty URL")
	}
}

func TestFetcher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(), nil)

	if _, err := f.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected an error for a 500 response")
	}
}

func TestFetcher_RespectsRobots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		_, _ = w.Write([]byte(articlePage))
	}))
	defer server.Close()

	cfg := testHTTPConfig()
	cfg.RespectRobots = true
	f := NewFetcher(cfg, nil)

	if _, err := f.Fetch(context.Background(), server.URL+"/private/page"); err == nil {
		t.Error("Expected a robots.txt disallow to block the fetch")
	}
	if _, err := f.Fetch(context.Background(), server.URL+"/public/page"); err != nil {
		t.Errorf("Expected allowed paths to fetch, got %v", err)
	}
}

func TestFetcher_UsesCache(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(articlePage))
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(), cache.NewMemoryCache(time.Minute, time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := f.Fetch(context.Background(), server.URL+"/article"); err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
	}
	if requests != 1 {
		t.Errorf("Expected 1 upstream request with caching, got %d", requests)
	}
}

func TestFetcher_LimitsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>" + strings.Repeat("a", 10_000) + "</body></html>"))
	}))
	defer server.Close()

	cfg := testHTTPConfig()
	cfg.MaxBodyBytes = 100
	f := NewFetcher(cfg, nil)

	doc, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(doc.Text) > 200 {
		t.Errorf("Expected the body read to be capped, got %d bytes of text", len(doc.Text))
	}
}
