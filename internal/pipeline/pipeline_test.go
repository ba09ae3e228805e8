package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/trustlens/internal/model"
)

func testPipeline() *Pipeline {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.HTTP.RespectRobots = false
	return NewPipeline(cfg)
}

func TestPipeline_AnalyzeText(t *testing.T) {
	p := testPipeline()

	result := p.AnalyzeText(context.Background(), "Obviously everyone knows this terrifying crisis matters.", model.DefaultOptions())

	if len(result.Issues) == 0 {
		t.Error("Expected issues for manipulative text")
	}
	if result.CredibilityScore >= 100 {
		t.Errorf("Expected a reduced score, got %d", result.CredibilityScore)
	}
	if result.URL != "" {
		t.Errorf("Expected no URL on the text path, got %q", result.URL)
	}
}

func TestPipeline_AnalyzeURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Shock Report</title></head><body><article>
<p>SHOCKING: everyone knows this terrifying crisis! Act now before it's too late!</p>
</article></body></html>`))
	}))
	defer server.Close()

	p := testPipeline()

	result := p.AnalyzeURL(context.Background(), server.URL+"/story", model.DefaultOptions())

	if result.Error != "" {
		t.Fatalf("Unexpected error: %s", result.Error)
	}
	if result.Title != "Shock Report" {
		t.Errorf("Expected page title on the result, got %q", result.Title)
	}
	if result.Domain == "" {
		t.Error("Expected the domain to be set")
	}
	if len(result.Issues) == 0 {
		t.Error("Expected issues from the article text")
	}
}

func TestPipeline_ExcessiveSentencesThroughCore(t *testing.T) {
	p := testPipeline()

	text := "The terrifying, deadly crisis keeps growing. The report was published on Tuesday."
	flagged := p.Analyzer().Emotion().ExcessiveSentences(text)

	if len(flagged) != 1 {
		t.Fatalf("Expected 1 flagged sentence, got %d: %v", len(flagged), flagged)
	}
	if !strings.Contains(flagged[0], "terrifying") {
		t.Errorf("Expected the trigger-heavy sentence, got %q", flagged[0])
	}
}

func TestPipeline_AnalyzeURL_FetchFailure(t *testing.T) {
	p := testPipeline()

	result := p.AnalyzeURL(context.Background(), "http://127.0.0.1:1/unreachable", model.DefaultOptions())

	if result.Error == "" {
		t.Fatal("Expected an error for an unreachable host")
	}
	if result.CredibilityScore != 0 {
		t.Errorf("Expected score 0 on fetch failure, got %d", result.CredibilityScore)
	}
	if len(result.Issues) != 0 {
		t.Errorf("Expected the core to be skipped on fetch failure, got %d issues", len(result.Issues))
	}
}

func TestRenderer_JSONAndMarkdown(t *testing.T) {
	p := testPipeline()
	result := p.AnalyzeText(context.Background(), "Obviously everyone knows this terrifying crisis matters.", model.DefaultOptions())

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	mdPath := filepath.Join(dir, "report.md")

	r := NewRenderer(true)
	if err := r.RenderJSON(result, jsonPath); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}
	if err := r.RenderMarkdown(result, mdPath); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	jsonData, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read JSON: %v", err)
	}
	if !strings.Contains(string(jsonData), `"credibility_score"`) {
		t.Error("Expected credibility_score in JSON output")
	}

	mdData, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read Markdown: %v", err)
	}
	md := string(mdData)
	if !strings.Contains(md, "# Credibility Report") {
		t.Error("Expected report heading in Markdown output")
	}
	if !strings.Contains(md, "## Issues") {
		t.Error("Expected issues section in Markdown output")
	}
	if !strings.Contains(md, "Generated by TrustLens") {
		t.Error("Expected footer when enabled")
	}
}

func TestRenderer_MarkdownNoFooter(t *testing.T) {
	result := &model.AnalysisResult{Summary: "fine", CredibilityScore: 100}
	mdPath := filepath.Join(t.TempDir(), "report.md")

	r := NewRenderer(false)
	if err := r.RenderMarkdown(result, mdPath); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read Markdown: %v", err)
	}
	if strings.Contains(string(data), "Generated by TrustLens") {
		t.Error("Expected no footer when disabled")
	}
}

func TestRenderer_HTMLHighlight(t *testing.T) {
	p := testPipeline()
	text := "Obviously everyone knows this."
	result := p.AnalyzeText(context.Background(), text, model.DefaultOptions())

	htmlPath := filepath.Join(t.TempDir(), "report.html")
	r := NewRenderer(true)
	if err := r.RenderHTML(text, result, htmlPath); err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	data, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("read HTML: %v", err)
	}
	if !strings.Contains(string(data), "highlight-") {
		t.Error("Expected highlight markup in HTML output")
	}
}
