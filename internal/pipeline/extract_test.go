package pipeline

import (
	"strings"
	"testing"
)

func TestExtractArticle_PrefersArticleContainer(t *testing.T) {
	page := `<html><head><title>T</title></head><body>
<div class="sidebar">Trending now</div>
<article><p>The main story text.</p></article>
</body></html>`

	doc, err := ExtractArticle(page)
	if err != nil {
		t.Fatalf("ExtractArticle failed: %v", err)
	}
	if !strings.Contains(doc.Text, "The main story text.") {
		t.Errorf("Expected article text, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "Trending now") {
		t.Errorf("Expected sidebar to be excluded, got %q", doc.Text)
	}
}

func TestExtractArticle_FallsBackToBody(t *testing.T) {
	page := `<html><head><title>T</title></head><body><p>Plain page text.</p></body></html>`

	doc, err := ExtractArticle(page)
	if err != nil {
		t.Fatalf("ExtractArticle failed: %v", err)
	}
	if !strings.Contains(doc.Text, "Plain page text.") {
		t.Errorf("Expected body text, got %q", doc.Text)
	}
}

func TestExtractArticle_ContentClass(t *testing.T) {
	page := `<html><body>
<div class="header">Menu</div>
<div class="content"><p>Story in a content div.</p></div>
</body></html>`

	doc, err := ExtractArticle(page)
	if err != nil {
		t.Fatalf("ExtractArticle failed: %v", err)
	}
	if !strings.Contains(doc.Text, "Story in a content div.") {
		t.Errorf("Expected content div text, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "Menu") {
		t.Errorf("Expected header to be excluded, got %q", doc.Text)
	}
}

func TestExtractArticle_TitleAndMeta(t *testing.T) {
	page := `<html><head>
<title>  Spaced Title  </title>
<meta name="description" content="A description.">
</head><body><p>x</p></body></html>`

	doc, err := ExtractArticle(page)
	if err != nil {
		t.Fatalf("ExtractArticle failed: %v", err)
	}
	if doc.Title != "Spaced Title" {
		t.Errorf("Expected trimmed title, got %q", doc.Title)
	}
	if doc.MetaDescription != "A description." {
		t.Errorf("Unexpected meta description: %q", doc.MetaDescription)
	}
}

func TestExtractArticle_SkipsScriptsAndStyles(t *testing.T) {
	page := `<html><body><article>
<style>.x { color: red; }</style>
<script>var x = 1;</script>
<noscript>enable js</noscript>
<p>Visible text.</p>
</article></body></html>`

	doc, err := ExtractArticle(page)
	if err != nil {
		t.Fatalf("ExtractArticle failed: %v", err)
	}
	for _, hidden := range []string{"color: red", "var x = 1", "enable js"} {
		if strings.Contains(doc.Text, hidden) {
			t.Errorf("Expected %q to be stripped, got %q", hidden, doc.Text)
		}
	}
	if !strings.Contains(doc.Text, "Visible text.") {
		t.Errorf("Expected visible text, got %q", doc.Text)
	}
}

func TestExtractArticle_EmptyDocument(t *testing.T) {
	doc, err := ExtractArticle("")
	if err != nil {
		t.Fatalf("ExtractArticle failed: %v", err)
	}
	if doc.Text != "" {
		t.Errorf("Expected empty text, got %q", doc.Text)
	}
	if doc.Title != "" {
		t.Errorf("Expected empty title, got %q", doc.Title)
	}
}
