package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractedDoc is the text view of an HTML page
type ExtractedDoc struct {
	Text            string
	Title           string
	MetaDescription string
}

// ExtractArticle parses HTML and pulls out the readable article text,
// the <title>, and the meta description. Article containers (<article>,
// <main>, #content, .content, .article) are preferred over the whole
// body so navigation chrome stays out of the analysis.
func ExtractArticle(htmlContent string) (*ExtractedDoc, error) {
	root, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	doc := &ExtractedDoc{
		Title:           findTitle(root),
		MetaDescription: findMetaDescription(root),
	}

	container := findArticleContainer(root)
	if container == nil {
		container = findElement(root, "body")
	}
	if container == nil {
		container = root
	}
	doc.Text = extractVisibleText(container)

	return doc, nil
}

// findArticleContainer returns the first article-like element
func findArticleContainer(root *html.Node) *html.Node {
	var found *html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "article", "main":
				found = n
				return
			}
			if attrContains(n, "id", "content") || attrContains(n, "class", "content") || attrContains(n, "class", "article") {
				found = n
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// extractVisibleText collects text nodes, skipping scripts and styles
func extractVisibleText(root *html.Node) string {
	var parts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return strings.Join(parts, "\n")
}

func findTitle(root *html.Node) string {
	title := findElement(root, "title")
	if title == nil || title.FirstChild == nil {
		return ""
	}
	return strings.TrimSpace(title.FirstChild.Data)
}

func findMetaDescription(root *html.Node) string {
	var desc string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if desc != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "meta" {
			if attrValue(n, "name") == "description" {
				desc = attrValue(n, "content")
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return desc
}

func findElement(root *html.Node, name string) *html.Node {
	var found *html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == name {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func attrContains(n *html.Node, key, substr string) bool {
	return strings.Contains(attrValue(n, key), substr)
}
