package harvest

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ContentExtractor assembles the plain-text body of an article page.
type ContentExtractor struct {
	bodySelector string
}

func NewContentExtractor(bodySelector string) *ContentExtractor {
	return &ContentExtractor{bodySelector: bodySelector}
}

// Run extracts the article body text from page markup. A page without the
// body container yields an empty string, never an error: enrichment treats
// a missing body as a soft per-item failure.
func (e *ContentExtractor) Run(markup []byte) string {
	if len(markup) == 0 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		slog.Error("Failed to parse article markup", "error", err)
		return ""
	}

	body := doc.Find(e.bodySelector).First()
	if body.Length() == 0 {
		return ""
	}

	return assembleText(body.Nodes[0])
}

// assembleText walks the element's children in document order. Text nodes
// are taken verbatim; inline links contribute their text followed by a
// separating space (with a leading space when the preceding text does not
// already end in whitespace); any other element is assembled recursively
// with the same rule, except script and style elements, which carry no
// article text and are skipped. The result has whitespace runs collapsed
// and is trimmed.
func assembleText(n *html.Node) string {
	var parts []string

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			parts = append(parts, c.Data)
		case c.Type == html.ElementNode && c.Data == "a":
			linkText := strings.TrimSpace(nodeText(c))
			if linkText != "" {
				if len(parts) > 0 && !endsInWhitespace(parts[len(parts)-1]) {
					parts = append(parts, " ")
				}
				parts = append(parts, linkText, " ")
			}
		case c.Type == html.ElementNode:
			if c.Data == "script" || c.Data == "style" {
				continue
			}
			if nested := assembleText(c); nested != "" {
				parts = append(parts, nested, " ")
			}
		}
	}

	return collapseWhitespace(strings.Join(parts, ""))
}

// nodeText concatenates every descendant text node
func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		} else {
			b.WriteString(nodeText(c))
		}
	}
	return b.String()
}

func endsInWhitespace(s string) bool {
	return s != strings.TrimRight(s, " \t\n\r")
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
