package ai

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags are elements that delimit paragraphs when flattening HTML.
var blockTags = map[string]bool{
	"p":          true,
	"div":        true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"ul":         true,
	"ol":         true,
	"li":         true,
	"table":      true,
	"tr":         true,
	"blockquote": true,
	"section":    true,
	"article":    true,
	"header":     true,
	"footer":     true,
	"aside":      true,
	"main":       true,
	"figure":     true,
	"figcaption": true,
	"pre":        true,
	"dl":         true,
	"dt":         true,
	"dd":         true,
	"hr":         true,
}

// HTMLToText flattens HTML content to plain text, separating block
// elements with blank lines so paragraph boundaries survive into
// chunking and prompt building. Unparseable content comes back as-is.
func HTMLToText(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return content
	}
	var b strings.Builder
	flattenNode(doc, &b)
	return joinBlocks(b.String())
}

func flattenNode(n *html.Node, b *strings.Builder) {
	if n == nil {
		return
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template", "head", "meta", "link", "title":
			return
		case "br":
			b.WriteString("\n")
			return
		}
	}

	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteString(" ")
			}
			b.WriteString(text)
		}
	}

	block := n.Type == html.ElementNode && blockTags[n.Data]
	if block && b.Len() > 0 {
		b.WriteString("\n\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flattenNode(c, b)
	}
	if block {
		b.WriteString("\n\n")
	}
}

// joinBlocks merges the flattened lines into paragraphs: consecutive
// lines join with spaces, blank lines separate paragraphs.
func joinBlocks(s string) string {
	var paragraphs []string
	var current []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}
	return strings.Join(paragraphs, "\n\n")
}
