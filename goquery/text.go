package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// textFragments returns the text nodes below sel in document order, each
// trimmed of surrounding whitespace. Whitespace-only nodes left by markup
// indentation are dropped.
func textFragments(sel *goquery.Selection) []string {
	var fragments []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				fragments = append(fragments, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return fragments
}
