// Package content implements the providers that fetch and render the
// daily post payloads (duas from ahadith.co.uk, hadiths from the
// sunnah.com API).
package content

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// ErrNoContent is returned when a provider fetched a response but could
// not extract a postable item from it.
var ErrNoContent = errors.New("no content found")

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// textOf collects the concatenated text content of a node subtree, with
// runs of whitespace collapsed to single spaces.
func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// stripTags returns the plain text of an HTML fragment.
func stripTags(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return textOf(doc)
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}
