package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// brPattern matches the <br> variants Anilist embeds in descriptions.
var brPattern = regexp.MustCompile(`(?i)<br\s*/?>`)

// StripMarkup reduces provider markup to plain text. Line breaks encoded as
// <br> survive as newlines; every other tag is dropped and HTML entities are
// decoded. Input that fails to parse is returned unchanged rather than lost.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}

	s = brPattern.ReplaceAllString(s, "\n")
	if !strings.ContainsRune(s, '<') && !strings.ContainsRune(s, '&') {
		return strings.TrimSpace(s)
	}

	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return strings.TrimSpace(b.String())
}
