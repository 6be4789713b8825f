package irtoy

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Match sequences of letters or digits as "words"
var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// ExtractText returns the visible words of an HTML page joined by single
// spaces. Text under <script> or <style> is ignored.
func ExtractText(body []byte) string {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var words []string

	// track a "skip depth" to ignore text under <script> or <style>
	var skipDepth int

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		hidden := n.Type == html.ElementNode &&
			(strings.EqualFold(n.Data, "script") || strings.EqualFold(n.Data, "style"))
		if hidden {
			skipDepth++
		}
		if skipDepth == 0 && n.Type == html.TextNode {
			words = append(words, wordRe.FindAllString(n.Data, -1)...)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if hidden {
			skipDepth--
		}
	}
	walk(root)
	return strings.Join(words, " ")
}
