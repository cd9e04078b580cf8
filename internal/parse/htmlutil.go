// SPDX-License-Identifier: MIT

// Package parse implements the HTML Parsers (spec §4.2): pure functions
// over already-fetched bytes that never touch the network or disk.
// Parsing walks the DOM with golang.org/x/net/html the way the
// example pack's deputy-expense scraper does, rather than relying on a
// CSS-selector engine (the pack carries none as a direct dependency).
package parse

import (
	"strings"

	"golang.org/x/net/html"
)

// parseDoc parses raw HTML bytes into a DOM tree. Malformed HTML is
// tolerated the way browsers tolerate it; x/net/html never errors on
// ordinary malformed markup.
func parseDoc(body []byte) (*html.Node, error) {
	return html.Parse(strings.NewReader(string(body)))
}

// findAll returns every descendant node (depth-first) matching tag.
// An empty tag matches every element node.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && (tag == "" || node.Data == tag) {
			out = append(out, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// findFirst returns the first descendant matching tag, or nil.
func findFirst(n *html.Node, tag string) *html.Node {
	all := findAll(n, tag)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// attr returns the value of the named attribute on n, or "".
func attr(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether n's class attribute contains class.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// text returns the concatenated, whitespace-collapsed text content of
// n and its descendants.
func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return collapseSpace(sb.String())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cells returns the <td>/<th> children of a <tr> row, in document
// order, tolerant of extra or missing columns (spec §4.2).
func cells(row *html.Node) []*html.Node {
	var out []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			out = append(out, c)
		}
	}
	return out
}

// cellText is a convenience accessor returning the trimmed text of
// cells[i], or "" if the row has fewer columns.
func cellText(row *html.Node, i int) string {
	cs := cells(row)
	if i < 0 || i >= len(cs) {
		return ""
	}
	return text(cs[i])
}

// dataRows returns every <tr> under n that itself contains at least one
// <td> (skipping pure header rows that only contain <th>).
func dataRows(n *html.Node) []*html.Node {
	var out []*html.Node
	for _, tr := range findAll(n, "tr") {
		if len(cells(tr)) > 0 && hasDataCell(tr) {
			out = append(out, tr)
		}
	}
	return out
}

func hasDataCell(tr *html.Node) bool {
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" {
			return true
		}
	}
	return false
}

// links returns every <a> descendant of n as a node; it does not extract
// the href.
func links(n *html.Node) []*html.Node {
	return findAll(n, "a")
}
