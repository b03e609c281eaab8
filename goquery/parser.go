// Package goquery implements filmrank.HTMLParser using PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/filmrank"
)

// Compile-time interface verification.
var (
	_ filmrank.HTMLParser = (*Parser)(nil)
	_ filmrank.Node       = (*Node)(nil)
)

// Parser parses HTML into goquery-backed nodes.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html and returns the document root.
func (p *Parser) Parse(html string) (filmrank.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, filmrank.Errorf(filmrank.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Node{sel: doc.Selection}, nil
}

// Node wraps a single-element goquery selection.
type Node struct {
	sel *goquery.Selection
}

// Find returns every descendant matching selector.
func (n *Node) Find(selector string) []filmrank.Node {
	matches := n.sel.Find(selector)
	nodes := make([]filmrank.Node, 0, matches.Length())
	matches.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// First returns the first descendant matching selector.
func (n *Node) First(selector string) (filmrank.Node, bool) {
	match := n.sel.Find(selector).First()
	if match.Length() == 0 {
		return nil, false
	}
	return &Node{sel: match}, true
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text returns the text content of the node.
func (n *Node) Text() string {
	return n.sel.Text()
}
