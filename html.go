package filmrank

// HTMLParser turns raw markup into a queryable document.
type HTMLParser interface {
	Parse(html string) (Node, error)
}

// Node is an element (or the document root) of a parsed HTML tree.
type Node interface {
	// Find returns every descendant matching the CSS selector, in document order.
	Find(selector string) []Node

	// First returns the first descendant matching the CSS selector.
	// The bool result is false when nothing matches.
	First(selector string) (Node, bool)

	// Attr returns the named attribute and whether it is present.
	Attr(name string) (string, bool)

	// Text returns the combined text content of the node and its descendants.
	Text() string
}
