package mock

import "github.com/fwojciec/filmrank"

var _ filmrank.HTMLParser = (*HTMLParser)(nil)

// HTMLParser is a mock implementation of filmrank.HTMLParser.
type HTMLParser struct {
	ParseFn func(html string) (filmrank.Node, error)
}

func (p *HTMLParser) Parse(html string) (filmrank.Node, error) {
	return p.ParseFn(html)
}
