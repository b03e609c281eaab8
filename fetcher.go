package filmrank

import "context"

// Fetcher retrieves raw page markup from URLs.
type Fetcher interface {
	// Fetch returns the response body of url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
