package letterboxd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"Watched by 1,234,567 members", 1234567, true},
		{"12 fans", 12, true},
		{"0", 0, true},
		{"no fans yet", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseCount(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestParseRating(t *testing.T) {
	t.Parallel()

	got, ok := parseRating("Average rating 3.92 out of 5")
	assert.True(t, ok)
	assert.InDelta(t, 3.92, got, 1e-9)

	_, ok = parseRating("4 out of 5")
	assert.False(t, ok)
}

func TestParseRunTime(t *testing.T) {
	t.Parallel()

	got, ok := parseRunTime(`<script>var filmData = { id: 1, name: "X", runTime: 95 };</script>`)
	assert.True(t, ok)
	assert.Equal(t, 95, got)

	_, ok = parseRunTime(`<script>var filmData = { id: 1, name: "X" };</script>`)
	assert.False(t, ok)
}

func TestExternalIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tt0034583", imdbID("http://www.imdb.com/title/tt0034583/maindetails"))
	assert.Equal(t, "tt0034583", imdbID("https://www.imdb.com/title/tt0034583/maindetails"))
	assert.Equal(t, "289", tmdbID("https://www.themoviedb.org/movie/289/"))
	assert.Equal(t, "289", tmdbID("https://www.themoviedb.org/movie/289"))
}
