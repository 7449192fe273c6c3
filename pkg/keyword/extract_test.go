package keyword

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords(t *testing.T) {
	frequencies := ExtractKeywords("budget tracker budget app", 3)
	require.NotEmpty(t, frequencies)

	// Highest count first; ties keep first-seen order.
	assert.Equal(t, Frequency{Keyword: "budget", Count: 2}, frequencies[0])
	assert.Equal(t, "tracker", frequencies[1].Keyword)

	keywords := make([]string, 0, len(frequencies))
	for _, f := range frequencies {
		keywords = append(keywords, f.Keyword)
	}
	assert.Contains(t, keywords, "budget tracker")
	assert.Contains(t, keywords, "budget app")
}

func TestExtractKeywordsFiltersStopwordsAndShortWords(t *testing.T) {
	frequencies := ExtractKeywords("the app for you and me", 3)
	for _, f := range frequencies {
		assert.NotContains(t, []string{"the", "for", "and", "you"}, f.Keyword)
		for _, word := range strings.Fields(f.Keyword) {
			assert.GreaterOrEqual(t, len(word), 3)
		}
	}
}

func TestExtractKeywordsCapsAt50(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		b.WriteString("word")
		b.WriteByte(byte('a' + i%26))
		b.WriteString(" ")
	}
	frequencies := ExtractKeywords(b.String(), 3)
	assert.LessOrEqual(t, len(frequencies), 50)
}

func TestExtractKeywordsDefaultMinLength(t *testing.T) {
	// Non-positive min word length falls back to 3.
	frequencies := ExtractKeywords("go is an app builder", 0)
	for _, f := range frequencies {
		for _, word := range strings.Fields(f.Keyword) {
			assert.GreaterOrEqual(t, len(word), 3)
		}
	}
}

func TestDensities(t *testing.T) {
	densities := Densities("Track your budget with budget tools", []string{"budget", "expense"})
	assert.Equal(t, 33.33, densities["budget"])
	assert.Equal(t, 0.0, densities["expense"])
}

func TestDensitiesEmptyText(t *testing.T) {
	densities := Densities("", []string{"budget"})
	assert.Equal(t, 0.0, densities["budget"])
}

func TestLongTailOpportunities(t *testing.T) {
	opportunities := LongTailOpportunities("budget tracker", []string{"free", "simple"})

	// Two patterns per modifier plus four question prefixes.
	require.Len(t, opportunities, 8)

	keywords := make([]string, 0, len(opportunities))
	for _, o := range opportunities {
		keywords = append(keywords, o.Keyword)
	}
	assert.Contains(t, keywords, "free budget tracker")
	assert.Contains(t, keywords, "budget tracker free")
	assert.Contains(t, keywords, "how budget tracker")
	assert.Contains(t, keywords, "best budget tracker")

	for _, o := range opportunities {
		assert.NotEmpty(t, o.Pattern)
		assert.NotEmpty(t, o.EstimatedCompetition)
	}
}
