package keyword

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// extraction stopwords, kept small on purpose: store descriptions and
// reviews are short texts where aggressive filtering loses signal.
var extractStopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "this": true,
	"that": true, "from": true, "have": true, "but": true, "not": true,
	"you": true, "all": true, "can": true, "are": true, "was": true,
	"were": true, "been": true,
}

// Frequency is a candidate keyword with its occurrence count.
type Frequency struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// ExtractKeywords pulls candidate keywords (single words and two-word
// phrases) from free text such as descriptions or reviews, ranked by
// frequency. Returns at most the top 50; ties keep first-seen order.
func ExtractKeywords(text string, minWordLength int) []Frequency {
	if minWordLength <= 0 {
		minWordLength = 3
	}

	var words []string
	for _, w := range tokenize(text) {
		if len(w) >= minWordLength && !extractStopwords[w] {
			words = append(words, w)
		}
	}

	counts := make(map[string]int)
	var order []string
	bump := func(kw string) {
		if counts[kw] == 0 {
			order = append(order, kw)
		}
		counts[kw]++
	}

	for _, w := range words {
		bump(w)
	}
	for i := 0; i+1 < len(words); i++ {
		bump(words[i] + " " + words[i+1])
	}

	frequencies := make([]Frequency, 0, len(order))
	for _, kw := range order {
		frequencies = append(frequencies, Frequency{Keyword: kw, Count: counts[kw]})
	}
	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Count > frequencies[j].Count
	})

	if len(frequencies) > 50 {
		frequencies = frequencies[:50]
	}
	return frequencies
}

// Densities computes each target keyword's density percentage in text.
// Empty text yields zero densities rather than an error.
func Densities(text string, targets []string) map[string]float64 {
	lower := strings.ToLower(text)
	totalWords := len(strings.Fields(lower))

	densities := make(map[string]float64, len(targets))
	for _, target := range targets {
		density := 0.0
		if totalWords > 0 {
			occurrences := strings.Count(lower, strings.ToLower(target))
			density = float64(occurrences) / float64(totalWords) * 100
		}
		densities[target] = math.Round(density*100) / 100
	}
	return densities
}

// Opportunity is one suggested long-tail keyword variation.
type Opportunity struct {
	Keyword              string `json:"keyword"`
	Pattern              string `json:"pattern"`
	EstimatedCompetition string `json:"estimated_competition"`
	Rationale            string `json:"rationale"`
}

// LongTailOpportunities generates long-tail variations of a base keyword by
// combining it with modifiers and common informational prefixes.
func LongTailOpportunities(baseKeyword string, modifiers []string) []Opportunity {
	var opportunities []Opportunity

	for _, modifier := range modifiers {
		opportunities = append(opportunities,
			Opportunity{
				Keyword:              modifier + " " + baseKeyword,
				Pattern:              "modifier_base",
				EstimatedCompetition: "low",
				Rationale:            fmt.Sprintf("Less competitive variation of '%s'", baseKeyword),
			},
			Opportunity{
				Keyword:              baseKeyword + " " + modifier,
				Pattern:              "base_modifier",
				EstimatedCompetition: "low",
				Rationale:            fmt.Sprintf("Specific use-case variation of '%s'", baseKeyword),
			},
		)
	}

	for _, prefix := range []string{"how", "what", "best", "top"} {
		opportunities = append(opportunities, Opportunity{
			Keyword:              prefix + " " + baseKeyword,
			Pattern:              "question_based",
			EstimatedCompetition: "very_low",
			Rationale:            "Informational search query",
		})
	}

	return opportunities
}
