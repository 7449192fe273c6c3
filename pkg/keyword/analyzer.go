// Package keyword scores individual keywords for App Store ranking potential,
// compares keyword sets, clusters keywords by search intent and generates
// natural-language query variants for voice/AI search.
//
// Every computation is deterministic and in-memory. The only mutable state is
// the Analyzer's keyword cache; callers sharing an Analyzer across goroutines
// must synchronize access themselves.
package keyword

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// CompetitionLevel classifies how many apps compete for a keyword.
type CompetitionLevel string

const (
	CompetitionLow      CompetitionLevel = "low"
	CompetitionMedium   CompetitionLevel = "medium"
	CompetitionHigh     CompetitionLevel = "high"
	CompetitionVeryHigh CompetitionLevel = "very_high"
)

// VolumeCategory classifies estimated monthly search volume.
type VolumeCategory string

const (
	VolumeVeryLow  VolumeCategory = "very_low"
	VolumeLow      VolumeCategory = "low"
	VolumeMedium   VolumeCategory = "medium"
	VolumeHigh     VolumeCategory = "high"
	VolumeVeryHigh VolumeCategory = "very_high"
)

// Competition thresholds by competing-app count, strict upper bounds.
var competitionThresholds = struct {
	Low, Medium, High int
}{1000, 5000, 10000}

// Volume category thresholds by monthly searches, strict upper bounds.
var volumeThresholds = struct {
	VeryLow, Low, Medium, High, VeryHigh int
}{1000, 5000, 20000, 100000, 500000}

// Record is the full analysis of a single keyword.
type Record struct {
	Keyword          string           `json:"keyword"`
	SearchVolume     int              `json:"search_volume"`
	VolumeCategory   VolumeCategory   `json:"volume_category"`
	CompetingApps    int              `json:"competing_apps"`
	CompetitionLevel CompetitionLevel `json:"competition_level"`
	RelevanceScore   float64          `json:"relevance_score"`
	DifficultyScore  float64          `json:"difficulty_score"`
	PotentialScore   float64          `json:"potential_score"`
	Recommendation   string           `json:"recommendation"`
	KeywordLength    int              `json:"keyword_length"`
	IsLongTail       bool             `json:"is_long_tail"`
}

// Input is the raw data for one keyword in a comparison.
type Input struct {
	Keyword        string  `json:"keyword"`
	SearchVolume   int     `json:"search_volume"`
	CompetingApps  int     `json:"competing_apps"`
	RelevanceScore float64 `json:"relevance_score"`
}

// Comparison ranks a keyword set and partitions it by targeting role. The
// partitions are not mutually exclusive: a keyword may appear in several.
type Comparison struct {
	TotalKeywordsAnalyzed int      `json:"total_keywords_analyzed"`
	RankedKeywords        []Record `json:"ranked_keywords"`
	PrimaryKeywords       []Record `json:"primary_keywords"`
	SecondaryKeywords     []Record `json:"secondary_keywords"`
	LongTailKeywords      []Record `json:"long_tail_keywords"`
	Summary               string   `json:"summary"`
}

// Analyzer scores keywords and caches each result by exact keyword text.
// Re-analyzing a keyword overwrites its cached record.
type Analyzer struct {
	analyzed map[string]Record
}

// NewAnalyzer creates an Analyzer with an empty cache.
func NewAnalyzer() *Analyzer {
	return &Analyzer{analyzed: make(map[string]Record)}
}

// AnalyzeKeyword scores one keyword from its search volume, competing-app
// count and 0-1 relevance, and caches the record.
func (a *Analyzer) AnalyzeKeyword(keyword string, searchVolume, competingApps int, relevance float64) Record {
	wordCount := len(strings.Fields(keyword))
	difficulty := difficultyScore(searchVolume, competingApps)
	potential := potentialScore(searchVolume, competingApps, relevance)

	record := Record{
		Keyword:          keyword,
		SearchVolume:     searchVolume,
		VolumeCategory:   categorizeVolume(searchVolume),
		CompetingApps:    competingApps,
		CompetitionLevel: competitionLevel(competingApps),
		RelevanceScore:   relevance,
		DifficultyScore:  difficulty,
		PotentialScore:   potential,
		Recommendation:   recommendKeyword(potential, difficulty, relevance),
		KeywordLength:    wordCount,
		IsLongTail:       wordCount >= 3,
	}

	a.analyzed[keyword] = record
	return record
}

// Analyzed returns the cached record for a keyword, if present.
func (a *Analyzer) Analyzed(keyword string) (Record, bool) {
	record, ok := a.analyzed[keyword]
	return record, ok
}

// CompareKeywords analyzes a keyword set, ranks it by potential (descending,
// stable) and partitions it into primary, secondary and long-tail groups.
func (a *Analyzer) CompareKeywords(inputs []Input) Comparison {
	ranked := make([]Record, 0, len(inputs))
	for _, in := range inputs {
		ranked = append(ranked, a.AnalyzeKeyword(in.Keyword, in.SearchVolume, in.CompetingApps, in.RelevanceScore))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PotentialScore > ranked[j].PotentialScore
	})

	var primary, secondary, longTail []Record
	for _, record := range ranked {
		if record.PotentialScore >= 70 && record.RelevanceScore >= 0.8 {
			primary = append(primary, record)
		}
		if record.PotentialScore >= 50 && record.PotentialScore < 70 && record.RelevanceScore >= 0.6 {
			secondary = append(secondary, record)
		}
		if record.IsLongTail && record.RelevanceScore >= 0.7 {
			longTail = append(longTail, record)
		}
	}

	// The summary counts the full partitions before truncation.
	summary := comparisonSummary(primary, secondary, longTail)

	return Comparison{
		TotalKeywordsAnalyzed: len(ranked),
		RankedKeywords:        ranked,
		PrimaryKeywords:       topN(primary, 5),
		SecondaryKeywords:     topN(secondary, 10),
		LongTailKeywords:      topN(longTail, 10),
		Summary:               summary,
	}
}

func topN(records []Record, n int) []Record {
	if len(records) > n {
		return records[:n]
	}
	return records
}

func competitionLevel(competingApps int) CompetitionLevel {
	switch {
	case competingApps < competitionThresholds.Low:
		return CompetitionLow
	case competingApps < competitionThresholds.Medium:
		return CompetitionMedium
	case competingApps < competitionThresholds.High:
		return CompetitionHigh
	default:
		return CompetitionVeryHigh
	}
}

func categorizeVolume(searchVolume int) VolumeCategory {
	switch {
	case searchVolume < volumeThresholds.VeryLow:
		return VolumeVeryLow
	case searchVolume < volumeThresholds.Low:
		return VolumeLow
	case searchVolume < volumeThresholds.Medium:
		return VolumeMedium
	case searchVolume < volumeThresholds.High:
		return VolumeHigh
	default:
		return VolumeVeryHigh
	}
}

// difficultyScore estimates how hard a keyword is to rank for (0-100, higher
// is harder): 70% competition saturation, 30% volume saturation.
//
// Zero competing apps returns 0 even at very high volume; an uncontested
// keyword is treated as free to rank for.
func difficultyScore(searchVolume, competingApps int) float64 {
	if competingApps == 0 {
		return 0
	}
	competitionFactor := math.Min(float64(competingApps)/50000, 1)
	volumeFactor := math.Min(float64(searchVolume)/1000000, 1)
	return round1((competitionFactor*0.7 + volumeFactor*0.3) * 100)
}

// potentialScore estimates keyword opportunity (0-100, higher is better):
// volume up to 40 points, inverse competition up to 30, relevance up to 30.
func potentialScore(searchVolume, competingApps int, relevance float64) float64 {
	volumeScore := math.Min(float64(searchVolume)/100000*40, 40)

	competitionScore := 30.0
	if competingApps > 0 {
		competitionScore = math.Max(30-float64(competingApps)/500, 0)
	}

	total := volumeScore + competitionScore + relevance*30
	return round1(math.Min(total, 100))
}

// recommendKeyword maps the scores to an actionable recommendation. Low
// relevance short-circuits everything else: an irrelevant keyword is never
// worth targeting no matter how strong its numbers look.
func recommendKeyword(potential, difficulty, relevance float64) string {
	if relevance < 0.5 {
		return "Low relevance - avoid targeting"
	}
	switch {
	case potential >= 70:
		return "High priority - target immediately"
	case potential >= 50:
		if difficulty < 50 {
			return "Good opportunity - include in metadata"
		}
		return "Competitive - use in description, not title"
	case potential >= 30:
		return "Secondary keyword - use for long-tail variations"
	default:
		return "Low potential - deprioritize"
	}
}

func comparisonSummary(primary, secondary, longTail []Record) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Identified %d high-priority primary keywords.", len(primary)))
	if len(primary) > 0 {
		parts = append(parts, fmt.Sprintf("Top recommendation: '%s' (potential score: %g).",
			primary[0].Keyword, primary[0].PotentialScore))
	}
	parts = append(parts, fmt.Sprintf("Found %d secondary keywords for description and metadata.", len(secondary)))
	parts = append(parts, fmt.Sprintf("Discovered %d long-tail opportunities with lower competition.", len(longTail)))

	return strings.Join(parts, " ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
