// Package metadata builds and validates app store listing text: titles,
// descriptions, Apple keyword fields, screenshot captions and Custom Product
// Page variants. It consumes the scores and clusters produced by pkg/aso and
// pkg/keyword but contains no scoring logic of its own.
package metadata

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Platform selects the store whose character limits apply.
type Platform string

const (
	Apple  Platform = "apple"
	Google Platform = "google"
)

// charLimits per platform, keyed by metadata field name.
var charLimits = map[Platform]map[string]int{
	Apple: {
		"title":            30,
		"subtitle":         30,
		"promotional_text": 170,
		"description":      4000,
		"keywords":         100,
		"whats_new":        4000,
	},
	Google: {
		"title":             50,
		"short_description": 80,
		"full_description":  4000,
	},
}

// AppInfo describes the app whose metadata is being built.
type AppInfo struct {
	Name           string   `json:"name"`
	KeyFeatures    []string `json:"key_features"`
	UniqueValue    string   `json:"unique_value"`
	TargetAudience string   `json:"target_audience"`
}

// Optimizer builds listing metadata for one platform.
type Optimizer struct {
	platform Platform
	limits   map[string]int
}

// NewOptimizer creates an optimizer for "apple" or "google". Unlike the
// scoring engine, which tolerates any numeric input, an unknown platform is
// rejected eagerly: every limit table downstream depends on it.
func NewOptimizer(platform string) (*Optimizer, error) {
	p := Platform(strings.ToLower(platform))
	limits, ok := charLimits[p]
	if !ok {
		return nil, fmt.Errorf("platform must be %q or %q, got %q", Apple, Google, platform)
	}
	return &Optimizer{platform: p, limits: limits}, nil
}

// Platform returns the optimizer's platform.
func (o *Optimizer) Platform() Platform { return o.platform }

// TitleOption is one candidate title with its trade-offs.
type TitleOption struct {
	Title            string   `json:"title"`
	Length           int      `json:"length"`
	RemainingChars   int      `json:"remaining_chars"`
	KeywordsIncluded []string `json:"keywords_included"`
	Strategy         string   `json:"strategy"`
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
}

// TitleReport holds all generated title options plus a recommendation.
type TitleReport struct {
	Platform       Platform      `json:"platform"`
	MaxLength      int           `json:"max_length"`
	Options        []TitleOption `json:"options"`
	Recommendation string        `json:"recommendation"`
}

// OptimizeTitle generates candidate titles combining the brand name with
// target keywords, within the platform's title limit.
func (o *Optimizer) OptimizeTitle(appName string, targetKeywords []string, includeBrand bool) TitleReport {
	maxLength := o.limits["title"]
	var options []TitleOption

	if includeBrand {
		title := truncate(appName, maxLength)
		options = append(options, TitleOption{
			Title:            title,
			Length:           len(title),
			RemainingChars:   maxLength - len(title),
			KeywordsIncluded: []string{},
			Strategy:         "brand_only",
			Pros:             []string{"Maximum brand recognition", "Clean and simple"},
			Cons:             []string{"No keyword targeting", "Lower discoverability"},
		})
	}

	if len(targetKeywords) > 0 {
		if title, ok := buildTitleWithKeywords(appName, targetKeywords[:1], maxLength); ok {
			options = append(options, TitleOption{
				Title:            title,
				Length:           len(title),
				RemainingChars:   maxLength - len(title),
				KeywordsIncluded: targetKeywords[:1],
				Strategy:         "brand_plus_primary",
				Pros:             []string{"Targets main keyword", "Maintains brand identity"},
				Cons:             []string{"Limited keyword coverage"},
			})
		}
	}

	if len(targetKeywords) > 1 {
		if title, ok := buildTitleWithKeywords(appName, targetKeywords[:2], maxLength); ok {
			options = append(options, TitleOption{
				Title:            title,
				Length:           len(title),
				RemainingChars:   maxLength - len(title),
				KeywordsIncluded: targetKeywords[:2],
				Strategy:         "brand_plus_multiple",
				Pros:             []string{"Multiple keyword targets", "Better discoverability"},
				Cons:             []string{"May feel cluttered", "Less brand focus"},
			})
		}
	}

	if len(targetKeywords) > 0 && !includeBrand {
		n := len(targetKeywords)
		if n > 2 {
			n = 2
		}
		title := truncate(strings.Join(targetKeywords[:n], " "), maxLength)
		options = append(options, TitleOption{
			Title:            title,
			Length:           len(title),
			RemainingChars:   maxLength - len(title),
			KeywordsIncluded: targetKeywords[:n],
			Strategy:         "keyword_first",
			Pros:             []string{"Maximum SEO benefit", "Clear functionality"},
			Cons:             []string{"No brand recognition", "Generic appearance"},
		})
	}

	return TitleReport{
		Platform:       o.platform,
		MaxLength:      maxLength,
		Options:        options,
		Recommendation: recommendTitleOption(options),
	}
}

// buildTitleWithKeywords joins a brand name with keywords using common
// separators, returning the first combination that fits.
func buildTitleWithKeywords(appName string, keywords []string, maxLength int) (string, bool) {
	for _, sep := range []string{" - ", ": ", " | "} {
		for _, kw := range keywords {
			title := appName + sep + kw
			if len(title) <= maxLength {
				return title, true
			}
		}
	}
	return "", false
}

func recommendTitleOption(options []TitleOption) string {
	if len(options) == 0 {
		return "No valid options available"
	}
	for _, option := range options {
		if option.Strategy == "brand_plus_primary" {
			return fmt.Sprintf("Recommended: '%s' (Balance of brand and SEO)", option.Title)
		}
	}
	return fmt.Sprintf("Recommended: '%s' (%s)", options[0].Title, options[0].Strategy)
}

// DescriptionReport is the result of full-description optimization.
type DescriptionReport struct {
	FullDescription string         `json:"full_description"`
	Length          int            `json:"length"`
	RemainingChars  int            `json:"remaining_chars"`
	KeywordAnalysis DensityReport  `json:"keyword_analysis"`
	Structure       map[string]any `json:"structure"`
}

// OptimizeFullDescription assembles a conversion-oriented description
// (hook, features, audience, social proof, call to action) with target
// keywords integrated, within the platform's description limit.
func (o *Optimizer) OptimizeFullDescription(info AppInfo, targetKeywords []string) DescriptionReport {
	maxLength := o.limits["description"]
	if maxLength == 0 {
		maxLength = o.limits["full_description"]
	}

	primary := ""
	if len(targetKeywords) > 0 {
		primary = targetKeywords[0]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s that helps you achieve more.\n\n", info.UniqueValue, titlePhrase(primary))

	if len(info.KeyFeatures) > 0 {
		b.WriteString("KEY FEATURES:\n")
		features := info.KeyFeatures
		if len(features) > 5 {
			features = features[:5]
		}
		for i, feature := range features {
			line := "• " + feature
			if i < len(targetKeywords) {
				kw := targetKeywords[i]
				if !strings.Contains(strings.ToLower(feature), strings.ToLower(kw)) {
					line = fmt.Sprintf("• %s with %s", feature, kw)
				}
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	audience := info.TargetAudience
	if audience == "" {
		audience = "users"
	}
	fmt.Fprintf(&b, "PERFECT FOR:\n%s\n\n", audience)
	b.WriteString("WHY USERS LOVE US:\n")
	b.WriteString("Join thousands of satisfied users who have transformed their workflow.\n\n")
	b.WriteString("Download now and start experiencing the difference!")

	description := b.String()
	if len(description) > maxLength {
		description = description[:maxLength-3] + "..."
	}

	return DescriptionReport{
		FullDescription: description,
		Length:          len(description),
		RemainingChars:  maxLength - len(description),
		KeywordAnalysis: o.KeywordDensityReport(description, targetKeywords),
		Structure: map[string]any{
			"has_hook":     true,
			"has_features": len(info.KeyFeatures) > 0,
			"has_benefits": true,
			"has_cta":      true,
		},
	}
}

// ShortDescriptionReport is the Google Play 80-char short description result.
type ShortDescriptionReport struct {
	ShortDescription string   `json:"short_description"`
	Length           int      `json:"length"`
	RemainingChars   int      `json:"remaining_chars"`
	KeywordsIncluded []string `json:"keywords_included"`
	Strategy         string   `json:"strategy"`
}

// OptimizeShortDescription builds the Google Play short description as
// "[Primary Keyword] - [Unique Value]".
func (o *Optimizer) OptimizeShortDescription(info AppInfo, targetKeywords []string) (ShortDescriptionReport, error) {
	if o.platform != Google {
		return ShortDescriptionReport{}, fmt.Errorf("short description applies to %q only", Google)
	}
	maxLength := o.limits["short_description"]

	primary := ""
	if len(targetKeywords) > 0 {
		primary = targetKeywords[0]
	}
	short := truncate(fmt.Sprintf("%s - %s", titlePhrase(primary), info.UniqueValue), maxLength)

	var included []string
	if primary != "" && strings.Contains(strings.ToLower(short), strings.ToLower(primary)) {
		included = []string{primary}
	}

	return ShortDescriptionReport{
		ShortDescription: short,
		Length:           len(short),
		RemainingChars:   maxLength - len(short),
		KeywordsIncluded: included,
		Strategy:         "keyword_value_proposition",
	}, nil
}

// SubtitleReport is the Apple 30-char subtitle result.
type SubtitleReport struct {
	SubtitleOptions []string `json:"subtitle_options"`
	MaxLength       int      `json:"max_length"`
	Recommendation  string   `json:"recommendation"`
}

// OptimizeSubtitle proposes Apple subtitle candidates from the primary
// keyword and the first key feature.
func (o *Optimizer) OptimizeSubtitle(info AppInfo, targetKeywords []string) (SubtitleReport, error) {
	if o.platform != Apple {
		return SubtitleReport{}, fmt.Errorf("subtitle applies to %q only", Apple)
	}
	maxLength := o.limits["subtitle"]

	primary := ""
	if len(targetKeywords) > 0 {
		primary = targetKeywords[0]
	}
	feature := ""
	if len(info.KeyFeatures) > 0 {
		feature = info.KeyFeatures[0]
	}

	var options []string
	for _, candidate := range []string{
		truncate(primary, maxLength),
		truncate(feature, maxLength),
		truncate(primary+" App", maxLength),
	} {
		if candidate != "" {
			options = append(options, candidate)
		}
	}

	recommendation := ""
	if len(options) > 0 {
		recommendation = options[0]
	}

	return SubtitleReport{
		SubtitleOptions: options,
		MaxLength:       maxLength,
		Recommendation:  recommendation,
	}, nil
}

// KeywordFieldReport is the Apple keyword-field optimization result.
type KeywordFieldReport struct {
	KeywordField        string         `json:"keyword_field"`
	Length              int            `json:"length"`
	RemainingChars      int            `json:"remaining_chars"`
	KeywordsIncluded    []string       `json:"keywords_included"`
	KeywordsCount       int            `json:"keywords_count"`
	KeywordsExcluded    []string       `json:"keywords_excluded"`
	DescriptionCoverage map[string]int `json:"description_coverage"`
	OptimizationTips    []string       `json:"optimization_tips"`
}

// OptimizeKeywordField packs target keywords into Apple's 100-character
// keyword field: words already in the title are skipped (the title is
// indexed anyway), plural forms fold into singulars, and keywords are
// comma-joined without spaces until the limit is reached.
func (o *Optimizer) OptimizeKeywordField(targetKeywords []string, appTitle, appDescription string) (KeywordFieldReport, error) {
	if o.platform != Apple {
		return KeywordFieldReport{}, fmt.Errorf("keyword field optimization applies to %q only", Apple)
	}
	maxLength := o.limits["keywords"]

	titleWords := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(appTitle)) {
		titleWords[w] = true
	}

	var processed []string
	seen := make(map[string]bool)
	for _, kw := range targetKeywords {
		lower := strings.TrimSpace(strings.ToLower(kw))
		if titleWords[lower] {
			continue
		}
		for _, word := range strings.Fields(lower) {
			if !seen[word] && !titleWords[word] {
				seen[word] = true
				processed = append(processed, word)
			}
		}
	}

	deduplicated := foldPlurals(processed)
	field := packKeywordField(deduplicated, maxLength)
	included := strings.Split(field, ",")

	var excluded []string
	for _, kw := range targetKeywords {
		if !strings.Contains(field, strings.ToLower(kw)) {
			excluded = append(excluded, kw)
		}
	}

	coverage := make(map[string]int, len(targetKeywords))
	descLower := strings.ToLower(appDescription)
	for _, kw := range targetKeywords {
		coverage[kw] = strings.Count(descLower, strings.ToLower(kw))
	}

	return KeywordFieldReport{
		KeywordField:        field,
		Length:              len(field),
		RemainingChars:      maxLength - len(field),
		KeywordsIncluded:    included,
		KeywordsCount:       len(included),
		KeywordsExcluded:    excluded,
		DescriptionCoverage: coverage,
		OptimizationTips: []string{
			"Keywords in title are auto-indexed - no need to repeat",
			"Use singular forms only (Apple indexes plurals automatically)",
			"No spaces between commas to maximize character usage",
			"Update keyword field with each app update to test variations",
		},
	}, nil
}

// foldPlurals drops plural forms when the singular is already present,
// keeping first-seen order.
func foldPlurals(words []string) []string {
	var out []string
	singulars := make(map[string]bool)
	for _, word := range words {
		if strings.HasSuffix(word, "s") && len(word) > 1 {
			singular := word[:len(word)-1]
			if !singulars[singular] {
				singulars[singular] = true
				out = append(out, singular)
			}
		} else if !singulars[word] {
			singulars[word] = true
			out = append(out, word)
		}
	}
	return out
}

// packKeywordField comma-joins as many keywords as fit in maxLength.
func packKeywordField(words []string, maxLength int) string {
	field := ""
	for _, word := range words {
		candidate := word
		if field != "" {
			candidate = field + "," + word
		}
		if len(candidate) > maxLength {
			break
		}
		field = candidate
	}
	return field
}

// FieldStatus is the validation state of one metadata field.
type FieldStatus struct {
	Value           string  `json:"value"`
	Length          int     `json:"length"`
	Limit           int     `json:"limit"`
	Remaining       int     `json:"remaining"`
	IsValid         bool    `json:"is_valid"`
	UsagePercentage float64 `json:"usage_percentage"`
}

// ValidationReport summarizes character-limit validation across fields.
type ValidationReport struct {
	IsValid     bool                   `json:"is_valid"`
	Errors      []string               `json:"errors"`
	Warnings    []string               `json:"warnings"`
	FieldStatus map[string]FieldStatus `json:"field_status"`
}

// ValidateCharacterLimits checks every supplied field against the platform's
// limits. Unknown fields warn, over-limit fields error, and heavily
// under-used fields warn about wasted indexable space.
func (o *Optimizer) ValidateCharacterLimits(fields map[string]string) ValidationReport {
	report := ValidationReport{
		IsValid:     true,
		FieldStatus: make(map[string]FieldStatus),
	}

	for name, value := range fields {
		limit, known := o.limits[name]
		if !known {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Unknown field '%s' for %s platform", name, o.platform))
			continue
		}

		length := len(value)
		remaining := limit - length
		report.FieldStatus[name] = FieldStatus{
			Value:           value,
			Length:          length,
			Limit:           limit,
			Remaining:       remaining,
			IsValid:         length <= limit,
			UsagePercentage: math.Round(float64(length)/float64(limit)*1000) / 10,
		}

		if length > limit {
			report.IsValid = false
			report.Errors = append(report.Errors,
				fmt.Sprintf("'%s' exceeds limit: %d/%d chars", name, length, limit))
		} else if float64(remaining) > float64(limit)*0.2 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("'%s' under-utilizes space: %d chars remaining", name, remaining))
		}
	}

	return report
}

// KeywordDensity is the per-keyword density breakdown in a text.
type KeywordDensity struct {
	Occurrences       int     `json:"occurrences"`
	DensityPercentage float64 `json:"density_percentage"`
	Status            string  `json:"status"`
}

// DensityReport summarizes keyword density across a text.
type DensityReport struct {
	TotalWords            int                       `json:"total_words"`
	KeywordDensities      map[string]KeywordDensity `json:"keyword_densities"`
	OverallKeywordDensity float64                   `json:"overall_keyword_density"`
	Assessment            string                    `json:"assessment"`
	Recommendations       []string                  `json:"recommendations"`
}

// KeywordDensityReport analyzes how target keywords are used in a text and
// flags under-use and stuffing.
func (o *Optimizer) KeywordDensityReport(text string, targetKeywords []string) DensityReport {
	lower := strings.ToLower(text)
	totalWords := len(strings.Fields(lower))

	densities := make(map[string]KeywordDensity, len(targetKeywords))
	totalOccurrences := 0
	var recommendations []string

	for _, kw := range targetKeywords {
		count := strings.Count(lower, strings.ToLower(kw))
		density := 0.0
		if totalWords > 0 {
			density = float64(count) / float64(totalWords) * 100
		}

		status := "optimal"
		switch {
		case density < 0.5:
			status = "too_low"
			recommendations = append(recommendations,
				fmt.Sprintf("Increase usage of '%s' - currently only %d times", kw, count))
		case density > 2.5:
			status = "too_high"
			recommendations = append(recommendations,
				fmt.Sprintf("Reduce usage of '%s' - appears %d times (keyword stuffing risk)", kw, count))
		}

		densities[kw] = KeywordDensity{
			Occurrences:       count,
			DensityPercentage: math.Round(density*100) / 100,
			Status:            status,
		}
		totalOccurrences += count
	}

	overall := 0.0
	if totalWords > 0 {
		overall = float64(totalOccurrences) / float64(totalWords) * 100
	}
	if len(recommendations) == 0 {
		recommendations = []string{"Keyword density is well-balanced"}
	}

	return DensityReport{
		TotalWords:            totalWords,
		KeywordDensities:      densities,
		OverallKeywordDensity: math.Round(overall*100) / 100,
		Assessment:            assessOverallDensity(overall),
		Recommendations:       recommendations,
	}
}

func assessOverallDensity(density float64) string {
	switch {
	case density < 2:
		return "Under-optimized: Consider adding more keyword variations"
	case density <= 5:
		return "Optimal: Good keyword integration without stuffing"
	case density <= 8:
		return "High: Approaching keyword stuffing - reduce keyword usage"
	default:
		return "Too High: Keyword stuffing detected - rewrite for natural flow"
	}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// titlePhrase capitalizes each word, e.g. "task manager" -> "Task Manager".
func titlePhrase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
