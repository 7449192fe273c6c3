package metadata

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Readability guidance tiers for caption length on device screens.
var captionCharGuidance = map[string]CaptionGuidance{
	"short":  {MaxChars: 40, Description: "Best for small screenshots / compact layouts"},
	"medium": {MaxChars: 70, Description: "Standard caption length for most screenshots"},
	"long":   {MaxChars: 100, Description: "Use sparingly; only for landscape or large display"},
}

// CaptionGuidance is one legibility tier.
type CaptionGuidance struct {
	MaxChars    int    `json:"max_chars"`
	Description string `json:"description"`
}

// captionTemplates are rotated in order so consecutive captions read
// differently. {kw} is replaced with the keyword phrase.
var captionTemplates = []string{
	"Easily {kw} in seconds",
	"{kw} made simple",
	"Your personal {kw} assistant",
	"Smart {kw} at your fingertips",
	"Track and {kw} effortlessly",
	"Powerful {kw} tools",
	"Beautiful {kw} experience",
	"All your {kw} in one place",
	"{kw} with confidence",
	"Discover better {kw}",
	"Simplify your {kw}",
	"The smarter way to {kw}",
	"Master your {kw}",
	"{kw} like a pro",
	"Instant {kw} insights",
}

// ExistingMetadata is the live listing text captions must complement.
type ExistingMetadata struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	KeywordField string `json:"keyword_field"`
}

// Caption is one screenshot caption recommendation.
type Caption struct {
	Caption         string   `json:"caption"`
	KeywordsUsed    []string `json:"keywords_used"`
	CharCount       int      `json:"char_count"`
	Readability     string   `json:"readability"`
	ReadabilityNote string   `json:"readability_note"`
}

// KeywordCoverage summarizes how the keyword list splits between metadata
// fields and captions.
type KeywordCoverage struct {
	TotalInputKeywords     int      `json:"total_input_keywords"`
	AlreadyInMetadata      int      `json:"already_in_metadata"`
	ComplementaryAvailable int      `json:"complementary_available"`
	UsedInCaptions         int      `json:"used_in_captions"`
	AlreadyCoveredKeywords []string `json:"already_covered_keywords"`
	ComplementaryKeywords  []string `json:"complementary_keywords"`
}

// CaptionReport is the full screenshot caption recommendation set.
type CaptionReport struct {
	Platform          Platform                   `json:"platform"`
	Captions          []Caption                  `json:"captions"`
	CaptionCount      int                        `json:"caption_count"`
	KeywordCoverage   KeywordCoverage            `json:"keyword_coverage"`
	CharacterGuidance map[string]CaptionGuidance `json:"character_guidance"`
	BestPractices     []string                   `json:"best_practices"`
}

// GenerateScreenshotCaptions recommends captions built from keywords not yet
// covered by the title, subtitle or keyword field. Apple indexes screenshot
// captions for ranking since June 2025, so captions are the cheapest way to
// widen keyword coverage without touching indexed fields. numCaptions is
// clamped to [5, 10].
func (o *Optimizer) GenerateScreenshotCaptions(keywords []string, existing ExistingMetadata, numCaptions, maxCaptionLength int) CaptionReport {
	if numCaptions < 5 {
		numCaptions = 5
	}
	if numCaptions > 10 {
		numCaptions = 10
	}
	if maxCaptionLength <= 0 {
		maxCaptionLength = captionCharGuidance["medium"].MaxChars
	}

	usedWords := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(existing.Title)) {
		usedWords[w] = true
	}
	for _, w := range strings.Fields(strings.ToLower(existing.Subtitle)) {
		usedWords[w] = true
	}
	for _, token := range strings.Split(existing.KeywordField, ",") {
		if token = strings.TrimSpace(strings.ToLower(token)); token != "" {
			usedWords[token] = true
		}
	}

	// A keyword is covered only when every one of its words already appears
	// in the metadata.
	var complementary, alreadyCovered []string
	for _, kw := range keywords {
		covered := true
		for _, w := range strings.Fields(strings.TrimSpace(strings.ToLower(kw))) {
			if !usedWords[w] {
				covered = false
				break
			}
		}
		if covered {
			alreadyCovered = append(alreadyCovered, kw)
		} else {
			complementary = append(complementary, kw)
		}
	}

	var captions []Caption
	for i, kw := range complementary {
		if len(captions) >= numCaptions {
			break
		}

		template := captionTemplates[i%len(captionTemplates)]
		text := strings.ReplaceAll(template, "{kw}", strings.ToLower(kw))
		first, size := utf8.DecodeRuneInString(text)
		text = string(unicode.ToUpper(first)) + text[size:]

		readability, note := captionReadability(len(text))
		if readability == "" {
			if len(text) > maxCaptionLength {
				text = text[:maxCaptionLength]
			}
			readability = "truncated"
			note = fmt.Sprintf("Truncated to %d chars for legibility", maxCaptionLength)
		}

		var keywordsUsed []string
		lowerText := strings.ToLower(text)
		for _, candidate := range complementary {
			if strings.Contains(lowerText, strings.ToLower(candidate)) {
				keywordsUsed = append(keywordsUsed, candidate)
			}
		}

		captions = append(captions, Caption{
			Caption:         text,
			KeywordsUsed:    keywordsUsed,
			CharCount:       len(text),
			Readability:     readability,
			ReadabilityNote: note,
		})
	}

	inCaptions := make(map[string]bool)
	for _, c := range captions {
		for _, kw := range c.KeywordsUsed {
			inCaptions[strings.ToLower(kw)] = true
		}
	}

	return CaptionReport{
		Platform:     o.platform,
		Captions:     captions,
		CaptionCount: len(captions),
		KeywordCoverage: KeywordCoverage{
			TotalInputKeywords:     len(keywords),
			AlreadyInMetadata:      len(alreadyCovered),
			ComplementaryAvailable: len(complementary),
			UsedInCaptions:         len(inCaptions),
			AlreadyCoveredKeywords: alreadyCovered,
			ComplementaryKeywords:  complementary,
		},
		CharacterGuidance: captionCharGuidance,
		BestPractices: []string{
			"Screenshot captions are indexed by Apple for keyword ranking (June 2025)",
			"Use keywords NOT already in title/subtitle/keyword field for maximum coverage",
			"Keep captions natural and readable - avoid keyword stuffing",
			"Shorter captions (under 40 chars) have best readability on small devices",
			"Each screenshot should highlight a different feature or keyword theme",
			"Test caption readability at actual screenshot size before submission",
			"Captions should complement the visual content of each screenshot",
		},
	}
}

// captionReadability maps a caption length to a legibility tier. An empty
// tier means the caption is too long and must be truncated by the caller.
func captionReadability(charCount int) (tier, note string) {
	switch {
	case charCount <= captionCharGuidance["short"].MaxChars:
		return "excellent", "Short and punchy - great readability on all devices"
	case charCount <= captionCharGuidance["medium"].MaxChars:
		return "good", "Standard length - readable on most screenshot layouts"
	case charCount <= captionCharGuidance["long"].MaxChars:
		return "acceptable", "Long - consider only for landscape or hero screenshots"
	default:
		return "", ""
	}
}
