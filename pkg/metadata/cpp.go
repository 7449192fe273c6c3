package metadata

import (
	"fmt"
	"strings"

	"github.com/abc-elearning/aso-audit/pkg/keyword"
)

// MaxCPPCount is Apple's limit on Custom Product Pages per app.
const MaxCPPCount = 70

// CPPConfig is the metadata for one Custom Product Page.
type CPPConfig struct {
	Segment           string   `json:"segment"`
	CPPType           string   `json:"cpp_type"`
	TitleVariant      string   `json:"title_variant"`
	TitleCharCount    int      `json:"title_char_count"`
	TitleLimit        int      `json:"title_limit"`
	SubtitleVariant   string   `json:"subtitle_variant"`
	SubtitleCharCount int      `json:"subtitle_char_count"`
	SubtitleLimit     int      `json:"subtitle_limit"`
	KeywordAssignment []string `json:"keyword_assignment"`
	KeywordCount      int      `json:"keyword_count"`
	DominantIntent    string   `json:"dominant_intent"`
	ScreenshotFocus   []string `json:"screenshot_focus"`
}

// CPPValidation is the character-limit validation of a CPP set.
type CPPValidation struct {
	IsValid      bool     `json:"is_valid"`
	ErrorCount   int      `json:"error_count"`
	WarningCount int      `json:"warning_count"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
}

// CPPStrategy carries the deployment guidance attached to every plan.
type CPPStrategy struct {
	Organic       string   `json:"organic"`
	Paid          string   `json:"paid"`
	BestPractices []string `json:"best_practices"`
}

// CPPPlan is the full Custom Product Page strategy for an app.
type CPPPlan struct {
	Platform                   Platform            `json:"platform"`
	TotalCPPs                  int                 `json:"total_cpps"`
	MaxAllowed                 int                 `json:"max_allowed"`
	RemainingSlots             int                 `json:"remaining_slots"`
	OrganicCPPs                []CPPConfig         `json:"organic_cpps"`
	PaidCPPs                   []CPPConfig         `json:"paid_cpps"`
	SegmentKeywordDistribution map[string][]string `json:"segment_keyword_distribution"`
	Validation                 CPPValidation       `json:"validation"`
	StrategyNotes              CPPStrategy         `json:"strategy_notes"`
}

// clusterInfo is the per-keyword cluster assignment used for distribution.
type clusterInfo struct {
	clusterName string
	intent      keyword.Intent
}

// GenerateCPPMetadata builds organic and paid Custom Product Page variants
// for each user segment. Keywords are distributed to segments by intent
// cluster when clusters are given, round-robin otherwise. One organic and
// one paid page is planned per segment; exceeding Apple's 70-page limit is
// an error, as is calling this on a Google optimizer.
func (o *Optimizer) GenerateCPPMetadata(segments, keywords []string, clusters []keyword.Cluster) (CPPPlan, error) {
	if o.platform != Apple {
		return CPPPlan{}, fmt.Errorf("custom product pages are only available on the Apple App Store")
	}

	totalCPPs := len(segments) * 2
	if totalCPPs > MaxCPPCount {
		return CPPPlan{}, fmt.Errorf("total CPP count (%d) exceeds Apple limit of %d: reduce segments from %d to at most %d",
			totalCPPs, MaxCPPCount, len(segments), MaxCPPCount/2)
	}

	clusterMap := make(map[string]clusterInfo)
	for _, cluster := range clusters {
		for _, kw := range cluster.Keywords {
			clusterMap[strings.ToLower(kw)] = clusterInfo{
				clusterName: cluster.Name,
				intent:      cluster.Intent,
			}
		}
	}

	segmentKeywords := distributeKeywords(segments, keywords, clusterMap)

	organic := make([]CPPConfig, 0, len(segments))
	paid := make([]CPPConfig, 0, len(segments))
	for _, segment := range segments {
		assigned := segmentKeywords[segment]
		organic = append(organic, o.buildCPP(segment, assigned, "organic", clusterMap))
		paid = append(paid, o.buildCPP(segment, assigned, "paid", clusterMap))
	}

	all := make([]CPPConfig, 0, totalCPPs)
	all = append(all, organic...)
	all = append(all, paid...)

	return CPPPlan{
		Platform:                   Apple,
		TotalCPPs:                  totalCPPs,
		MaxAllowed:                 MaxCPPCount,
		RemainingSlots:             MaxCPPCount - totalCPPs,
		OrganicCPPs:                organic,
		PaidCPPs:                   paid,
		SegmentKeywordDistribution: segmentKeywords,
		Validation:                 validateCPPs(all),
		StrategyNotes: CPPStrategy{
			Organic: "Organic CPPs appear in App Store search results based on keyword relevance. " +
				"Tailor each page to a specific user intent so Apple can match the right page to the right query.",
			Paid: "Paid CPPs are used with Apple Search Ads. Each paid CPP should have messaging " +
				"aligned to the ad keyword theme. Use strong CTAs and social proof specific to the target segment.",
			BestPractices: []string{
				"Create separate CPPs for distinct user segments (beginners vs experts)",
				"Align screenshot order with segment priorities",
				"Use segment-specific language in title and subtitle variants",
				"Test CPP performance monthly and retire underperformers",
				"Organic CPPs should focus on different keyword themes",
				"Paid CPPs should mirror the ad copy messaging",
				"Apple allows up to 70 CPPs - start with 3-5 and expand based on data",
				"Each CPP can have unique screenshots, app previews, and promotional text",
			},
		},
	}, nil
}

// distributeKeywords assigns keywords to segments. With cluster data each
// segment takes one intent group in first-seen order plus a round-robin
// share of unclustered keywords; without it, keywords round-robin directly.
func distributeKeywords(segments, keywords []string, clusterMap map[string]clusterInfo) map[string][]string {
	segmentKeywords := make(map[string][]string, len(segments))
	for _, segment := range segments {
		segmentKeywords[segment] = []string{}
	}
	if len(segments) == 0 {
		return segmentKeywords
	}

	if len(clusterMap) == 0 {
		for i, kw := range keywords {
			segment := segments[i%len(segments)]
			segmentKeywords[segment] = append(segmentKeywords[segment], kw)
		}
		return segmentKeywords
	}

	intentGroups := make(map[keyword.Intent][]string)
	var intentOrder []keyword.Intent
	var unclustered []string
	for _, kw := range keywords {
		info, ok := clusterMap[strings.ToLower(kw)]
		if !ok {
			unclustered = append(unclustered, kw)
			continue
		}
		if _, seen := intentGroups[info.intent]; !seen {
			intentOrder = append(intentOrder, info.intent)
		}
		intentGroups[info.intent] = append(intentGroups[info.intent], kw)
	}

	for idx, segment := range segments {
		if idx < len(intentOrder) {
			segmentKeywords[segment] = append(segmentKeywords[segment], intentGroups[intentOrder[idx]]...)
		}
		for j, kw := range unclustered {
			if j%len(segments) == idx {
				segmentKeywords[segment] = append(segmentKeywords[segment], kw)
			}
		}
	}
	return segmentKeywords
}

func (o *Optimizer) buildCPP(segment string, assigned []string, cppType string, clusterMap map[string]clusterInfo) CPPConfig {
	titleLimit := o.limits["title"]
	subtitleLimit := o.limits["subtitle"]

	primary := segment
	if len(assigned) > 0 {
		primary = assigned[0]
	}

	var title, subtitle string
	if cppType == "organic" {
		title = cppTitle(segment, primary, titleLimit)
		subtitle = cppSubtitle(segment, assigned, subtitleLimit)
	} else {
		title = cppTitlePaid(primary, titleLimit)
		subtitle = cppSubtitlePaid(segment, subtitleLimit)
	}

	dominantIntent := string(keyword.IntentGeneral)
	if len(clusterMap) > 0 && len(assigned) > 0 {
		counts := make(map[keyword.Intent]int)
		var best keyword.Intent
		bestCount := 0
		for _, kw := range assigned {
			info, ok := clusterMap[strings.ToLower(kw)]
			if !ok {
				continue
			}
			counts[info.intent]++
			if counts[info.intent] > bestCount {
				bestCount = counts[info.intent]
				best = info.intent
			}
		}
		if bestCount > 0 {
			dominantIntent = string(best)
		}
	}

	keywordAssignment := assigned
	if len(keywordAssignment) > 10 {
		keywordAssignment = keywordAssignment[:10]
	}

	return CPPConfig{
		Segment:           segment,
		CPPType:           cppType,
		TitleVariant:      title,
		TitleCharCount:    len(title),
		TitleLimit:        titleLimit,
		SubtitleVariant:   subtitle,
		SubtitleCharCount: len(subtitle),
		SubtitleLimit:     subtitleLimit,
		KeywordAssignment: keywordAssignment,
		KeywordCount:      len(keywordAssignment),
		DominantIntent:    dominantIntent,
		ScreenshotFocus:   screenshotFocus(segment, assigned),
	}
}

func cppTitle(segment, primary string, limit int) string {
	p := titlePhrase(primary)
	for _, candidate := range []string{
		p,
		p + " App",
		"Best " + p,
		titlePhrase(segment) + " " + p,
	} {
		if len(candidate) <= limit {
			return candidate
		}
	}
	return truncate(p, limit)
}

func cppTitlePaid(primary string, limit int) string {
	p := titlePhrase(primary)
	for _, candidate := range []string{
		"Try " + p + " Free",
		"Get " + p + " Now",
		p + " - Free",
		"Start " + p,
	} {
		if len(candidate) <= limit {
			return candidate
		}
	}
	return truncate(p, limit)
}

func cppSubtitle(segment string, assigned []string, limit int) string {
	seg := strings.ToLower(segment)
	candidates := []string{
		"Made for " + seg,
		"Perfect for " + seg,
	}
	if len(assigned) > 1 {
		candidates = append(candidates, titlePhrase(assigned[1])+" for "+seg)
	}
	candidates = append(candidates, "Built for "+seg)

	for _, candidate := range candidates {
		if len(candidate) <= limit {
			return candidate
		}
	}
	return truncate("For "+seg, limit)
}

func cppSubtitlePaid(segment string, limit int) string {
	seg := strings.ToLower(segment)
	for _, candidate := range []string{
		"Join millions of " + seg,
		"#1 app for " + seg,
		"Loved by " + seg,
		"Top rated for " + seg,
	} {
		if len(candidate) <= limit {
			return candidate
		}
	}
	return truncate("For "+seg, limit)
}

// segmentFocusMap maps common segment names to screenshot themes. Matching
// is by substring so "beginner users" still hits the "beginner" entry.
var segmentFocusMap = []struct {
	key   string
	focus []string
}{
	{"beginner", []string{
		"Onboarding simplicity",
		"Getting started flow",
		"Simple UI overview",
		"Quick start guide visual",
	}},
	{"power user", []string{
		"Advanced features showcase",
		"Customization options",
		"Keyboard shortcuts / power tools",
		"Workflow automation examples",
	}},
	{"enterprise", []string{
		"Team collaboration features",
		"Admin dashboard / controls",
		"Security and compliance badges",
		"Integration ecosystem",
	}},
	{"professional", []string{
		"Productivity metrics",
		"Professional templates",
		"Export and sharing options",
		"Cross-device sync",
	}},
	{"student", []string{
		"Study tools and features",
		"Affordable pricing",
		"Collaboration with classmates",
		"Offline access capability",
	}},
}

func screenshotFocus(segment string, assigned []string) []string {
	seg := strings.ToLower(segment)
	for _, entry := range segmentFocusMap {
		if strings.Contains(seg, entry.key) {
			return entry.focus
		}
	}

	focus := []string{"Key feature highlight", "User interface overview"}
	n := len(assigned)
	if n > 2 {
		n = 2
	}
	for _, kw := range assigned[:n] {
		focus = append(focus, "Showcase "+strings.ToLower(kw)+" capability")
	}
	return focus
}

func validateCPPs(all []CPPConfig) CPPValidation {
	var errors, warnings []string
	for _, cpp := range all {
		label := fmt.Sprintf("%s CPP [%s]", strings.ToUpper(cpp.CPPType), cpp.Segment)
		if cpp.TitleCharCount > cpp.TitleLimit {
			errors = append(errors, fmt.Sprintf("%s: Title exceeds %d chars (%d chars): '%s'",
				label, cpp.TitleLimit, cpp.TitleCharCount, cpp.TitleVariant))
		}
		if cpp.SubtitleCharCount > cpp.SubtitleLimit {
			errors = append(errors, fmt.Sprintf("%s: Subtitle exceeds %d chars (%d chars): '%s'",
				label, cpp.SubtitleLimit, cpp.SubtitleCharCount, cpp.SubtitleVariant))
		}
		if cpp.KeywordCount == 0 {
			warnings = append(warnings, fmt.Sprintf("%s: No keywords assigned - CPP may not rank for any queries", label))
		}
	}

	return CPPValidation{
		IsValid:      len(errors) == 0,
		ErrorCount:   len(errors),
		WarningCount: len(warnings),
		Errors:       errors,
		Warnings:     warnings,
	}
}
