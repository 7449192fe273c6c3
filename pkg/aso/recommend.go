package aso

import (
	"fmt"
	"sort"
)

// Priority ranks a recommendation's urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Recommendation is one prioritized action item for a dimension.
type Recommendation struct {
	Category       Dimension `json:"category"`
	Priority       Priority  `json:"priority"`
	Action         string    `json:"action"`
	Details        string    `json:"details"`
	ExpectedImpact string    `json:"expected_impact"`
}

// GenerateRecommendations emits at most one recommendation per dimension
// based on its sub-score. Each dimension has its own threshold ladder; a
// score clearing every rung emits nothing. Output order follows the
// canonical dimension order.
func GenerateRecommendations(metadata, ratings, keywords, conversion, technical, visual float64) []Recommendation {
	var recs []Recommendation

	switch {
	case metadata < 60:
		recs = append(recs, Recommendation{
			Category:       DimensionMetadata,
			Priority:       PriorityHigh,
			Action:         "Optimize app title and description",
			Details:        "Add more keywords to title, expand description to 1500-2000 characters, improve keyword density to 3-5%",
			ExpectedImpact: "Improve discoverability and ranking potential",
		})
	case metadata < 80:
		recs = append(recs, Recommendation{
			Category:       DimensionMetadata,
			Priority:       PriorityMedium,
			Action:         "Refine metadata for better keyword targeting",
			Details:        "Test variations of title/subtitle, optimize keyword field for Apple",
			ExpectedImpact: "Incremental ranking improvements",
		})
	}

	switch {
	case ratings < 60:
		recs = append(recs, Recommendation{
			Category:       DimensionRatings,
			Priority:       PriorityHigh,
			Action:         "Improve rating quality and volume",
			Details:        "Address top user complaints, implement in-app rating prompts, respond to negative reviews",
			ExpectedImpact: "Better conversion rates and trust signals",
		})
	case ratings < 80:
		recs = append(recs, Recommendation{
			Category:       DimensionRatings,
			Priority:       PriorityMedium,
			Action:         "Increase rating velocity",
			Details:        "Optimize timing of rating requests, encourage satisfied users to rate",
			ExpectedImpact: "Sustained rating quality",
		})
	}

	switch {
	case keywords < 60:
		recs = append(recs, Recommendation{
			Category:       DimensionKeywords,
			Priority:       PriorityHigh,
			Action:         "Improve keyword rankings",
			Details:        "Target long-tail keywords with lower competition, update metadata with high-potential keywords, build backlinks",
			ExpectedImpact: "Significant improvement in organic visibility",
		})
	case keywords < 80:
		recs = append(recs, Recommendation{
			Category:       DimensionKeywords,
			Priority:       PriorityMedium,
			Action:         "Expand keyword coverage",
			Details:        "Target additional related keywords, test seasonal keywords, localize for new markets",
			ExpectedImpact: "Broader reach and more discovery opportunities",
		})
	}

	switch {
	case conversion < 60:
		recs = append(recs, Recommendation{
			Category:       DimensionConversion,
			Priority:       PriorityHigh,
			Action:         "Optimize store listing for conversions",
			Details:        "Improve screenshots and icon, strengthen value proposition in description, add video preview",
			ExpectedImpact: "Higher impression-to-install conversion",
		})
	case conversion < 80:
		recs = append(recs, Recommendation{
			Category:       DimensionConversion,
			Priority:       PriorityMedium,
			Action:         "Test visual asset variations",
			Details:        "A/B test different icon designs and screenshot sequences",
			ExpectedImpact: "Incremental conversion improvements",
		})
	}

	switch {
	case technical < 40:
		recs = append(recs, Recommendation{
			Category: DimensionTechnical,
			Priority: PriorityHigh,
			Action:   "Address critical stability issues",
			Details: "Crash rate and/or ANR rate exceed acceptable thresholds. " +
				"Prioritize crash fixes, reduce ANR by moving heavy work off the main thread, " +
				"and optimize battery usage. Google Play penalizes apps with poor Android Vitals.",
			ExpectedImpact: "Improved ranking on Google Play, reduced uninstalls, better user retention",
		})
	case technical < 70:
		recs = append(recs, Recommendation{
			Category: DimensionTechnical,
			Priority: PriorityMedium,
			Action:   "Improve app stability and performance",
			Details: "Technical metrics are acceptable but not optimal. " +
				"Target crash rate below 1%, ANR rate below 0.5%, " +
				"and battery impact below 5% to reach top-tier performance.",
			ExpectedImpact: "Better Android Vitals standing, improved store ranking signals",
		})
	case technical < 90:
		recs = append(recs, Recommendation{
			Category: DimensionTechnical,
			Priority: PriorityLow,
			Action:   "Fine-tune technical performance",
			Details: "Technical metrics are good. Consider further optimizing startup time, " +
				"reducing memory footprint, and monitoring for regressions in new releases.",
			ExpectedImpact: "Marginal ranking improvement, sustained app quality",
		})
	}

	switch {
	case visual < 40:
		recs = append(recs, Recommendation{
			Category: DimensionVisual,
			Priority: PriorityHigh,
			Action:   "Add captions and video to screenshots",
			Details: "Screenshots lack captions and no video preview is present. " +
				"Add descriptive text overlays to screenshots highlighting key features, " +
				"create an app preview video, and set up Custom Product Pages (Apple) " +
				"or custom store listings (Google) for targeted campaigns.",
			ExpectedImpact: "Significant improvement in conversion rate (captions can boost CVR 15-30%)",
		})
	case visual < 80:
		recs = append(recs, Recommendation{
			Category: DimensionVisual,
			Priority: PriorityMedium,
			Action:   "Enhance visual assets for better conversion",
			Details: "Some visual elements are missing. Ensure all screenshots have captions, " +
				"add a video preview if missing, and create at least one Custom Product Page " +
				"to target specific user segments.",
			ExpectedImpact: "Incremental conversion improvement through better visual storytelling",
		})
	}

	return recs
}

// PrioritizeActions returns the top three recommendations sorted by priority.
// The sort is stable: within a priority tier, dimension order is preserved.
func PrioritizeActions(recs []Recommendation) []Recommendation {
	sorted := make([]Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.rank() < sorted[j].Priority.rank()
	})
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}
	return sorted
}

// identifyStrengths lists dimensions scoring at or above 75.
func identifyStrengths(breakdown []DimensionResult) []string {
	var strengths []string
	for _, result := range breakdown {
		if result.Score >= 75 {
			strengths = append(strengths,
				fmt.Sprintf("%s: %.1f/100", result.Dimension.DisplayName(), result.Score))
		}
	}
	if len(strengths) == 0 {
		return []string{"Focus on building strengths across all areas"}
	}
	return strengths
}

// identifyWeaknesses lists dimensions scoring below 60.
func identifyWeaknesses(breakdown []DimensionResult) []string {
	var weaknesses []string
	for _, result := range breakdown {
		if result.Score < 60 {
			weaknesses = append(weaknesses,
				fmt.Sprintf("%s: %.1f/100 - needs improvement", result.Dimension.DisplayName(), result.Score))
		}
	}
	if len(weaknesses) == 0 {
		return []string{"All areas performing adequately"}
	}
	return weaknesses
}
