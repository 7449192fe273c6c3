// Package aso computes a composite App Store Optimization health score from
// raw store metrics. Six independent dimension scorers interpolate against
// benchmark thresholds; a platform-weighted aggregation combines them into a
// single 0-100 score with prioritized recommendations.
//
// All scoring is deterministic closed-form arithmetic over caller-supplied
// values. The package does no I/O and never rejects numeric input: missing
// fields default, out-of-range values degrade to the 0/100 boundaries.
package aso

import "math"

// Scorer computes audit reports for one platform's weight profile.
type Scorer struct {
	platform string
	weights  WeightProfile
}

// NewScorer creates a scorer for the given platform ("apple", "google",
// case-insensitive; anything else selects the default weight profile).
func NewScorer(platform string) *Scorer {
	weights, normalized := ResolveWeights(platform)
	return &Scorer{platform: normalized, weights: weights}
}

// NewScorerWithWeights creates a scorer with a custom weight profile, e.g.
// from a config override. The profile should sum to 100; callers validate.
func NewScorerWithWeights(platform string, weights WeightProfile) *Scorer {
	_, normalized := ResolveWeights(platform)
	return &Scorer{platform: normalized, weights: weights}
}

// Platform returns the normalized platform name ("apple", "google" or
// "default").
func (s *Scorer) Platform() string { return s.platform }

// Weights returns the active weight profile.
func (s *Scorer) Weights() WeightProfile { return s.weights }

// Score computes the full audit report. Technical and visual metrics are
// optional: nil scores the dimension at the neutral 50.0 rather than failing,
// so callers without stability or asset data still get a comparable result.
func (s *Scorer) Score(
	metadata MetadataMetrics,
	ratings RatingsMetrics,
	keywords KeywordPerformance,
	conversion ConversionMetrics,
	technical *TechnicalMetrics,
	visual *VisualMetrics,
) Report {
	scores := map[Dimension]float64{
		DimensionMetadata:   ScoreMetadataQuality(metadata),
		DimensionRatings:    ScoreRatingsReviews(ratings),
		DimensionKeywords:   ScoreKeywordPerformance(keywords),
		DimensionConversion: ScoreConversionMetrics(conversion),
		DimensionTechnical:  50.0,
		DimensionVisual:     50.0,
	}
	if technical != nil {
		scores[DimensionTechnical] = ScoreTechnicalPerformance(*technical)
	}
	if visual != nil {
		scores[DimensionVisual] = ScoreVisualOptimization(*visual)
	}

	var overall float64
	breakdown := make([]DimensionResult, 0, 6)
	for _, dim := range Dimensions() {
		weight := s.weights.Weight(dim)
		contribution := scores[dim] * float64(weight) / 100
		overall += contribution

		result := DimensionResult{
			Dimension:            dim,
			Score:                scores[dim],
			Weight:               weight,
			WeightedContribution: round1(contribution),
		}
		switch dim {
		case DimensionTechnical:
			provided := technical != nil
			result.DataProvided = &provided
		case DimensionVisual:
			provided := visual != nil
			result.DataProvided = &provided
		}
		breakdown = append(breakdown, result)
	}

	recommendations := GenerateRecommendations(
		scores[DimensionMetadata],
		scores[DimensionRatings],
		scores[DimensionKeywords],
		scores[DimensionConversion],
		scores[DimensionTechnical],
		scores[DimensionVisual],
	)

	return Report{
		OverallScore:    round1(overall),
		HealthStatus:    HealthStatus(overall),
		Platform:        s.platform,
		WeightsUsed:     s.weights,
		ScoreBreakdown:  breakdown,
		Recommendations: recommendations,
		PriorityActions: PrioritizeActions(recommendations),
		Strengths:       identifyStrengths(breakdown),
		Weaknesses:      identifyWeaknesses(breakdown),
	}
}

// ScoreInput scores a bundled MetricsInput using its embedded platform.
func ScoreInput(in MetricsInput) Report {
	return NewScorer(in.Platform).Score(
		in.Metadata, in.Ratings, in.Keywords, in.Conversion, in.Technical, in.Visual,
	)
}

// ScoreMetadataQuality scores title, description and keyword usage (0-100).
// Point budget: title 35, description 35, keyword density 30.
func ScoreMetadataQuality(m MetadataMetrics) float64 {
	// Title: keyed on keyword count, small penalty for wasting title space.
	titleScore := 10.0
	switch {
	case float64(m.TitleKeywordCount) >= Benchmarks.TitleKeywordUsage.Target:
		titleScore = 35
	case float64(m.TitleKeywordCount) >= Benchmarks.TitleKeywordUsage.Min:
		titleScore = 25
	}
	if m.TitleLength <= 25 {
		titleScore -= 5
	}
	titleScore = math.Min(titleScore, 35)

	// Description: length tiers plus an externally-assessed quality bonus.
	descScore := 5.0
	switch {
	case float64(m.DescriptionLength) >= Benchmarks.DescriptionLength.Target:
		descScore = 25
	case float64(m.DescriptionLength) >= Benchmarks.DescriptionLength.Min:
		descScore = 15
	}
	descScore = math.Min(descScore+m.DescriptionQuality*10, 35)

	// Density: full credit inside the optimal window, proportional below it,
	// 5 points per percentage point of stuffing above it.
	var densityScore float64
	density := m.KeywordDensity
	switch {
	case density >= Benchmarks.KeywordDensity.Min && density <= Benchmarks.KeywordDensity.Optimal:
		densityScore = 30
	case density < Benchmarks.KeywordDensity.Min:
		densityScore = density / Benchmarks.KeywordDensity.Min * 20
	default:
		densityScore = math.Max(30-(density-Benchmarks.KeywordDensity.Optimal)*5, 0)
	}

	return round1(math.Max(titleScore+descScore+densityScore, 0))
}

// ScoreRatingsReviews scores rating quality, volume and velocity (0-100).
// Point budget: quality 50, volume 30, velocity 20.
func ScoreRatingsReviews(r RatingsMetrics) float64 {
	bench := Benchmarks.AverageRating
	var quality float64
	switch {
	case r.AverageRating >= bench.Target:
		quality = 50
	case r.AverageRating >= bench.Min:
		proportion := (r.AverageRating - bench.Min) / (bench.Target - bench.Min)
		quality = 30 + proportion*20
	case r.AverageRating >= 3.0:
		quality = 20
	default:
		quality = 10
	}

	count := Benchmarks.RatingsCount
	total := float64(r.TotalRatings)
	var volume float64
	switch {
	case total >= count.Target:
		volume = 30
	case total >= count.Min:
		proportion := (total - count.Min) / (count.Target - count.Min)
		volume = 15 + proportion*15
	default:
		volume = total / count.Min * 15
	}

	var velocity float64
	switch {
	case r.RecentRatings30d > 100:
		velocity = 20
	case r.RecentRatings30d > 50:
		velocity = 15
	case r.RecentRatings30d > 10:
		velocity = 10
	default:
		velocity = 5
	}

	return round1(clampScore(quality + volume + velocity))
}

// ScoreKeywordPerformance scores ranking positions (0-100).
// Point budget: top-10 50, top-50 30, coverage 10, trend 10.
func ScoreKeywordPerformance(k KeywordPerformance) float64 {
	top10 := bandScore(float64(k.Top10), Benchmarks.KeywordsTop10, 25, 50)
	top50 := bandScore(float64(k.Top50), Benchmarks.KeywordsTop50, 15, 30)

	coverage := math.Min(float64(k.Top100)/30*10, 10)

	var trend float64
	switch {
	case k.ImprovingKeywords > 5:
		trend = 10
	case k.ImprovingKeywords > 0:
		trend = 5
	}

	return round1(clampScore(top10 + top50 + coverage + trend))
}

// ScoreConversionMetrics scores impression-to-install performance (0-100).
// Point budget: conversion rate 70, download velocity 20, trend 10.
func ScoreConversionMetrics(c ConversionMetrics) float64 {
	rate := bandScore(c.ImpressionToInstall, Benchmarks.ConversionRate, 35, 70)

	var velocity float64
	switch {
	case c.Downloads30d > 10000:
		velocity = 20
	case c.Downloads30d > 1000:
		velocity = 15
	case c.Downloads30d > 100:
		velocity = 10
	default:
		velocity = 5
	}

	var trend float64
	switch c.DownloadsTrend {
	case TrendUp:
		trend = 10
	case TrendStable:
		trend = 5
	}

	return round1(clampScore(rate + velocity + trend))
}

// ScoreTechnicalPerformance scores stability metrics (0-100). Lower raw
// values are better here: full budget at or below the good threshold, linear
// decay to the acceptable threshold, steep per-point penalty beyond it.
// Point budget: crash rate 40, ANR rate 35, battery impact 25.
func ScoreTechnicalPerformance(t TechnicalMetrics) float64 {
	crash := inverseBandScore(t.CrashRate, TechnicalBenchmarks.CrashRate, 40, 10)
	anr := inverseBandScore(t.ANRRate, TechnicalBenchmarks.ANRRate, 35, 8.75)
	battery := inverseBandScore(t.BatteryImpact, TechnicalBenchmarks.BatteryImpact, 25, 2.5)
	return round1(clampScore(crash + anr + battery))
}

// ScoreVisualOptimization maps the visual-asset checklist to 0-100. Captions
// carry most of the weight: caption text is indexed and moves conversion.
func ScoreVisualOptimization(v VisualMetrics) float64 {
	points := 0
	if v.HasCaptions {
		points += 3
	}
	if v.CPPCount > 0 {
		points++
	}
	if v.HasVideo {
		points++
	}
	return round1(float64(points) / 5 * 100)
}

// HealthStatus buckets an overall score into the four-tier health label.
func HealthStatus(overall float64) string {
	switch {
	case overall >= 80:
		return "Excellent - Top-tier ASO performance"
	case overall >= 65:
		return "Good - Competitive ASO with room for improvement"
	case overall >= 50:
		return "Fair - Needs strategic improvements"
	default:
		return "Poor - Requires immediate ASO overhaul"
	}
}

// bandScore interpolates value against a higher-is-better band: full budget
// at or above target, halfBudget..budget between min and target, proportional
// share of halfBudget below min.
func bandScore(value float64, b Band, halfBudget, budget float64) float64 {
	switch {
	case value >= b.Target:
		return budget
	case value >= b.Min:
		proportion := (value - b.Min) / (b.Target - b.Min)
		return halfBudget + proportion*(budget-halfBudget)
	default:
		return value / b.Min * halfBudget
	}
}

// inverseBandScore interpolates value against a lower-is-better band: full
// budget at or below good, linear decay to half budget at acceptable, then
// penaltySlope points per unit of excess, floored at zero.
func inverseBandScore(value float64, b InverseBand, budget, penaltySlope float64) float64 {
	half := budget / 2
	switch {
	case value <= b.Good:
		return budget
	case value <= b.Acceptable:
		proportion := (value - b.Good) / (b.Acceptable - b.Good)
		return budget - proportion*half
	default:
		return math.Max(half-(value-b.Acceptable)*penaltySlope, 0)
	}
}

func clampScore(v float64) float64 {
	return math.Max(math.Min(v, 100), 0)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
