package aso

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightProfilesSumTo100(t *testing.T) {
	assert.Equal(t, 100, DefaultWeights.Sum())
	assert.Equal(t, 100, GoogleWeights.Sum())
	assert.Equal(t, 100, AppleWeights.Sum())
}

func TestResolveWeights(t *testing.T) {
	tests := []struct {
		platform string
		want     WeightProfile
		wantName string
	}{
		{"apple", AppleWeights, "apple"},
		{"Apple", AppleWeights, "apple"},
		{"GOOGLE", GoogleWeights, "google"},
		{"", DefaultWeights, "default"},
		{"windows", DefaultWeights, "default"},
	}
	for _, tt := range tests {
		weights, name := ResolveWeights(tt.platform)
		assert.Equal(t, tt.want, weights, "platform %q", tt.platform)
		assert.Equal(t, tt.wantName, name, "platform %q", tt.platform)
	}
}

func TestScoreTechnicalPerformance(t *testing.T) {
	// All metrics at or below the good thresholds.
	perfect := ScoreTechnicalPerformance(TechnicalMetrics{
		CrashRate: 0.5, ANRRate: 0.3, BatteryImpact: 3,
	})
	assert.Equal(t, 100.0, perfect)

	// All metrics past the acceptable thresholds: crash 10, anr 8.75,
	// battery floored at 0.
	poor := ScoreTechnicalPerformance(TechnicalMetrics{
		CrashRate: 3.0, ANRRate: 2.0, BatteryImpact: 15,
	})
	assert.Equal(t, 18.8, poor)

	// Midpoint between good and acceptable loses exactly half a budget each.
	mid := ScoreTechnicalPerformance(TechnicalMetrics{
		CrashRate: 1.5, ANRRate: 0.75, BatteryImpact: 7.5,
	})
	assert.Equal(t, 75.0, mid)
}

func TestScoreMetadataQuality(t *testing.T) {
	full := ScoreMetadataQuality(MetadataMetrics{
		TitleKeywordCount:  2,
		TitleLength:        30,
		DescriptionLength:  2000,
		DescriptionQuality: 1.0,
		KeywordDensity:     3.0,
	})
	assert.Equal(t, 100.0, full)

	// Zero input bottoms out but stays non-negative: title 10 minus the
	// short-title penalty, description 5, density 0.
	empty := ScoreMetadataQuality(MetadataMetrics{})
	assert.Equal(t, 10.0, empty)

	// Keyword stuffing decays 5 points per percentage point over optimal.
	stuffed := ScoreMetadataQuality(MetadataMetrics{
		TitleKeywordCount: 2, TitleLength: 30,
		DescriptionLength: 2000, DescriptionQuality: 1.0,
		KeywordDensity: 7.0,
	})
	assert.Equal(t, 90.0, stuffed)
}

func TestScoreRatingsReviews(t *testing.T) {
	full := ScoreRatingsReviews(RatingsMetrics{
		AverageRating: 4.5, TotalRatings: 5000, RecentRatings30d: 150,
	})
	assert.Equal(t, 100.0, full)

	// Rating exactly between min and target gives 40 quality points.
	mid := ScoreRatingsReviews(RatingsMetrics{
		AverageRating: 4.0, TotalRatings: 5000, RecentRatings30d: 150,
	})
	assert.Equal(t, 90.0, mid)

	low := ScoreRatingsReviews(RatingsMetrics{AverageRating: 2.0})
	assert.Equal(t, 15.0, low)
}

func TestScoreKeywordPerformance(t *testing.T) {
	full := ScoreKeywordPerformance(KeywordPerformance{
		Top10: 10, Top50: 20, Top100: 30, ImprovingKeywords: 6,
	})
	assert.Equal(t, 100.0, full)

	none := ScoreKeywordPerformance(KeywordPerformance{})
	assert.Equal(t, 0.0, none)
}

func TestScoreConversionMetrics(t *testing.T) {
	full := ScoreConversionMetrics(ConversionMetrics{
		ImpressionToInstall: 0.10, Downloads30d: 20000, DownloadsTrend: TrendUp,
	})
	assert.Equal(t, 100.0, full)

	declining := ScoreConversionMetrics(ConversionMetrics{
		ImpressionToInstall: 0.10, Downloads30d: 20000, DownloadsTrend: TrendDown,
	})
	assert.Equal(t, 90.0, declining)
}

func TestScoreVisualOptimization(t *testing.T) {
	assert.Equal(t, 100.0, ScoreVisualOptimization(VisualMetrics{
		HasCaptions: true, CPPCount: 3, HasVideo: true,
	}))
	assert.Equal(t, 60.0, ScoreVisualOptimization(VisualMetrics{HasCaptions: true}))
	assert.Equal(t, 0.0, ScoreVisualOptimization(VisualMetrics{}))
}

func TestHealthStatus(t *testing.T) {
	assert.Equal(t, "Excellent - Top-tier ASO performance", HealthStatus(80))
	assert.Equal(t, "Good - Competitive ASO with room for improvement", HealthStatus(79.9))
	assert.Equal(t, "Good - Competitive ASO with room for improvement", HealthStatus(65))
	assert.Equal(t, "Fair - Needs strategic improvements", HealthStatus(50))
	assert.Equal(t, "Poor - Requires immediate ASO overhaul", HealthStatus(49.9))
}

func TestScoreNeutralDefaults(t *testing.T) {
	scorer := NewScorer("default")
	report := scorer.Score(MetadataMetrics{}, RatingsMetrics{}, KeywordPerformance{}, ConversionMetrics{}, nil, nil)

	byDim := make(map[Dimension]DimensionResult)
	for _, result := range report.ScoreBreakdown {
		byDim[result.Dimension] = result
	}

	technical := byDim[DimensionTechnical]
	require.NotNil(t, technical.DataProvided)
	assert.False(t, *technical.DataProvided)
	assert.Equal(t, 50.0, technical.Score)

	visual := byDim[DimensionVisual]
	require.NotNil(t, visual.DataProvided)
	assert.False(t, *visual.DataProvided)
	assert.Equal(t, 50.0, visual.Score)

	// Scored dimensions carry no data-provided marker.
	assert.Nil(t, byDim[DimensionMetadata].DataProvided)
}

func TestScoreOverallIsWeightedAverage(t *testing.T) {
	scorer := NewScorer("apple")
	report := scorer.Score(
		MetadataMetrics{TitleKeywordCount: 2, TitleLength: 30, DescriptionLength: 2000, DescriptionQuality: 1.0, KeywordDensity: 3.0},
		RatingsMetrics{AverageRating: 4.5, TotalRatings: 5000, RecentRatings30d: 150},
		KeywordPerformance{Top10: 10, Top50: 20, Top100: 30, ImprovingKeywords: 6},
		ConversionMetrics{ImpressionToInstall: 0.10, Downloads30d: 20000, DownloadsTrend: TrendUp},
		&TechnicalMetrics{CrashRate: 0.5, ANRRate: 0.3, BatteryImpact: 3},
		&VisualMetrics{HasCaptions: true, CPPCount: 2, HasVideo: true},
	)

	// Every sub-score is 100, so the weighted average is exactly 100.
	assert.Equal(t, 100.0, report.OverallScore)
	assert.Equal(t, "apple", report.Platform)
	assert.Len(t, report.ScoreBreakdown, 6)

	var total float64
	for _, result := range report.ScoreBreakdown {
		total += result.WeightedContribution
	}
	assert.InDelta(t, report.OverallScore, total, 0.31) // six rounded contributions
}

func TestScoreBreakdownOrder(t *testing.T) {
	report := NewScorer("google").Score(MetadataMetrics{}, RatingsMetrics{}, KeywordPerformance{}, ConversionMetrics{}, nil, nil)
	require.Len(t, report.ScoreBreakdown, 6)
	for i, dim := range Dimensions() {
		assert.Equal(t, dim, report.ScoreBreakdown[i].Dimension)
	}
}

func TestScoreMonotonicInRatings(t *testing.T) {
	base := ScoreRatingsReviews(RatingsMetrics{AverageRating: 3.6, TotalRatings: 500, RecentRatings30d: 20})
	better := ScoreRatingsReviews(RatingsMetrics{AverageRating: 4.2, TotalRatings: 2000, RecentRatings30d: 60})
	assert.Greater(t, better, base)
}
