package aso

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findRec(recs []Recommendation, d Dimension) (Recommendation, bool) {
	for _, rec := range recs {
		if rec.Category == d {
			return rec, true
		}
	}
	return Recommendation{}, false
}

func TestGenerateRecommendationsThresholds(t *testing.T) {
	// Everything healthy: nothing to recommend.
	recs := GenerateRecommendations(90, 90, 90, 90, 95, 85)
	assert.Empty(t, recs)

	// Every dimension below its lowest rung emits a high priority action.
	recs = GenerateRecommendations(50, 50, 50, 50, 30, 30)
	require.Len(t, recs, 6)
	for _, rec := range recs {
		assert.Equal(t, PriorityHigh, rec.Priority)
	}
}

func TestGenerateRecommendationsLadders(t *testing.T) {
	tests := []struct {
		name      string
		scores    [6]float64
		dimension Dimension
		want      Priority
	}{
		{"metadata medium band", [6]float64{70, 90, 90, 90, 95, 85}, DimensionMetadata, PriorityMedium},
		{"ratings medium band", [6]float64{90, 79.9, 90, 90, 95, 85}, DimensionRatings, PriorityMedium},
		{"technical low band", [6]float64{90, 90, 90, 90, 80, 85}, DimensionTechnical, PriorityLow},
		{"technical medium band", [6]float64{90, 90, 90, 90, 50, 85}, DimensionTechnical, PriorityMedium},
		{"visual medium band", [6]float64{90, 90, 90, 90, 95, 60}, DimensionVisual, PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.scores
			recs := GenerateRecommendations(s[0], s[1], s[2], s[3], s[4], s[5])
			require.Len(t, recs, 1)
			rec, ok := findRec(recs, tt.dimension)
			require.True(t, ok)
			assert.Equal(t, tt.want, rec.Priority)
		})
	}
}

func TestGenerateRecommendationsBoundaries(t *testing.T) {
	// Exactly 60 clears the high rung, exactly 80 clears the medium rung.
	recs := GenerateRecommendations(60, 90, 90, 90, 95, 85)
	rec, ok := findRec(recs, DimensionMetadata)
	require.True(t, ok)
	assert.Equal(t, PriorityMedium, rec.Priority)

	recs = GenerateRecommendations(80, 90, 90, 90, 95, 85)
	_, ok = findRec(recs, DimensionMetadata)
	assert.False(t, ok)

	// Technical 90 and visual 80 emit nothing.
	recs = GenerateRecommendations(90, 90, 90, 90, 90, 80)
	assert.Empty(t, recs)
}

func TestPrioritizeActions(t *testing.T) {
	recs := []Recommendation{
		{Category: DimensionMetadata, Priority: PriorityMedium},
		{Category: DimensionRatings, Priority: PriorityHigh},
		{Category: DimensionKeywords, Priority: PriorityLow},
		{Category: DimensionConversion, Priority: PriorityHigh},
		{Category: DimensionTechnical, Priority: PriorityMedium},
	}

	top := PrioritizeActions(recs)
	require.Len(t, top, 3)

	// High before medium; ties keep input order.
	assert.Equal(t, DimensionRatings, top[0].Category)
	assert.Equal(t, DimensionConversion, top[1].Category)
	assert.Equal(t, DimensionMetadata, top[2].Category)

	// Input slice is untouched.
	assert.Equal(t, DimensionMetadata, recs[0].Category)
}

func TestPrioritizeActionsShortList(t *testing.T) {
	recs := []Recommendation{{Category: DimensionVisual, Priority: PriorityLow}}
	top := PrioritizeActions(recs)
	assert.Len(t, top, 1)

	assert.Empty(t, PrioritizeActions(nil))
}

func TestIdentifyStrengthsAndWeaknesses(t *testing.T) {
	breakdown := []DimensionResult{
		{Dimension: DimensionMetadata, Score: 82.5},
		{Dimension: DimensionRatings, Score: 75},
		{Dimension: DimensionKeywords, Score: 74.9},
		{Dimension: DimensionConversion, Score: 59.9},
		{Dimension: DimensionTechnical, Score: 60},
		{Dimension: DimensionVisual, Score: 40},
	}

	strengths := identifyStrengths(breakdown)
	assert.Equal(t, []string{
		"Metadata Quality: 82.5/100",
		"Ratings Reviews: 75.0/100",
	}, strengths)

	weaknesses := identifyWeaknesses(breakdown)
	assert.Equal(t, []string{
		"Conversion Metrics: 59.9/100 - needs improvement",
		"Visual Optimization: 40.0/100 - needs improvement",
	}, weaknesses)
}

func TestIdentifyStrengthsAndWeaknessesFillers(t *testing.T) {
	mediocre := []DimensionResult{
		{Dimension: DimensionMetadata, Score: 65},
		{Dimension: DimensionRatings, Score: 70},
	}

	assert.Equal(t, []string{"Focus on building strengths across all areas"}, identifyStrengths(mediocre))
	assert.Equal(t, []string{"All areas performing adequately"}, identifyWeaknesses(mediocre))
}
