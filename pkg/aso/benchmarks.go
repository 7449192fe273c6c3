package aso

import "strings"

// Dimension identifies one of the six scored ASO dimensions.
type Dimension string

const (
	DimensionMetadata   Dimension = "metadata_quality"
	DimensionRatings    Dimension = "ratings_reviews"
	DimensionKeywords   Dimension = "keyword_performance"
	DimensionConversion Dimension = "conversion_metrics"
	DimensionTechnical  Dimension = "technical_performance"
	DimensionVisual     Dimension = "visual_optimization"
)

// Dimensions returns all dimensions in canonical report order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionMetadata,
		DimensionRatings,
		DimensionKeywords,
		DimensionConversion,
		DimensionTechnical,
		DimensionVisual,
	}
}

// DisplayName returns the human-readable dimension name, e.g. "Metadata Quality".
func (d Dimension) DisplayName() string {
	switch d {
	case DimensionMetadata:
		return "Metadata Quality"
	case DimensionRatings:
		return "Ratings Reviews"
	case DimensionKeywords:
		return "Keyword Performance"
	case DimensionConversion:
		return "Conversion Metrics"
	case DimensionTechnical:
		return "Technical Performance"
	case DimensionVisual:
		return "Visual Optimization"
	}
	return string(d)
}

// Band holds min/target thresholds for a metric where higher is better.
// Scores interpolate linearly between the two and saturate at target.
type Band struct {
	Min    float64
	Target float64
}

// InverseBand holds good/acceptable thresholds for a metric where lower is
// better (crash rate, ANR rate, battery impact). Full credit at or below
// good, linear decay to acceptable, steep penalty beyond.
type InverseBand struct {
	Good       float64
	Acceptable float64
}

// DensityBand holds the keyword-density window. Full credit inside
// [Min, Optimal]; Max marks the stuffing ceiling in the reference table.
type DensityBand struct {
	Min     float64
	Optimal float64
	Max     float64
}

// Benchmarks are the reference thresholds each dimension scorer interpolates
// against. Loaded once, never mutated.
var Benchmarks = struct {
	TitleKeywordUsage Band
	DescriptionLength Band
	KeywordDensity    DensityBand
	AverageRating     Band
	RatingsCount      Band
	KeywordsTop10     Band
	KeywordsTop50     Band
	ConversionRate    Band
}{
	TitleKeywordUsage: Band{Min: 1, Target: 2},
	DescriptionLength: Band{Min: 500, Target: 2000},
	KeywordDensity:    DensityBand{Min: 2, Optimal: 5, Max: 8},
	AverageRating:     Band{Min: 3.5, Target: 4.5},
	RatingsCount:      Band{Min: 100, Target: 5000},
	KeywordsTop10:     Band{Min: 2, Target: 10},
	KeywordsTop50:     Band{Min: 5, Target: 20},
	ConversionRate:    Band{Min: 0.02, Target: 0.10},
}

// TechnicalBenchmarks hold stability thresholds, all in percent.
var TechnicalBenchmarks = struct {
	CrashRate     InverseBand
	ANRRate       InverseBand
	BatteryImpact InverseBand
}{
	CrashRate:     InverseBand{Good: 1.0, Acceptable: 2.0},
	ANRRate:       InverseBand{Good: 0.5, Acceptable: 1.0},
	BatteryImpact: InverseBand{Good: 5.0, Acceptable: 10.0},
}

// WeightProfile assigns an integer weight to each dimension. Weights always
// sum to exactly 100.
type WeightProfile struct {
	MetadataQuality      int `json:"metadata_quality" yaml:"metadata_quality"`
	RatingsReviews       int `json:"ratings_reviews" yaml:"ratings_reviews"`
	KeywordPerformance   int `json:"keyword_performance" yaml:"keyword_performance"`
	ConversionMetrics    int `json:"conversion_metrics" yaml:"conversion_metrics"`
	TechnicalPerformance int `json:"technical_performance" yaml:"technical_performance"`
	VisualOptimization   int `json:"visual_optimization" yaml:"visual_optimization"`
}

// Sum returns the total of all six weights.
func (w WeightProfile) Sum() int {
	return w.MetadataQuality + w.RatingsReviews + w.KeywordPerformance +
		w.ConversionMetrics + w.TechnicalPerformance + w.VisualOptimization
}

// Weight returns the weight for a single dimension.
func (w WeightProfile) Weight(d Dimension) int {
	switch d {
	case DimensionMetadata:
		return w.MetadataQuality
	case DimensionRatings:
		return w.RatingsReviews
	case DimensionKeywords:
		return w.KeywordPerformance
	case DimensionConversion:
		return w.ConversionMetrics
	case DimensionTechnical:
		return w.TechnicalPerformance
	case DimensionVisual:
		return w.VisualOptimization
	}
	return 0
}

// DefaultWeights is the platform-neutral profile.
var DefaultWeights = WeightProfile{
	MetadataQuality:      20,
	RatingsReviews:       20,
	KeywordPerformance:   20,
	ConversionMetrics:    20,
	TechnicalPerformance: 15,
	VisualOptimization:   5,
}

// GoogleWeights weight technical performance higher: Android Vitals are
// visible to users and feed Play Store ranking.
var GoogleWeights = WeightProfile{
	MetadataQuality:      20,
	RatingsReviews:       20,
	KeywordPerformance:   20,
	ConversionMetrics:    15,
	TechnicalPerformance: 20,
	VisualOptimization:   5,
}

// AppleWeights weight visual optimization higher: Custom Product Pages and
// editorial featuring reward strong visual assets.
var AppleWeights = WeightProfile{
	MetadataQuality:      20,
	RatingsReviews:       20,
	KeywordPerformance:   20,
	ConversionMetrics:    20,
	TechnicalPerformance: 10,
	VisualOptimization:   10,
}

// ResolveWeights maps a platform identifier to its weight profile. Matching
// is case-insensitive; anything other than "apple" or "google" (including an
// empty string) resolves to the default profile. The second return value is
// the normalized platform name used in reports.
func ResolveWeights(platform string) (WeightProfile, string) {
	switch strings.ToLower(platform) {
	case "google":
		return GoogleWeights, "google"
	case "apple":
		return AppleWeights, "apple"
	}
	return DefaultWeights, "default"
}
