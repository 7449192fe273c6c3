package aso

// TrendDirection describes the recent direction of a download metric.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendStable TrendDirection = "stable"
	TrendDown   TrendDirection = "down"
)

// MetadataMetrics describe title and description quality. All fields are
// optional; zero values score as absent.
type MetadataMetrics struct {
	// TitleKeywordCount is the number of target keywords in the app title.
	TitleKeywordCount int `json:"title_keyword_count"`
	// TitleLength is the title length in characters.
	TitleLength int `json:"title_length"`
	// DescriptionLength is the description length in characters.
	DescriptionLength int `json:"description_length"`
	// DescriptionQuality is an externally-assessed 0-1 quality fraction.
	DescriptionQuality float64 `json:"description_quality"`
	// KeywordDensity is the keyword density of the description in percent.
	KeywordDensity float64 `json:"keyword_density"`
}

// RatingsMetrics describe store rating volume and quality.
type RatingsMetrics struct {
	AverageRating    float64 `json:"average_rating"`
	TotalRatings     int     `json:"total_ratings"`
	RecentRatings30d int     `json:"recent_ratings_30d"`
}

// KeywordPerformance describes current keyword ranking positions.
type KeywordPerformance struct {
	Top10             int `json:"top_10"`
	Top50             int `json:"top_50"`
	Top100            int `json:"top_100"`
	ImprovingKeywords int `json:"improving_keywords"`
}

// ConversionMetrics describe impression-to-install performance.
type ConversionMetrics struct {
	ImpressionToInstall float64        `json:"impression_to_install"`
	Downloads30d        int            `json:"downloads_last_30_days"`
	DownloadsTrend      TrendDirection `json:"downloads_trend"`
}

// TechnicalMetrics describe app stability, all in percent. Android Vitals is
// the usual source on Google Play; Apple exposes no equivalent, so values are
// typically user-provided there.
type TechnicalMetrics struct {
	CrashRate     float64 `json:"crash_rate"`
	ANRRate       float64 `json:"anr_rate"`
	BatteryImpact float64 `json:"battery_impact"`
}

// VisualMetrics describe the visual-asset checklist.
type VisualMetrics struct {
	HasCaptions bool `json:"has_captions"`
	CPPCount    int  `json:"cpp_count"`
	HasVideo    bool `json:"has_video"`
}

// MetricsInput bundles every metric group for one audit. Technical and visual
// data are optional: a nil pointer scores the dimension at the neutral 50.0.
type MetricsInput struct {
	Platform   string             `json:"platform,omitempty"`
	Metadata   MetadataMetrics    `json:"metadata"`
	Ratings    RatingsMetrics     `json:"ratings"`
	Keywords   KeywordPerformance `json:"keyword_performance"`
	Conversion ConversionMetrics  `json:"conversion"`
	Technical  *TechnicalMetrics  `json:"technical,omitempty"`
	Visual     *VisualMetrics     `json:"visual,omitempty"`
}

// DimensionResult is one dimension's contribution to the overall score.
type DimensionResult struct {
	Dimension            Dimension `json:"dimension"`
	Score                float64   `json:"score"`
	Weight               int       `json:"weight"`
	WeightedContribution float64   `json:"weighted_contribution"`
	// DataProvided is set only for the optional technical/visual dimensions.
	DataProvided *bool `json:"data_provided,omitempty"`
}

// Report is the complete audit result returned to the caller.
type Report struct {
	OverallScore    float64           `json:"overall_score"`
	HealthStatus    string            `json:"health_status"`
	Platform        string            `json:"platform"`
	WeightsUsed     WeightProfile     `json:"weights_used"`
	ScoreBreakdown  []DimensionResult `json:"score_breakdown"`
	Recommendations []Recommendation  `json:"recommendations"`
	PriorityActions []Recommendation  `json:"priority_actions"`
	Strengths       []string          `json:"strengths"`
	Weaknesses      []string          `json:"weaknesses"`
}
