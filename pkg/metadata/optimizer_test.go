package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptimizer(t *testing.T) {
	apple, err := NewOptimizer("apple")
	require.NoError(t, err)
	assert.Equal(t, Apple, apple.Platform())

	// Case-insensitive.
	google, err := NewOptimizer("Google")
	require.NoError(t, err)
	assert.Equal(t, Google, google.Platform())

	_, err = NewOptimizer("windows")
	assert.Error(t, err)

	_, err = NewOptimizer("")
	assert.Error(t, err)
}

func TestOptimizeTitle(t *testing.T) {
	o, err := NewOptimizer("apple")
	require.NoError(t, err)

	report := o.OptimizeTitle("TaskFlow", []string{"task manager", "productivity"}, true)
	assert.Equal(t, 30, report.MaxLength)
	require.NotEmpty(t, report.Options)

	for _, option := range report.Options {
		assert.LessOrEqual(t, option.Length, report.MaxLength)
		assert.Equal(t, len(option.Title), option.Length)
		assert.Equal(t, report.MaxLength-option.Length, option.RemainingChars)
	}

	// Brand-plus-primary exists and drives the recommendation.
	strategies := make([]string, 0, len(report.Options))
	for _, option := range report.Options {
		strategies = append(strategies, option.Strategy)
	}
	assert.Contains(t, strategies, "brand_only")
	assert.Contains(t, strategies, "brand_plus_primary")
	assert.Contains(t, report.Recommendation, "Balance of brand and SEO")
}

func TestOptimizeTitleKeywordFirst(t *testing.T) {
	o, err := NewOptimizer("google")
	require.NoError(t, err)

	report := o.OptimizeTitle("TaskFlow", []string{"task manager"}, false)
	require.NotEmpty(t, report.Options)
	assert.Equal(t, "keyword_first", report.Options[len(report.Options)-1].Strategy)
}

func TestOptimizeKeywordField(t *testing.T) {
	o, err := NewOptimizer("apple")
	require.NoError(t, err)

	report, err := o.OptimizeKeywordField(
		[]string{"task manager", "productivity", "tasks"}, "Todo App", "")
	require.NoError(t, err)

	assert.Equal(t, "task,manager,productivity", report.KeywordField)
	assert.Equal(t, []string{"task", "manager", "productivity"}, report.KeywordsIncluded)
	assert.LessOrEqual(t, report.Length, 100)
	assert.Equal(t, 100-report.Length, report.RemainingChars)
	assert.NotContains(t, report.KeywordField, " ")
}

func TestOptimizeKeywordFieldSkipsTitleWords(t *testing.T) {
	o, err := NewOptimizer("apple")
	require.NoError(t, err)

	report, err := o.OptimizeKeywordField([]string{"budget", "tracker"}, "Budget Tracker", "")
	require.NoError(t, err)
	assert.Empty(t, report.KeywordField)
	assert.ElementsMatch(t, []string{"budget", "tracker"}, report.KeywordsExcluded)
}

func TestOptimizeKeywordFieldGoogleRejected(t *testing.T) {
	o, err := NewOptimizer("google")
	require.NoError(t, err)

	_, err = o.OptimizeKeywordField([]string{"task"}, "App", "")
	assert.Error(t, err)
}

func TestFoldPlurals(t *testing.T) {
	assert.Equal(t, []string{"task", "note"}, foldPlurals([]string{"task", "tasks", "notes"}))
	assert.Equal(t, []string{"task"}, foldPlurals([]string{"tasks", "task"}))
}

func TestValidateCharacterLimits(t *testing.T) {
	o, err := NewOptimizer("apple")
	require.NoError(t, err)

	report := o.ValidateCharacterLimits(map[string]string{
		"title":    "This title is far too long for the App Store limit",
		"subtitle": "Plan your day",
		"keywords": "task,manager,todo,planner,schedule,agenda,organize,productivity,focus,habit,goal,remind",
	})

	assert.False(t, report.IsValid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "'title' exceeds limit")

	// Subtitle leaves more than 20% headroom.
	found := false
	for _, warning := range report.Warnings {
		if warning == "'subtitle' under-utilizes space: 17 chars remaining" {
			found = true
		}
	}
	assert.True(t, found)

	status := report.FieldStatus["subtitle"]
	assert.True(t, status.IsValid)
	assert.Equal(t, 13, status.Length)
	assert.Equal(t, 30, status.Limit)
}

func TestValidateCharacterLimitsUnknownField(t *testing.T) {
	o, err := NewOptimizer("google")
	require.NoError(t, err)

	report := o.ValidateCharacterLimits(map[string]string{"subtitle": "Not a Google field"})
	assert.True(t, report.IsValid)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "Unknown field 'subtitle'")
}

func TestKeywordDensityReport(t *testing.T) {
	o, err := NewOptimizer("google")
	require.NoError(t, err)

	// 96 words total, "budget" twice: 2.08% sits in the optimal band.
	text := "Track your budget and plan your budget goals. " +
		strings.Repeat("Daily planning tools help you organize work and life with ease. ", 8)
	report := o.KeywordDensityReport(text, []string{"budget", "invoice"})

	assert.Equal(t, 96, report.TotalWords)

	budget := report.KeywordDensities["budget"]
	assert.Equal(t, 2, budget.Occurrences)
	assert.Equal(t, "optimal", budget.Status)

	invoice := report.KeywordDensities["invoice"]
	assert.Equal(t, 0, invoice.Occurrences)
	assert.Equal(t, "too_low", invoice.Status)

	assert.NotEmpty(t, report.Assessment)
	assert.NotEmpty(t, report.Recommendations)
}

func TestKeywordDensityReportFlagsStuffing(t *testing.T) {
	o, err := NewOptimizer("google")
	require.NoError(t, err)

	report := o.KeywordDensityReport("budget app for budget people who budget", []string{"budget"})

	budget := report.KeywordDensities["budget"]
	assert.Equal(t, 3, budget.Occurrences)
	assert.Equal(t, "too_high", budget.Status)
	require.NotEmpty(t, report.Recommendations)
	assert.Contains(t, report.Recommendations[0], "Reduce usage of 'budget'")
}

func TestKeywordDensityReportEmptyText(t *testing.T) {
	o, err := NewOptimizer("apple")
	require.NoError(t, err)

	report := o.KeywordDensityReport("", []string{"budget"})
	assert.Equal(t, 0, report.TotalWords)
	assert.Equal(t, 0.0, report.OverallKeywordDensity)
}

func TestOptimizeShortDescription(t *testing.T) {
	google, err := NewOptimizer("google")
	require.NoError(t, err)

	info := AppInfo{Name: "TaskFlow", UniqueValue: "The fastest way to organize work"}
	report, err := google.OptimizeShortDescription(info, []string{"task manager"})
	require.NoError(t, err)
	assert.LessOrEqual(t, report.Length, 80)
	assert.Contains(t, report.ShortDescription, "Task Manager")

	apple, err := NewOptimizer("apple")
	require.NoError(t, err)
	_, err = apple.OptimizeShortDescription(info, nil)
	assert.Error(t, err)
}

func TestTitlePhrase(t *testing.T) {
	assert.Equal(t, "Task Manager", titlePhrase("task manager"))
	// First rune capitalizes correctly for multibyte letters.
	assert.Equal(t, "Über Budget", titlePhrase("über budget"))
	assert.Equal(t, "", titlePhrase(""))
}

func TestOptimizeSubtitle(t *testing.T) {
	o, err := NewOptimizer("apple")
	require.NoError(t, err)

	info := AppInfo{Name: "TaskFlow", KeyFeatures: []string{"Smart scheduling"}}
	report, err := o.OptimizeSubtitle(info, []string{"task manager"})
	require.NoError(t, err)
	require.NotEmpty(t, report.SubtitleOptions)
	for _, option := range report.SubtitleOptions {
		assert.LessOrEqual(t, len(option), 30)
	}
	assert.Equal(t, report.SubtitleOptions[0], report.Recommendation)
}

func TestOptimizeFullDescription(t *testing.T) {
	o, err := NewOptimizer("apple")
	require.NoError(t, err)

	info := AppInfo{
		Name:           "TaskFlow",
		KeyFeatures:    []string{"Smart scheduling", "Team sharing", "Offline mode"},
		UniqueValue:    "The fastest way to organize work",
		TargetAudience: "busy professionals",
	}
	report := o.OptimizeFullDescription(info, []string{"task manager", "productivity"})

	assert.LessOrEqual(t, report.Length, 4000)
	assert.Contains(t, report.FullDescription, "KEY FEATURES:")
	assert.Contains(t, report.FullDescription, "busy professionals")
	assert.Contains(t, report.FullDescription, "Download now")
	assert.Equal(t, true, report.Structure["has_features"])
	assert.NotZero(t, report.KeywordAnalysis.TotalWords)
}
