package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetAudit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	audit := &Audit{
		AppName:      "TaskFlow",
		Platform:     "apple",
		OverallScore: 72.5,
		HealthStatus: "Good - Competitive ASO with room for improvement",
		ReportJSON:   `{"overall_score":72.5}`,
	}
	require.NoError(t, s.SaveAudit(ctx, audit))
	assert.NotEmpty(t, audit.ID)
	assert.False(t, audit.CreatedAt.IsZero())

	got, err := s.GetAudit(ctx, audit.ID)
	require.NoError(t, err)
	assert.Equal(t, "TaskFlow", got.AppName)
	assert.Equal(t, 72.5, got.OverallScore)
	assert.Equal(t, `{"overall_score":72.5}`, got.ReportJSON)
}

func TestGetAuditMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetAudit(context.Background(), "nope")
	assert.Error(t, err)
}

func TestListAudits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, a := range []Audit{
		{Platform: "apple", OverallScore: 80, HealthStatus: "x"},
		{Platform: "google", OverallScore: 55, HealthStatus: "x"},
		{Platform: "apple", OverallScore: 40, HealthStatus: "x"},
	} {
		audit := a
		require.NoError(t, s.SaveAudit(ctx, &audit))
	}

	all, err := s.ListAudits(ctx, AuditListOpts{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	apple, err := s.ListAudits(ctx, AuditListOpts{Platform: "apple"})
	require.NoError(t, err)
	assert.Len(t, apple, 2)

	strong, err := s.ListAudits(ctx, AuditListOpts{MinScore: 50})
	require.NoError(t, err)
	assert.Len(t, strong, 2)

	limited, err := s.ListAudits(ctx, AuditListOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSaveAndListKeywordRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := &KeywordRun{
		KeywordCount: 4,
		TopKeyword:   "budget planner",
		ResultJSON:   `{"total_keywords_analyzed":4}`,
	}
	require.NoError(t, s.SaveKeywordRun(ctx, run))
	assert.NotEmpty(t, run.ID)

	runs, err := s.ListKeywordRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "budget planner", runs[0].TopKeyword)
	assert.Equal(t, 4, runs[0].KeywordCount)
}
