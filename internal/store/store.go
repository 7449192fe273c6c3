// Package store persists audit reports and keyword comparison runs so score
// trends can be reviewed over time. The scoring engine itself never touches
// the store; callers decide what to keep.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Audit is one persisted scoring run.
type Audit struct {
	ID           string    `db:"id" json:"id"`
	AppName      string    `db:"app_name" json:"app_name"`
	Platform     string    `db:"platform" json:"platform"`
	OverallScore float64   `db:"overall_score" json:"overall_score"`
	HealthStatus string    `db:"health_status" json:"health_status"`
	ReportJSON   string    `db:"report" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// KeywordRun is one persisted keyword comparison.
type KeywordRun struct {
	ID           string    `db:"id" json:"id"`
	KeywordCount int       `db:"keyword_count" json:"keyword_count"`
	TopKeyword   string    `db:"top_keyword" json:"top_keyword"`
	ResultJSON   string    `db:"result" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// AuditListOpts controls audit listing.
type AuditListOpts struct {
	Platform string
	MinScore float64
	Limit    int
}

// Store is the persistence interface.
type Store interface {
	SaveAudit(ctx context.Context, a *Audit) error
	GetAudit(ctx context.Context, id string) (*Audit, error)
	ListAudits(ctx context.Context, opts AuditListOpts) ([]Audit, error)

	SaveKeywordRun(ctx context.Context, r *KeywordRun) error
	ListKeywordRuns(ctx context.Context, limit int) ([]KeywordRun, error)

	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// New opens a SQLite database and runs migrations.
func New(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveAudit inserts an audit, assigning ID and CreatedAt when unset.
func (s *SQLiteStore) SaveAudit(ctx context.Context, a *Audit) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audits (id, app_name, platform, overall_score, health_status, report, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.AppName, a.Platform, a.OverallScore, a.HealthStatus, a.ReportJSON, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("save audit %s: %w", a.ID, err)
	}
	return nil
}

func (s *SQLiteStore) GetAudit(ctx context.Context, id string) (*Audit, error) {
	var a Audit
	if err := s.db.GetContext(ctx, &a, "SELECT * FROM audits WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get audit %s: %w", id, err)
	}
	return &a, nil
}

func (s *SQLiteStore) ListAudits(ctx context.Context, opts AuditListOpts) ([]Audit, error) {
	query := "SELECT * FROM audits WHERE 1=1"
	var args []any

	if opts.Platform != "" {
		query += " AND platform = ?"
		args = append(args, opts.Platform)
	}
	if opts.MinScore > 0 {
		query += " AND overall_score >= ?"
		args = append(args, opts.MinScore)
	}

	query += " ORDER BY created_at DESC"

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ?"
	args = append(args, limit)

	var audits []Audit
	if err := s.db.SelectContext(ctx, &audits, query, args...); err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	return audits, nil
}

// SaveKeywordRun inserts a keyword run, assigning ID and CreatedAt when unset.
func (s *SQLiteStore) SaveKeywordRun(ctx context.Context, r *KeywordRun) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO keyword_runs (id, keyword_count, top_keyword, result, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, r.ID, r.KeywordCount, r.TopKeyword, r.ResultJSON, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("save keyword run %s: %w", r.ID, err)
	}
	return nil
}

func (s *SQLiteStore) ListKeywordRuns(ctx context.Context, limit int) ([]KeywordRun, error) {
	if limit <= 0 {
		limit = 50
	}
	var runs []KeywordRun
	err := s.db.SelectContext(ctx, &runs,
		"SELECT * FROM keyword_runs ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list keyword runs: %w", err)
	}
	return runs, nil
}
