package store

const schema = `
CREATE TABLE IF NOT EXISTS audits (
    id            TEXT PRIMARY KEY,
    app_name      TEXT NOT NULL DEFAULT '',
    platform      TEXT NOT NULL,
    overall_score REAL NOT NULL,
    health_status TEXT NOT NULL,
    report        TEXT NOT NULL DEFAULT '{}',
    created_at    DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audits_platform ON audits(platform);
CREATE INDEX IF NOT EXISTS idx_audits_score ON audits(overall_score);
CREATE INDEX IF NOT EXISTS idx_audits_created ON audits(created_at);

CREATE TABLE IF NOT EXISTS keyword_runs (
    id            TEXT PRIMARY KEY,
    keyword_count INTEGER NOT NULL DEFAULT 0,
    top_keyword   TEXT NOT NULL DEFAULT '',
    result        TEXT NOT NULL DEFAULT '{}',
    created_at    DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_keyword_runs_created ON keyword_runs(created_at);
`
