package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS plans (
    plan_id              TEXT PRIMARY KEY,
    route_name           TEXT,
    days                 INTEGER NOT NULL,
    transport            TEXT NOT NULL,
    budget               REAL,
    total_cost           REAL NOT NULL,
    format               TEXT NOT NULL,
    file_path            TEXT NOT NULL,
    saved_at             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS plan_cities (
    plan_id              TEXT NOT NULL REFERENCES plans(plan_id) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    city                 TEXT NOT NULL,
    PRIMARY KEY (plan_id, position)
);

CREATE INDEX IF NOT EXISTS idx_plans_saved ON plans(saved_at);
`
