package migrations

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/retry"
)

// Migration is one sequential schema change. Scripts must stay idempotent;
// the version table only skips work, it is not a correctness guarantee.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Run applies all pending migrations in order, each inside its own
// transaction. The whole run is wrapped in the retry helper so a restarting
// database does not fail startup.
func Run(ctx context.Context, db *sqlx.DB) error {
	return retry.Do(ctx, retry.DefaultConfig, func(ctx context.Context) error {
		return runOnce(ctx, db)
	})
}

func runOnce(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`); err != nil {
		return err
	}

	applied := map[int]struct{}{}
	var versions []int
	if err := db.SelectContext(ctx, &versions, `SELECT version FROM schema_migrations`); err != nil {
		return err
	}
	for _, v := range versions {
		applied[v] = struct{}{}
	}

	for _, m := range All {
		if _, ok := applied[m.Version]; ok {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			logger.Log.Errorw("migration failed",
				"version", m.Version,
				"name", m.Name,
				"error", err,
			)
			return err
		}
		logger.Log.Infow("migration applied", "version", m.Version, "name", m.Name)
	}

	return nil
}

func apply(ctx context.Context, db *sqlx.DB, m Migration) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(m.SQL) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
		m.Version, m.Name,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// splitStatements breaks a script on semicolons at line ends. Migration SQL
// here never embeds semicolons inside literals, so this stays simple.
func splitStatements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";\n") {
		stmt = strings.TrimSpace(stmt)
		stmt = strings.TrimSuffix(stmt, ";")
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
