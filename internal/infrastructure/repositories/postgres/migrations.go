package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

const currentSchemaVersion = 1

// Migration represents a database migration
type Migration struct {
	Version    int
	Statements []string
}

// Migrate runs all pending migrations inside a transaction per version.
func Migrate(ctx context.Context, db *sql.DB, logger *zap.SugaredLogger) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	currentVersion, err := getSchemaVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if currentVersion >= currentSchemaVersion {
		if logger != nil {
			logger.Infow("schema is up to date",
				"current_version", currentVersion,
				"target_version", currentSchemaVersion,
			)
		}
		return nil
	}

	for _, migration := range getMigrations() {
		if migration.Version <= currentVersion {
			continue
		}

		if logger != nil {
			logger.Infow("running migration",
				"version", migration.Version,
			)
		}

		if err := applyMigration(ctx, db, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if logger != nil {
			logger.Infow("migration completed",
				"version", migration.Version,
			)
		}
	}

	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, migration Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range migration.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version) VALUES ($1)`, migration.Version); err != nil {
		return err
	}

	return tx.Commit()
}

func getSchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version sql.NullInt64
	err := db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, err
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}

func getMigrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS users (
					id TEXT PRIMARY KEY,
					username TEXT NOT NULL,
					firstname TEXT NOT NULL,
					lastname TEXT NOT NULL,
					email TEXT NOT NULL,
					password_hash TEXT NOT NULL,
					role TEXT NOT NULL DEFAULT 'STANDARD',
					avatar_url TEXT NOT NULL DEFAULT '',
					bio TEXT NOT NULL DEFAULT '',
					company TEXT NOT NULL DEFAULT '',
					company_location TEXT NOT NULL DEFAULT '',
					industry TEXT NOT NULL DEFAULT '',
					field_of_study TEXT NOT NULL DEFAULT '',
					graduation_start_year INT NOT NULL DEFAULT 0,
					graduation_end_year INT NOT NULL DEFAULT 0,
					location TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMPTZ NOT NULL,
					updated_at TIMESTAMPTZ NOT NULL
				)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,

				`CREATE TABLE IF NOT EXISTS posts (
					id TEXT PRIMARY KEY,
					author_id TEXT NOT NULL,
					content TEXT NOT NULL,
					media_urls TEXT[] NOT NULL DEFAULT '{}',
					created_at TIMESTAMPTZ NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS comments (
					id TEXT PRIMARY KEY,
					post_id TEXT NOT NULL,
					author_id TEXT NOT NULL,
					content TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS comments_post_id_idx ON comments (post_id)`,

				`CREATE TABLE IF NOT EXISTS likes (
					id TEXT PRIMARY KEY,
					post_id TEXT NOT NULL,
					user_id TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL
				)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS likes_post_user_key ON likes (post_id, user_id)`,

				`CREATE TABLE IF NOT EXISTS connections (
					id TEXT PRIMARY KEY,
					follower_id TEXT NOT NULL,
					following_id TEXT NOT NULL,
					status TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL,
					updated_at TIMESTAMPTZ NOT NULL
				)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS connections_edge_key ON connections (follower_id, following_id)`,

				`CREATE TABLE IF NOT EXISTS messages (
					id TEXT PRIMARY KEY,
					sender_id TEXT NOT NULL,
					receiver_id TEXT NOT NULL,
					content TEXT NOT NULL DEFAULT '',
					attachment TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMPTZ NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS messages_conversation_idx ON messages (sender_id, receiver_id, created_at)`,

				`CREATE TABLE IF NOT EXISTS events (
					id TEXT PRIMARY KEY,
					owner_id TEXT NOT NULL,
					title TEXT NOT NULL,
					content TEXT NOT NULL,
					images TEXT[] NOT NULL DEFAULT '{}',
					link TEXT NOT NULL DEFAULT '',
					date TIMESTAMPTZ NOT NULL,
					created_at TIMESTAMPTZ NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS events_date_idx ON events (date)`,

				`CREATE TABLE IF NOT EXISTS feedbacks (
					id TEXT PRIMARY KEY,
					author_id TEXT NOT NULL,
					content TEXT NOT NULL,
					attached_file TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMPTZ NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS jobs (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					company TEXT NOT NULL,
					experience TEXT NOT NULL,
					location TEXT NOT NULL,
					job_type TEXT NOT NULL,
					industry TEXT NOT NULL,
					job_function TEXT NOT NULL,
					remote TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL,
					updated_at TIMESTAMPTZ NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS donations (
					id TEXT PRIMARY KEY,
					donor_id TEXT NOT NULL,
					amount DOUBLE PRECISION NOT NULL,
					currency TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS donations_donor_idx ON donations (donor_id)`,

				`CREATE TABLE IF NOT EXISTS stories (
					id TEXT PRIMARY KEY,
					author_id TEXT NOT NULL,
					title TEXT NOT NULL,
					description TEXT NOT NULL,
					published BOOLEAN NOT NULL DEFAULT FALSE,
					created_at TIMESTAMPTZ NOT NULL,
					updated_at TIMESTAMPTZ NOT NULL
				)`,
			},
		},
	}
}
