package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema creates the catalog tables. It is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS categories (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(65) NOT NULL
);

CREATE TABLE IF NOT EXISTS authors (
	id BIGSERIAL PRIMARY KEY,
	first_name VARCHAR(150) NOT NULL DEFAULT '',
	last_name VARCHAR(150) NOT NULL DEFAULT '',
	username VARCHAR(150) NOT NULL UNIQUE,
	email VARCHAR(254) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS recipes (
	id BIGSERIAL PRIMARY KEY,
	category_id BIGINT NOT NULL REFERENCES categories(id),
	author_id BIGINT NOT NULL REFERENCES authors(id),
	title VARCHAR(65) NOT NULL,
	description VARCHAR(165) NOT NULL DEFAULT '',
	slug VARCHAR(65) NOT NULL,
	preparation_time INTEGER NOT NULL,
	preparation_time_unit VARCHAR(65) NOT NULL,
	servings INTEGER NOT NULL,
	servings_unit VARCHAR(65) NOT NULL,
	preparation_steps TEXT NOT NULL,
	preparation_steps_is_html BOOLEAN NOT NULL DEFAULT FALSE,
	is_published BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_recipes_published ON recipes(is_published, created_at DESC, id DESC);
CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes(category_id);
CREATE INDEX IF NOT EXISTS idx_recipes_author ON recipes(author_id);
`

// Migrate applies Schema to db.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
