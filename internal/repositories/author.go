package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipes/internal/models"
)

type AuthorReadRepository struct {
	db *sqlx.DB
}

func NewAuthorReadRepository(db *sqlx.DB) *AuthorReadRepository {
	return &AuthorReadRepository{db: db}
}

// GetByUsernameOrEmail returns the first author matching either value.
// A nil pointer skips that condition. No match yields (nil, nil).
func (r *AuthorReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.AuthorDB, error) {
	const query = `
		SELECT id, first_name, last_name, username, email, password_hash, created_at
		FROM authors
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var author models.AuthorDB
	err := r.db.GetContext(ctx, &author, query, username, email)
	logQuery(query, []any{username, email}, author.AuthorID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

type AuthorWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAuthorWriteRepository(db *sqlx.DB, txGetter TxGetter) *AuthorWriteRepository {
	return &AuthorWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the author and returns the new id. PasswordHash must already be hashed.
func (r *AuthorWriteRepository) Save(ctx context.Context, author models.AuthorDB) (int64, error) {
	const query = `
		INSERT INTO authors (first_name, last_name, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	// password hash stays out of the log
	args := []any{author.FirstName, author.LastName, author.Username, author.Email, author.PasswordHash}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)
	logQuery(query, args[:4], id, err)

	return id, err
}
