package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipes/internal/models"
)

// CategoryWriteRepository creates categories.
type CategoryWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCategoryWriteRepository(db *sqlx.DB, txGetter TxGetter) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a category and returns it with its assigned id.
func (r *CategoryWriteRepository) Save(ctx context.Context, name string) (*models.Category, error) {
	const query = `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name
	`

	var category models.Category
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &category, query, name)
	logQuery(query, []any{name}, category, err)
	if err != nil {
		return nil, err
	}
	return &category, nil
}
