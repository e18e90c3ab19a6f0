package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipes/internal/models"
)

const recipeColumns = `
	r.id, r.category_id, r.author_id, r.title, r.description, r.slug,
	r.preparation_time, r.preparation_time_unit, r.servings, r.servings_unit,
	r.preparation_steps, r.preparation_steps_is_html, r.is_published,
	r.created_at, r.updated_at,
	c.name AS category_name,
	a.first_name AS author_first_name,
	a.last_name AS author_last_name,
	a.username AS author_username
`

const recipeJoins = `
	FROM recipes r
	JOIN categories c ON c.id = r.category_id
	JOIN authors a ON a.id = r.author_id
`

// RecipeReadRepository serves the catalog queries.
type RecipeReadRepository struct {
	db *sqlx.DB
}

func NewRecipeReadRepository(db *sqlx.DB) *RecipeReadRepository {
	return &RecipeReadRepository{db: db}
}

// ListPublished returns published recipes, newest first.
// A nil categoryID lists every category.
func (r *RecipeReadRepository) ListPublished(ctx context.Context, categoryID *int64) ([]models.Recipe, error) {
	const query = `SELECT` + recipeColumns + recipeJoins + `
		WHERE r.is_published = TRUE
		  AND ($1::BIGINT IS NULL OR r.category_id = $1)
		ORDER BY r.created_at DESC, r.id DESC
	`

	recipes := []models.Recipe{}
	err := r.db.SelectContext(ctx, &recipes, query, categoryID)
	logQuery(query, []any{categoryID}, len(recipes), err)

	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetPublishedByID returns sql.ErrNoRows when the recipe is missing or unpublished.
func (r *RecipeReadRepository) GetPublishedByID(ctx context.Context, id int64) (*models.Recipe, error) {
	const query = `SELECT` + recipeColumns + recipeJoins + `
		WHERE r.id = $1 AND r.is_published = TRUE
	`
	return r.get(ctx, query, id)
}

// GetByID returns the recipe regardless of its publication state.
func (r *RecipeReadRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	const query = `SELECT` + recipeColumns + recipeJoins + `
		WHERE r.id = $1
	`
	return r.get(ctx, query, id)
}

func (r *RecipeReadRepository) get(ctx context.Context, query string, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.GetContext(ctx, &recipe, query, id)
	logQuery(query, []any{id}, recipe.ID, err)

	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// RecipeWriteRepository creates recipes and flips their publication flag.
type RecipeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRecipeWriteRepository(db *sqlx.DB, txGetter TxGetter) *RecipeWriteRepository {
	return &RecipeWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts recipe and fills in its id and timestamps.
func (r *RecipeWriteRepository) Save(ctx context.Context, recipe *models.Recipe) error {
	const query = `
		INSERT INTO recipes (
			category_id, author_id, title, description, slug,
			preparation_time, preparation_time_unit, servings, servings_unit,
			preparation_steps, preparation_steps_is_html, is_published,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{
		recipe.CategoryID, recipe.AuthorID, recipe.Title, recipe.Description, recipe.Slug,
		recipe.PreparationTime, recipe.PreparationTimeUnit, recipe.Servings, recipe.ServingsUnit,
		recipe.PreparationSteps, recipe.PreparationStepsIsHTML, recipe.IsPublished,
	}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&recipe.ID, &recipe.CreatedAt, &recipe.UpdatedAt)
	logQuery(query, args, recipe.ID, err)

	return err
}

// SetPublished updates the flag and returns sql.ErrNoRows for an unknown id.
func (r *RecipeWriteRepository) SetPublished(ctx context.Context, id int64, published bool) error {
	const query = `
		UPDATE recipes
		SET is_published = $2, updated_at = NOW()
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, published)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, published}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
