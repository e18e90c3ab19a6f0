package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipes/internal/models"
	"github.com/stretchr/testify/assert"
)

var recipeRowColumns = []string{
	"id", "category_id", "author_id", "title", "description", "slug",
	"preparation_time", "preparation_time_unit", "servings", "servings_unit",
	"preparation_steps", "preparation_steps_is_html", "is_published",
	"created_at", "updated_at",
	"category_name", "author_first_name", "author_last_name", "author_username",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func addRecipeRow(rows *sqlmock.Rows, id int64, title string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, int64(1), int64(1), title, "Recipe Decription", "recipe_title",
		10, "Minutos", 1, "Porção",
		"Recipe Preparation Steps", false, true,
		now, now,
		"Category", "user", "name", "username",
	)
}

func TestRecipeReadRepository_ListPublished(t *testing.T) {
	ctx := context.Background()

	t.Run("all categories", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows(recipeRowColumns)
		addRecipeRow(rows, 2, "Newer")
		addRecipeRow(rows, 1, "Older")

		mock.ExpectQuery(regexp.QuoteMeta("WHERE r.is_published = TRUE")).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(rows)

		recipes, err := NewRecipeReadRepository(db).ListPublished(ctx, nil)
		assert.NoError(t, err)
		assert.Len(t, recipes, 2)
		assert.Equal(t, "Newer", recipes[0].Title)
		assert.Equal(t, "Category", recipes[0].CategoryName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by category", func(t *testing.T) {
		db, mock := newMockDB(t)
		categoryID := int64(3)

		mock.ExpectQuery(regexp.QuoteMeta("r.category_id = $1")).
			WithArgs(categoryID).
			WillReturnRows(sqlmock.NewRows(recipeRowColumns))

		recipes, err := NewRecipeReadRepository(db).ListPublished(ctx, &categoryID)
		assert.NoError(t, err)
		assert.NotNil(t, recipes)
		assert.Empty(t, recipes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM recipes r").WillReturnError(sql.ErrConnDone)

		recipes, err := NewRecipeReadRepository(db).ListPublished(ctx, nil)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Nil(t, recipes)
	})
}

func TestRecipeReadRepository_GetPublishedByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE r.id = $1 AND r.is_published = TRUE")).
			WithArgs(int64(7)).
			WillReturnRows(addRecipeRow(sqlmock.NewRows(recipeRowColumns), 7, "Recipe Title"))

		recipe, err := NewRecipeReadRepository(db).GetPublishedByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), recipe.ID)
		assert.Equal(t, "user name", recipe.AuthorName())
	})

	t.Run("missing or unpublished", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM recipes r").
			WithArgs(int64(1111)).
			WillReturnRows(sqlmock.NewRows(recipeRowColumns))

		recipe, err := NewRecipeReadRepository(db).GetPublishedByID(ctx, 1111)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, recipe)
	})
}

func TestRecipeWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO recipes")).
		WithArgs(int64(1), int64(2), "Recipe Title", "", "recipe-title",
			10, "Minutos", 1, "Porção", "steps", false, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	recipe := &models.Recipe{
		CategoryID: 1, AuthorID: 2, Title: "Recipe Title", Slug: "recipe-title",
		PreparationTime: 10, PreparationTimeUnit: "Minutos", Servings: 1, ServingsUnit: "Porção",
		PreparationSteps: "steps", IsPublished: true,
	}
	err := NewRecipeWriteRepository(db, nil).Save(context.Background(), recipe)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), recipe.ID)
	assert.Equal(t, now, recipe.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeWriteRepository_SetPublished(t *testing.T) {
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE recipes")).
			WithArgs(int64(5), false).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewRecipeWriteRepository(db, nil).SetPublished(ctx, 5, false))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE recipes")).
			WithArgs(int64(5), true).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewRecipeWriteRepository(db, nil).SetPublished(ctx, 5, true)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("uses request transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE recipes")).
			WithArgs(int64(5), true).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		assert.NoError(t, err)
		getter := func(context.Context) *sqlx.Tx { return tx }

		assert.NoError(t, NewRecipeWriteRepository(db, getter).SetPublished(ctx, 5, true))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuthorReadRepository_GetByUsernameOrEmail_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	username := "ghost"
	mock.ExpectQuery("FROM authors").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	author, err := NewAuthorReadRepository(db).GetByUsernameOrEmail(context.Background(), &username, nil)
	assert.NoError(t, err)
	assert.Nil(t, author)
}

func TestCategoryWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories")).
		WithArgs("Category").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Category"))

	category, err := NewCategoryWriteRepository(db, nil).Save(context.Background(), "Category")
	assert.NoError(t, err)
	assert.Equal(t, &models.Category{ID: 1, Name: "Category"}, category)

	mock.ExpectQuery("INSERT INTO categories").WillReturnError(errors.New("boom"))
	_, err = NewCategoryWriteRepository(db, nil).Save(context.Background(), "Other")
	assert.Error(t, err)
}
