package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/recipes/internal/logger"
	"github.com/sbilibin2017/recipes/internal/models"
)

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=services

// RecipeReader reads published recipes from the store.
type RecipeReader interface {
	ListPublished(ctx context.Context, categoryID *int64) ([]models.Recipe, error)
	GetPublishedByID(ctx context.Context, id int64) (*models.Recipe, error)
}

// RecipeCache caches published recipe details.
type RecipeCache interface {
	Get(ctx context.Context, id int64) (*models.Recipe, error)
	Set(ctx context.Context, recipe *models.Recipe) error
}

// CatalogService answers the read-only page queries. Only published
// recipes ever leave it.
type CatalogService struct {
	reader RecipeReader
	cache  RecipeCache
}

// NewCatalogService creates a CatalogService. cache may be nil.
func NewCatalogService(reader RecipeReader, cache RecipeCache) *CatalogService {
	return &CatalogService{reader: reader, cache: cache}
}

// ListPublished returns published recipes, newest first, optionally for one
// category. No match is an empty slice, not an error.
func (s *CatalogService) ListPublished(ctx context.Context, categoryID *int64) ([]models.Recipe, error) {
	recipes, err := s.reader.ListPublished(ctx, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to list published recipes", "category_id", categoryID, "error", err)
		return nil, err
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

// GetPublishedByCategory is ListPublished for a category page: a category
// without published recipes is ErrNotFound.
func (s *CatalogService) GetPublishedByCategory(ctx context.Context, categoryID int64) ([]models.Recipe, error) {
	recipes, err := s.ListPublished(ctx, &categoryID)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, ErrNotFound
	}
	return recipes, nil
}

// GetPublishedByID returns a published recipe, reading through the cache.
// Missing and unpublished recipes are both ErrNotFound.
func (s *CatalogService) GetPublishedByID(ctx context.Context, id int64) (*models.Recipe, error) {
	if s.cache != nil {
		recipe, err := s.cache.Get(ctx, id)
		if err == nil && recipe.IsPublished {
			return recipe, nil
		}
	}

	recipe, err := s.reader.GetPublishedByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipe_id", id, "error", err)
		return nil, err
	}
	if !recipe.IsPublished {
		return nil, ErrNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, recipe); err != nil {
			logger.Log.Warnw("failed to cache recipe", "recipe_id", id, "error", err)
		}
	}

	return recipe, nil
}
