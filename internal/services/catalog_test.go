package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/recipes/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCatalogService_ListPublished(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRecipeReader(ctrl)
	svc := NewCatalogService(reader, nil)

	t.Run("returns recipes", func(t *testing.T) {
		reader.EXPECT().ListPublished(ctx, nil).Return([]models.Recipe{{ID: 1, Title: "Recipe Title"}}, nil)

		recipes, err := svc.ListPublished(ctx, nil)
		assert.NoError(t, err)
		assert.Len(t, recipes, 1)
	})

	t.Run("empty is not an error", func(t *testing.T) {
		reader.EXPECT().ListPublished(ctx, nil).Return(nil, nil)

		recipes, err := svc.ListPublished(ctx, nil)
		assert.NoError(t, err)
		assert.NotNil(t, recipes)
		assert.Empty(t, recipes)
	})

	t.Run("store error", func(t *testing.T) {
		reader.EXPECT().ListPublished(ctx, nil).Return(nil, sql.ErrConnDone)

		_, err := svc.ListPublished(ctx, nil)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestCatalogService_GetPublishedByCategory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRecipeReader(ctrl)
	svc := NewCatalogService(reader, nil)

	categoryID := int64(1)
	reader.EXPECT().ListPublished(ctx, &categoryID).Return([]models.Recipe{{ID: 1, CategoryID: 1}}, nil)
	recipes, err := svc.GetPublishedByCategory(ctx, categoryID)
	assert.NoError(t, err)
	assert.Len(t, recipes, 1)

	missing := int64(1111)
	reader.EXPECT().ListPublished(ctx, &missing).Return([]models.Recipe{}, nil)
	recipes, err = svc.GetPublishedByCategory(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, recipes)
}

func TestCatalogService_GetPublishedByID(t *testing.T) {
	ctx := context.Background()
	published := &models.Recipe{ID: 1, Title: "Recipe Title", IsPublished: true}

	tests := []struct {
		name    string
		setup   func(reader *MockRecipeReader, cache *MockRecipeCache)
		want    *models.Recipe
		wantErr error
	}{
		{
			name: "cache hit skips store",
			setup: func(reader *MockRecipeReader, cache *MockRecipeCache) {
				cache.EXPECT().Get(ctx, int64(1)).Return(published, nil)
			},
			want: published,
		},
		{
			name: "cache miss reads through and fills cache",
			setup: func(reader *MockRecipeReader, cache *MockRecipeCache) {
				cache.EXPECT().Get(ctx, int64(1)).Return(nil, errors.New("miss"))
				reader.EXPECT().GetPublishedByID(ctx, int64(1)).Return(published, nil)
				cache.EXPECT().Set(ctx, published).Return(nil)
			},
			want: published,
		},
		{
			name: "cache write failure does not fail the request",
			setup: func(reader *MockRecipeReader, cache *MockRecipeCache) {
				cache.EXPECT().Get(ctx, int64(1)).Return(nil, errors.New("redis down"))
				reader.EXPECT().GetPublishedByID(ctx, int64(1)).Return(published, nil)
				cache.EXPECT().Set(ctx, published).Return(errors.New("redis down"))
			},
			want: published,
		},
		{
			name: "stale unpublished cache entry is ignored",
			setup: func(reader *MockRecipeReader, cache *MockRecipeCache) {
				cache.EXPECT().Get(ctx, int64(1)).Return(&models.Recipe{ID: 1, IsPublished: false}, nil)
				reader.EXPECT().GetPublishedByID(ctx, int64(1)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "missing recipe",
			setup: func(reader *MockRecipeReader, cache *MockRecipeCache) {
				cache.EXPECT().Get(ctx, int64(1)).Return(nil, errors.New("miss"))
				reader.EXPECT().GetPublishedByID(ctx, int64(1)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "store error",
			setup: func(reader *MockRecipeReader, cache *MockRecipeCache) {
				cache.EXPECT().Get(ctx, int64(1)).Return(nil, errors.New("miss"))
				reader.EXPECT().GetPublishedByID(ctx, int64(1)).Return(nil, sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockRecipeReader(ctrl)
			cache := NewMockRecipeCache(ctrl)
			tt.setup(reader, cache)

			got, err := NewCatalogService(reader, cache).GetPublishedByID(ctx, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogService_GetPublishedByID_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRecipeReader(ctrl)
	reader.EXPECT().GetPublishedByID(gomock.Any(), int64(2)).Return(&models.Recipe{ID: 2, IsPublished: true}, nil)

	got, err := NewCatalogService(reader, nil).GetPublishedByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}
