package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/recipes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRecipeCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewRecipeCacheRepository(rdb, 2*time.Second)

	t.Run("set and get", func(t *testing.T) {
		recipe := &models.Recipe{ID: 1, Title: "Recipe Title", IsPublished: true, CategoryName: "Category"}
		assert.NoError(t, repo.Set(ctx, recipe))

		got, err := repo.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Recipe Title", got.Title)
		assert.Equal(t, "Category", got.CategoryName)
	})

	t.Run("miss", func(t *testing.T) {
		_, err := repo.Get(ctx, 404)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("unpublished is evicted not stored", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, &models.Recipe{ID: 2, Title: "Draft", IsPublished: true}))
		assert.NoError(t, repo.Set(ctx, &models.Recipe{ID: 2, Title: "Draft", IsPublished: false}))

		_, err := repo.Get(ctx, 2)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, &models.Recipe{ID: 3, IsPublished: true}))
		assert.NoError(t, repo.Delete(ctx, 3))
		_, err := repo.Get(ctx, 3)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("set after unpublish keeps the entry out", func(t *testing.T) {
		stale := &models.Recipe{ID: 5, Title: "Stale", IsPublished: true}
		assert.NoError(t, repo.Set(ctx, stale))
		assert.NoError(t, repo.MarkUnpublished(ctx, 5))

		// a reader that loaded the row before the unpublish writes it back
		assert.NoError(t, repo.Set(ctx, stale))
		_, err := repo.Get(ctx, 5)
		assert.ErrorIs(t, err, ErrCacheMiss)

		exists, err := rdb.Exists(ctx, "recipe:unpublished:5").Result()
		assert.NoError(t, err)
		assert.Equal(t, int64(1), exists)
	})

	t.Run("delete clears the unpublish marker", func(t *testing.T) {
		assert.NoError(t, repo.MarkUnpublished(ctx, 6))
		assert.NoError(t, repo.Delete(ctx, 6))

		assert.NoError(t, repo.Set(ctx, &models.Recipe{ID: 6, Title: "Back", IsPublished: true}))
		got, err := repo.Get(ctx, 6)
		assert.NoError(t, err)
		assert.Equal(t, "Back", got.Title)
	})

	t.Run("expires", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, &models.Recipe{ID: 4, IsPublished: true}))
		time.Sleep(3 * time.Second)
		_, err := repo.Get(ctx, 4)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
