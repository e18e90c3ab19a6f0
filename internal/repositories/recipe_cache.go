package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/recipes/internal/logger"
	"github.com/sbilibin2017/recipes/internal/models"
)

// ErrCacheMiss is returned when no published recipe is cached under the id.
var ErrCacheMiss = errors.New("recipe not found in cache")

// minTombstoneTTL bounds how long an unpublish marker lives when the cache
// expiration is shorter. It must outlast any in-flight page request.
const minTombstoneTTL = time.Minute

// setUnlessUnpublished stores KEYS[1] only while the unpublish marker
// KEYS[2] is absent. ARGV[2] is the TTL in milliseconds, 0 for none.
var setUnlessUnpublished = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
if tonumber(ARGV[2]) > 0 then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
else
	redis.call("SET", KEYS[1], ARGV[1])
end
return 1
`)

// RecipeCacheRepository caches published recipe details in Redis.
type RecipeCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewRecipeCacheRepository(client *redis.Client, expiration time.Duration) *RecipeCacheRepository {
	return &RecipeCacheRepository{client: client, exp: expiration}
}

func recipeKey(id int64) string {
	return fmt.Sprintf("recipe:published:%d", id)
}

func unpublishedKey(id int64) string {
	return fmt.Sprintf("recipe:unpublished:%d", id)
}

// Get returns the cached recipe or ErrCacheMiss.
func (r *RecipeCacheRepository) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	key := recipeKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Debugw("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var recipe models.Recipe
	if err := json.Unmarshal(val, &recipe); err != nil {
		logger.Log.Warnw("cache entry is corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &recipe, nil
}

// Set stores recipe until the configured expiration. It is a no-op while the
// recipe carries an unpublish marker, so a reader that loaded the row before
// an unpublish cannot put the old copy back. Unpublished recipes are never cached.
func (r *RecipeCacheRepository) Set(ctx context.Context, recipe *models.Recipe) error {
	if !recipe.IsPublished {
		return r.MarkUnpublished(ctx, recipe.ID)
	}

	key := recipeKey(recipe.ID)
	data, err := json.Marshal(recipe)
	if err != nil {
		return err
	}

	stored, err := setUnlessUnpublished.Run(ctx, r.client,
		[]string{key, unpublishedKey(recipe.ID)},
		data, r.exp.Milliseconds(),
	).Int()
	logger.Log.Debugw("cache set", "key", key, "ttl", r.exp, "stored", stored == 1, "error", err)
	return err
}

// MarkUnpublished evicts the cached recipe and blocks Set for it until the
// marker expires or Delete runs.
func (r *RecipeCacheRepository) MarkUnpublished(ctx context.Context, id int64) error {
	ttl := r.exp
	if ttl < minTombstoneTTL {
		ttl = minTombstoneTTL
	}

	key := recipeKey(id)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, unpublishedKey(id), 1, ttl)
		pipe.Del(ctx, key)
		return nil
	})
	logger.Log.Debugw("cache mark unpublished", "key", key, "ttl", ttl, "error", err)
	return err
}

// Delete evicts the cached recipe, if any, and clears its unpublish marker.
func (r *RecipeCacheRepository) Delete(ctx context.Context, id int64) error {
	key := recipeKey(id)
	err := r.client.Del(ctx, key, unpublishedKey(id)).Err()
	logger.Log.Debugw("cache delete", "key", key, "error", err)
	return err
}
