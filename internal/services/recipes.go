package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/sbilibin2017/recipes/internal/logger"
	"github.com/sbilibin2017/recipes/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=recipes.go -destination=recipes_mock.go -package=services

// CategoryWriter creates categories.
type CategoryWriter interface {
	Save(ctx context.Context, name string) (*models.Category, error)
}

// RecipeWriter creates recipes and toggles publication.
type RecipeWriter interface {
	Save(ctx context.Context, recipe *models.Recipe) error
	SetPublished(ctx context.Context, id int64, published bool) error
}

// RecipeGetter loads a recipe in any publication state.
type RecipeGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
}

// RecipeEvicter drops cached recipe details. MarkUnpublished also keeps
// concurrent readers from caching the recipe again.
type RecipeEvicter interface {
	Delete(ctx context.Context, id int64) error
	MarkUnpublished(ctx context.Context, id int64) error
}

// Unpublish eviction is retried with exponential backoff before giving up.
const (
	evictMaxRetries      = 3
	evictInitialInterval = 50 * time.Millisecond
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RecipeService handles authoring: categories, recipes and publication.
type RecipeService struct {
	categories  CategoryWriter
	writer      RecipeWriter
	getter      RecipeGetter
	evicter     RecipeEvicter
	kafkaWriter KafkaWriter
}

// NewRecipeService creates a RecipeService. evicter and kafkaWriter may be nil.
func NewRecipeService(
	categories CategoryWriter,
	writer RecipeWriter,
	getter RecipeGetter,
	evicter RecipeEvicter,
	kafkaWriter KafkaWriter,
) *RecipeService {
	return &RecipeService{
		categories:  categories,
		writer:      writer,
		getter:      getter,
		evicter:     evicter,
		kafkaWriter: kafkaWriter,
	}
}

// CreateCategory validates and saves a category.
func (s *RecipeService) CreateCategory(ctx context.Context, in models.CreateCategoryInput) (*models.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categories.Save(ctx, in.Name)
	if err != nil {
		logger.Log.Errorw("failed to save category", "name", in.Name, "error", err)
		return nil, err
	}
	return category, nil
}

// CreateRecipe validates the input and saves a recipe owned by authorID.
// An empty slug is derived from the title.
func (s *RecipeService) CreateRecipe(ctx context.Context, authorID int64, in models.CreateRecipeInput) (*models.Recipe, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}
	if slug == "" {
		slug = "recipe"
	}

	recipe := &models.Recipe{
		CategoryID:             in.CategoryID,
		AuthorID:               authorID,
		Title:                  in.Title,
		Description:            in.Description,
		Slug:                   slug,
		PreparationTime:        in.PreparationTime,
		PreparationTimeUnit:    in.PreparationTimeUnit,
		Servings:               in.Servings,
		ServingsUnit:           in.ServingsUnit,
		PreparationSteps:       in.PreparationSteps,
		PreparationStepsIsHTML: in.PreparationStepsIsHTML,
		IsPublished:            in.IsPublished,
	}

	if err := s.writer.Save(ctx, recipe); err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrInvalidReference
		}
		logger.Log.Errorw("failed to save recipe", "author_id", authorID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.RecipeCreated, recipe.ID, authorID)
	if recipe.IsPublished {
		s.publishEvent(ctx, models.RecipePublished, recipe.ID, authorID)
	}

	return recipe, nil
}

// SetPublished toggles publication of a recipe owned by authorID and
// evicts its cached detail.
func (s *RecipeService) SetPublished(ctx context.Context, authorID, recipeID int64, published bool) error {
	recipe, err := s.getter.GetByID(ctx, recipeID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipe_id", recipeID, "error", err)
		return err
	}
	if recipe.AuthorID != authorID {
		logger.Log.Warnw("publish toggle by non-owner", "recipe_id", recipeID, "author_id", authorID)
		return ErrForbidden
	}

	if err := s.writer.SetPublished(ctx, recipeID, published); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		logger.Log.Errorw("failed to set published", "recipe_id", recipeID, "published", published, "error", err)
		return err
	}

	if err := s.evict(ctx, recipeID, published); err != nil {
		// The cached copy is still served, so keep the recipe published.
		if rbErr := s.writer.SetPublished(context.WithoutCancel(ctx), recipeID, true); rbErr != nil {
			logger.Log.Errorw("failed to restore publication after eviction failure", "recipe_id", recipeID, "error", rbErr)
		}
		return err
	}

	eventType := models.RecipeUnpublished
	if published {
		eventType = models.RecipePublished
	}
	s.publishEvent(ctx, eventType, recipeID, authorID)

	return nil
}

// evict drops the cached detail. A failed publish eviction only leaves an
// older published copy behind and is logged. A failed unpublish eviction
// would keep serving the recipe, so it is retried and then returned.
func (s *RecipeService) evict(ctx context.Context, recipeID int64, published bool) error {
	if s.evicter == nil {
		return nil
	}

	if published {
		if err := s.evicter.Delete(ctx, recipeID); err != nil {
			logger.Log.Errorw("failed to evict cached recipe", "recipe_id", recipeID, "error", err)
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = evictInitialInterval
	err := backoff.Retry(func() error {
		err := s.evicter.MarkUnpublished(ctx, recipeID)
		if err != nil {
			logger.Log.Warnw("failed to evict unpublished recipe, retrying", "recipe_id", recipeID, "error", err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, evictMaxRetries), ctx))
	if err != nil {
		logger.Log.Errorw("failed to evict unpublished recipe", "recipe_id", recipeID, "error", err)
		return fmt.Errorf("evict unpublished recipe %d: %w", recipeID, err)
	}
	return nil
}

// publishEvent writes a recipe event to Kafka. Failures are logged only.
func (s *RecipeService) publishEvent(ctx context.Context, eventType string, recipeID, authorID int64) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping event", "type", eventType, "recipe_id", recipeID)
		return
	}

	event := models.RecipeEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		RecipeID:  recipeID,
		AuthorID:  authorID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal recipe event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(recipeID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish recipe event", "event_id", event.EventID, "type", eventType, "error", err)
		return
	}
	logger.Log.Infow("recipe event published", "event_id", event.EventID, "type", eventType, "recipe_id", recipeID)
}
