package models

// Recipe event types published to the events topic.
const (
	RecipeCreated     = "recipe.created"
	RecipePublished   = "recipe.published"
	RecipeUnpublished = "recipe.unpublished"
)

// RecipeEvent is the message body written to Kafka on recipe changes.
type RecipeEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	RecipeID  int64  `json:"recipe_id"`
	AuthorID  int64  `json:"author_id"`
	Timestamp int64  `json:"timestamp"`
}
