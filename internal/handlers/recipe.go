package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/recipes/internal/logger"
	"github.com/sbilibin2017/recipes/internal/middlewares"
	"github.com/sbilibin2017/recipes/internal/models"
	"github.com/sbilibin2017/recipes/internal/services"
)

//go:generate mockgen -source=recipe.go -destination=recipe_mock.go -package=handlers

// RecipeAuthor defines the authoring operations of the service.
type RecipeAuthor interface {
	CreateRecipe(ctx context.Context, authorID int64, in models.CreateRecipeInput) (*models.Recipe, error)
	SetPublished(ctx context.Context, authorID, recipeID int64, published bool) error
}

// NewCreateRecipeHandler returns an HTTP handler that creates a recipe owned
// by the authenticated author.
// @Summary Create a recipe
// @Description Creates a recipe for the authenticated author. The slug is derived from the title when omitted.
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipeRequest body models.CreateRecipeInput true "Recipe"
// @Success 201 {object} models.Recipe "Created recipe"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Referenced category or author does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes [post]
// @Security BearerAuth
func NewCreateRecipeHandler(svc RecipeAuthor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, ok := middlewares.AuthorIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req models.CreateRecipeInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		recipe, err := svc.CreateRecipe(r.Context(), authorID, req)
		if err != nil {
			switch {
			case isValidationError(err):
				writeValidationError(w, err)
			case errors.Is(err, services.ErrInvalidReference):
				writeError(w, http.StatusUnprocessableEntity, "Referenced category or author does not exist")
			default:
				logger.Log.Errorw("failed to create recipe", "author_id", authorID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, recipe)
	}
}

// NewPublishHandler returns an HTTP handler that publishes a recipe.
// @Summary Publish a recipe
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204 "Published"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Recipe belongs to another author"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /recipes/{id}/publish [post]
// @Security BearerAuth
func NewPublishHandler(svc RecipeAuthor) http.HandlerFunc {
	return newSetPublishedHandler(svc, true)
}

// NewUnpublishHandler returns an HTTP handler that hides a recipe from the public pages.
// @Summary Unpublish a recipe
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204 "Unpublished"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Recipe belongs to another author"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /recipes/{id}/unpublish [post]
// @Security BearerAuth
func NewUnpublishHandler(svc RecipeAuthor) http.HandlerFunc {
	return newSetPublishedHandler(svc, false)
}

func newSetPublishedHandler(svc RecipeAuthor, published bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, ok := middlewares.AuthorIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		recipeID, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "Recipe not found")
			return
		}

		err := svc.SetPublished(r.Context(), authorID, recipeID, published)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, services.ErrNotFound):
			writeError(w, http.StatusNotFound, "Recipe not found")
		case errors.Is(err, services.ErrForbidden):
			writeError(w, http.StatusForbidden, "Recipe belongs to another author")
		default:
			logger.Log.Errorw("failed to change publication", "recipe_id", recipeID, "published", published, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}
