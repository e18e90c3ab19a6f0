package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/recipes/internal/logger"
	"github.com/sbilibin2017/recipes/internal/middlewares"
	"github.com/sbilibin2017/recipes/internal/models"
)

//go:generate mockgen -source=category.go -destination=category_mock.go -package=handlers

// CategoryCreator defines the interface that the service must implement.
type CategoryCreator interface {
	CreateCategory(ctx context.Context, in models.CreateCategoryInput) (*models.Category, error)
}

// NewCreateCategoryHandler returns an HTTP handler that creates a category.
// @Summary Create a category
// @Tags catalog
// @Accept json
// @Produce json
// @Param categoryRequest body models.CreateCategoryInput true "Category"
// @Success 201 {object} models.Category "Created category"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /categories [post]
// @Security BearerAuth
func NewCreateCategoryHandler(svc CategoryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, ok := middlewares.AuthorIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req models.CreateCategoryInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		category, err := svc.CreateCategory(r.Context(), req)
		if err != nil {
			if isValidationError(err) {
				writeValidationError(w, err)
				return
			}
			logger.Log.Errorw("failed to create category", "author_id", authorID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, category)
	}
}
