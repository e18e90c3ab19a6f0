package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/recipes/internal/logger"
	"github.com/sbilibin2017/recipes/internal/middlewares"
	"github.com/sbilibin2017/recipes/internal/models"
	"github.com/sbilibin2017/recipes/internal/services"
)

//go:generate mockgen -source=pages.go -destination=pages_mock.go -package=handlers

// CatalogReader defines the read side of the catalog used by the public pages.
type CatalogReader interface {
	ListPublished(ctx context.Context, categoryID *int64) ([]models.Recipe, error)
	GetPublishedByCategory(ctx context.Context, categoryID int64) ([]models.Recipe, error)
	GetPublishedByID(ctx context.Context, id int64) (*models.Recipe, error)
}

// PageRenderer renders the HTML pages.
type PageRenderer interface {
	RenderHome(w io.Writer, recipes []models.Recipe) error
	RenderCategory(w io.Writer, recipes []models.Recipe) error
	RenderDetail(w io.Writer, recipe *models.Recipe) error
	RenderNotFound(w io.Writer) error
}

// NewHomeHandler serves the list of all published recipes, newest first.
func NewHomeHandler(catalog CatalogReader, renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := catalog.ListPublished(r.Context(), nil)
		if err != nil {
			internalError(w, r, "failed to list recipes", err)
			return
		}

		writePage(w, r, http.StatusOK, func(out io.Writer) error {
			return renderer.RenderHome(out, recipes)
		})
	}
}

// NewCategoryHandler serves the published recipes of one category.
// An unknown category, or one with nothing published, is a 404.
func NewCategoryHandler(catalog CatalogReader, renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, ok := parseID(chi.URLParam(r, "category_id"))
		if !ok {
			notFound(w, r, renderer)
			return
		}

		recipes, err := catalog.GetPublishedByCategory(r.Context(), categoryID)
		if errors.Is(err, services.ErrNotFound) {
			notFound(w, r, renderer)
			return
		}
		if err != nil {
			internalError(w, r, "failed to list category recipes", err)
			return
		}

		writePage(w, r, http.StatusOK, func(out io.Writer) error {
			return renderer.RenderCategory(out, recipes)
		})
	}
}

// NewRecipeHandler serves the detail page of a published recipe.
func NewRecipeHandler(catalog CatalogReader, renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			notFound(w, r, renderer)
			return
		}

		recipe, err := catalog.GetPublishedByID(r.Context(), id)
		if errors.Is(err, services.ErrNotFound) {
			notFound(w, r, renderer)
			return
		}
		if err != nil {
			internalError(w, r, "failed to get recipe", err)
			return
		}

		writePage(w, r, http.StatusOK, func(out io.Writer) error {
			return renderer.RenderDetail(out, recipe)
		})
	}
}

// NewNotFoundHandler renders the 404 page for unmatched routes.
func NewNotFoundHandler(renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notFound(w, r, renderer)
	}
}

func notFound(w http.ResponseWriter, r *http.Request, renderer PageRenderer) {
	writePage(w, r, http.StatusNotFound, renderer.RenderNotFound)
}

// writePage renders into memory so a template failure can still become a 500.
func writePage(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		internalError(w, r, "failed to render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Log.Warnw("failed to write page",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"uri", r.RequestURI,
			"error", err,
		)
	}
}

func internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.Log.Errorw(msg,
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"uri", r.RequestURI,
		"error", err,
	)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// parseID accepts positive decimal ids only.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
