// Package views renders the recipe pages from embedded html/template files.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sbilibin2017/recipes/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageList     = "list.html"
	pageDetail   = "detail.html"
	pageNotFound = "not_found.html"
)

type pageData struct {
	Title   string
	Recipes []models.Recipe
	Recipe  *models.Recipe
}

type recipeCard struct {
	Recipe       models.Recipe
	IsDetailPage bool
}

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	pages  map[string]*template.Template
	policy *bluemonday.Policy
}

// New parses every page together with the shared layout and partials.
func New() (*Renderer, error) {
	r := &Renderer{
		pages:  make(map[string]*template.Template),
		policy: bluemonday.UGCPolicy(),
	}

	funcs := template.FuncMap{
		"card":   func(recipe models.Recipe) recipeCard { return recipeCard{Recipe: recipe} },
		"detail": func(recipe *models.Recipe) recipeCard { return recipeCard{Recipe: *recipe, IsDetailPage: true} },
		"steps":  r.steps,
	}

	for _, page := range []string{pageList, pageDetail, pageNotFound} {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS,
			"templates/base.html", "templates/recipe.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// RenderHome lists recipes, or shows "No recipes found" when there are none.
func (r *Renderer) RenderHome(w io.Writer, recipes []models.Recipe) error {
	return r.render(w, pageList, pageData{Title: "Home", Recipes: recipes})
}

// RenderCategory lists the recipes of one category. Callers only reach it
// with a non-empty list.
func (r *Renderer) RenderCategory(w io.Writer, recipes []models.Recipe) error {
	title := "Category"
	if len(recipes) > 0 {
		title = recipes[0].CategoryName + " - Category"
	}
	return r.render(w, pageList, pageData{Title: title, Recipes: recipes})
}

// RenderDetail shows a single recipe with its preparation steps.
func (r *Renderer) RenderDetail(w io.Writer, recipe *models.Recipe) error {
	return r.render(w, pageDetail, pageData{Title: recipe.Title, Recipe: recipe})
}

// RenderNotFound renders the 404 page. It never mentions the requested recipe.
func (r *Renderer) RenderNotFound(w io.Writer) error {
	return r.render(w, pageNotFound, pageData{Title: "Page not found"})
}

// render executes page into w. Callers that need an all-or-nothing
// response buffer w themselves.
func (r *Renderer) render(w io.Writer, page string, data pageData) error {
	if err := r.pages[page].ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	return nil
}

// steps renders preparation steps. HTML steps are sanitized; plain text is
// escaped with line breaks kept.
func (r *Renderer) steps(recipe models.Recipe) template.HTML {
	if recipe.PreparationStepsIsHTML {
		return template.HTML(r.policy.Sanitize(recipe.PreparationSteps))
	}

	text := strings.ReplaceAll(recipe.PreparationSteps, "\r\n", "\n")
	lines := strings.Split(template.HTMLEscapeString(text), "\n")
	return template.HTML("<p>" + strings.Join(lines, "<br>") + "</p>")
}
