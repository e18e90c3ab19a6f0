package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/recipes/internal/middlewares"
	"github.com/sbilibin2017/recipes/internal/models"
	"github.com/sbilibin2017/recipes/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withAuthor simulates AuthMiddleware for the given author.
func withAuthor(authorID int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if authorID != 0 {
			r = r.WithContext(middlewares.WithAuthorID(r.Context(), authorID))
		}
		next.ServeHTTP(w, r)
	})
}

func TestCreateRecipeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRecipeAuthor(ctrl)

	input := models.CreateRecipeInput{
		CategoryID:          1,
		Title:               "Carrot cake",
		PreparationTime:     45,
		PreparationTimeUnit: "Minutes",
		Servings:            8,
		ServingsUnit:        "Slices",
		PreparationSteps:    "Mix and bake.",
	}

	tests := []struct {
		name           string
		authorID       int64
		body           string
		setupMock      func()
		expectedStatus int
		expectedError  string
	}{
		{
			name:     "created",
			authorID: 7,
			setupMock: func() {
				mockSvc.EXPECT().CreateRecipe(gomock.Any(), int64(7), input).
					Return(&models.Recipe{ID: 10, AuthorID: 7, Title: "Carrot cake", Slug: "carrot-cake"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "no author in context",
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid JSON",
			authorID:       7,
			body:           "{",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "validation failure",
			authorID: 7,
			setupMock: func() {
				mockSvc.EXPECT().CreateRecipe(gomock.Any(), int64(7), input).
					Return(nil, validation.Errors{"title": errors.New("cannot be blank")})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "unknown category or author",
			authorID: 7,
			setupMock: func() {
				mockSvc.EXPECT().CreateRecipe(gomock.Any(), int64(7), input).
					Return(nil, services.ErrInvalidReference)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "Referenced category or author does not exist",
		},
		{
			name:     "internal error",
			authorID: 7,
			setupMock: func() {
				mockSvc.EXPECT().CreateRecipe(gomock.Any(), int64(7), input).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			body := tt.body
			if body == "" {
				b, _ := json.Marshal(input)
				body = string(b)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", bytes.NewBufferString(body))
			rr := httptest.NewRecorder()
			withAuthor(tt.authorID, NewCreateRecipeHandler(mockSvc)).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusCreated {
				var recipe models.Recipe
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&recipe))
				assert.Equal(t, int64(10), recipe.ID)
				assert.Equal(t, "carrot-cake", recipe.Slug)
			}
			if tt.expectedError != "" {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestSetPublishedHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRecipeAuthor(ctrl)

	newRouter := func(authorID int64) http.Handler {
		r := chi.NewRouter()
		r.Use(func(next http.Handler) http.Handler { return withAuthor(authorID, next) })
		r.Post("/api/v1/recipes/{id}/publish", NewPublishHandler(mockSvc))
		r.Post("/api/v1/recipes/{id}/unpublish", NewUnpublishHandler(mockSvc))
		return r
	}

	tests := []struct {
		name           string
		authorID       int64
		target         string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:     "publish",
			authorID: 7,
			target:   "/api/v1/recipes/3/publish",
			setupMock: func() {
				mockSvc.EXPECT().SetPublished(gomock.Any(), int64(7), int64(3), true).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:     "unpublish",
			authorID: 7,
			target:   "/api/v1/recipes/3/unpublish",
			setupMock: func() {
				mockSvc.EXPECT().SetPublished(gomock.Any(), int64(7), int64(3), false).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "unauthorized",
			target:         "/api/v1/recipes/3/publish",
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-numeric id",
			authorID:       7,
			target:         "/api/v1/recipes/abc/publish",
			setupMock:      func() {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:     "missing recipe",
			authorID: 7,
			target:   "/api/v1/recipes/99/publish",
			setupMock: func() {
				mockSvc.EXPECT().SetPublished(gomock.Any(), int64(7), int64(99), true).Return(services.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:     "other author's recipe",
			authorID: 8,
			target:   "/api/v1/recipes/3/unpublish",
			setupMock: func() {
				mockSvc.EXPECT().SetPublished(gomock.Any(), int64(8), int64(3), false).Return(services.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:     "internal error",
			authorID: 7,
			target:   "/api/v1/recipes/3/publish",
			setupMock: func() {
				mockSvc.EXPECT().SetPublished(gomock.Any(), int64(7), int64(3), true).Return(context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			rr := httptest.NewRecorder()
			newRouter(tt.authorID).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
