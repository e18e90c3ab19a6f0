package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/recipes/internal/logger"
	"github.com/sbilibin2017/recipes/internal/models"
	"github.com/sbilibin2017/recipes/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.RegisterAuthorInput) (int64, error)
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: Author registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for author registration.
// @Summary Register a new author
// @Description Creates an author account. Username and email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterAuthorInput true "Author registration request"
// @Success 201 {object} handlers.RegisterResponse "Author successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterAuthorInput

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		_, err := svc.Register(r.Context(), req)
		if err != nil {
			switch {
			case isValidationError(err):
				writeValidationError(w, err)
			case errors.Is(err, services.ErrAuthorAlreadyExists):
				writeError(w, http.StatusConflict, "Username or email already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "Author registered successfully",
		})
	}
}
