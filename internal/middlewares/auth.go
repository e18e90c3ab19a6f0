package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/recipes/internal/jwt"
	"github.com/sbilibin2017/recipes/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type authorIDKey struct{}

// AuthorIDFromContext returns the authenticated author id set by AuthMiddleware.
func AuthorIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(authorIDKey{}).(int64)
	return id, ok
}

// WithAuthorID stores an author id the way AuthMiddleware does.
func WithAuthorID(ctx context.Context, authorID int64) context.Context {
	return context.WithValue(ctx, authorIDKey{}, authorID)
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the token's author id in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "request_id", RequestIDFromContext(ctx), "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "request_id", RequestIDFromContext(ctx), "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAuthorID(ctx, claims.AuthorID)))
		})
	}
}
