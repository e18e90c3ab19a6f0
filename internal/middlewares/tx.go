package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipes/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction. The response
// is held back until the transaction is settled: a status below 400 commits,
// anything else rolls back. A failed commit turns the response into a 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqID := RequestIDFromContext(ctx)

			tx, err := db.BeginTxx(ctx, nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "request_id", reqID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			bw := &bufferedWriter{header: make(http.Header), statusCode: http.StatusOK}
			next.ServeHTTP(bw, r.WithContext(setTxToContext(ctx, tx)))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "request_id", reqID, "error", err)
				}
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "request_id", reqID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			bw.flush(w)
		})
	}
}

// bufferedWriter holds a response until the transaction outcome is known.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedWriter) Header() http.Header         { return bw.header }
func (bw *bufferedWriter) WriteHeader(code int)        { bw.statusCode = code }
func (bw *bufferedWriter) Write(b []byte) (int, error) { return bw.body.Write(b) }

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range bw.header {
		w.Header()[k] = v
	}
	w.WriteHeader(bw.statusCode)
	_, _ = bw.body.WriteTo(w)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
