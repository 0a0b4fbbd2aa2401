package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/txhooks"
)

// TxMiddleware runs the handler inside a database transaction. The response is
// buffered: statuses below 400 commit, anything else rolls back, and a failed
// commit turns the response into a 500. Callbacks registered with txhooks run
// after the outcome is known and before the response is written.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			ctx, hooks := txhooks.WithHooks(setTxToContext(r.Context(), tx))
			r = r.WithContext(ctx)

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					hooks.RolledBack(ctx)
					panic(rec)
				}
			}()

			buf := &bufferedWriter{header: w.Header(), statusCode: http.StatusOK}
			next.ServeHTTP(buf, r)

			if buf.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				hooks.RolledBack(ctx)
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				hooks.RolledBack(ctx)
				w.Header().Del("Content-Length")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"Internal server error"}` + "\n"))
				return
			}
			hooks.Committed(ctx)
			buf.flush(w)
		})
	}
}

// bufferedWriter holds the response until the transaction outcome is known.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(code int) { b.statusCode = code }

func (b *bufferedWriter) Write(p []byte) (int, error) { return b.body.Write(p) }

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	w.WriteHeader(b.statusCode)
	w.Write(b.body.Bytes())
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
