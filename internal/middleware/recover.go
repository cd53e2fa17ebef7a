package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// Recoverer turns a panic into the generic 500 error envelope.
func Recoverer(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.WithFields(logrus.Fields{
					"request_id": RequestIDFromContext(r.Context()),
					"panic":      fmt.Sprint(rec),
					"stack":      string(debug.Stack()),
				}).Error("panic while handling request")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
