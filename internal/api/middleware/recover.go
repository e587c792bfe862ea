package middleware

import (
	"net/http"

	"appinfo/internal/api/response"

	"github.com/sirupsen/logrus"
)

// Recoverer turns a panic in a handler into a 500 JSON error.
// If the handler already started the response, it is left as is.
func Recoverer(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					log.WithFields(logrus.Fields{
						"path":            r.URL.Path,
						"request_id":      RequestIDFromContext(r.Context()),
						"headers_written": rec.status != 0,
					}).Errorf("Recovered from panic: %v", err)

					if rec.status != 0 {
						return
					}
					w.Header().Set("Connection", "close")
					response.Error(w, http.StatusInternalServerError, "The server encountered a problem and could not process your request.")
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
