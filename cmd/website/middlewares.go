package main

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/adampresley/slowgallery/cmd/website/internal/viewmodels"
	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

/*
newRequestLoggingMiddleware tags every request with an ID, echoes it in the
X-Request-ID header and logs the request once it completes. Paths that start
with one of the excluded prefixes are passed through untouched.
*/
func newRequestLoggingMiddleware(excludedPaths []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			for _, excludedPath := range excludedPaths {
				if strings.HasPrefix(path, excludedPath) {
					next.ServeHTTP(w, r)
					return
				}
			}

			requestID := r.Header.Get("X-Request-ID")

			if requestID == "" {
				requestID = uuid.NewString()
			}

			w.Header().Set("X-Request-ID", requestID)
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			ctx := viewmodels.WithRequestID(r.Context(), requestID)
			next.ServeHTTP(recorder, r.WithContext(ctx))

			slog.Info("request",
				"requestID", requestID,
				"method", r.Method,
				"path", path,
				"status", recorder.status,
				"elapsed", time.Since(start),
			)
		})
	}
}
