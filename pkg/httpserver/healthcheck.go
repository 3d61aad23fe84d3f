package httpserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/avelov/authkit/pkg/logger"
)

// Healthcheck returns a probe handler. With no checks it always reports
// 200 (liveness). With checks it runs each against the request context and
// reports 503 on the first failure (readiness).
func Healthcheck(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "healthcheck failed", logger.Error(err))
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}
