package service

import (
	"context"

	"github.com/hromada/hromada-api/pkg/logger"
)

// detach builds a background context for notification goroutines that
// keeps the request's log correlation IDs but outlives the request.
func detach(ctx context.Context) context.Context {
	bg := context.Background()
	if traceID := logger.GetTraceID(ctx); traceID != "" {
		bg = logger.WithTraceID(bg, traceID)
	}
	if userID := logger.GetUserID(ctx); userID != "" {
		bg = logger.WithUserID(bg, userID)
	}
	return bg
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
