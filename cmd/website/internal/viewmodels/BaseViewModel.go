package viewmodels

import (
	"context"
	"net/http"

	"github.com/adampresley/adamgokit/rendering"
)

type contextKey string

const requestIDKey contextKey = "requestID"

type BaseViewModel struct {
	Message            string
	IsError            bool
	IsWarning          bool
	IsHtmx             bool
	JavascriptIncludes []rendering.JavascriptInclude
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestIDFromContext(r *http.Request) string {
	if result, ok := r.Context().Value(requestIDKey).(string); ok {
		return result
	}

	return ""
}
