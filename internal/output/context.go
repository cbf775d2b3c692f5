package output

import "context"

type contextKey string

const (
	queryContextKey    contextKey = "query"
	jsonPathContextKey contextKey = "jsonpath"
)

// WithQuery attaches a jq query expression to the context.
func WithQuery(ctx context.Context, query string) context.Context {
	if query == "" {
		return ctx
	}
	return context.WithValue(ctx, queryContextKey, query)
}

// QueryFromContext returns the jq query attached to the context, if any.
func QueryFromContext(ctx context.Context) string {
	if q, ok := ctx.Value(queryContextKey).(string); ok {
		return q
	}
	return ""
}

// WithJSONPath attaches a JSONPath expression to the context.
func WithJSONPath(ctx context.Context, path string) context.Context {
	if path == "" {
		return ctx
	}
	return context.WithValue(ctx, jsonPathContextKey, path)
}

// JSONPathFromContext returns the JSONPath attached to the context, if any.
func JSONPathFromContext(ctx context.Context) string {
	if p, ok := ctx.Value(jsonPathContextKey).(string); ok {
		return p
	}
	return ""
}
