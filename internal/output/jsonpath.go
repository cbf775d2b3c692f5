package output

import (
	"context"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	clierrors "github.com/salmonumbrella/tracwiki-cli/internal/errors"
)

// applyJSONPath extracts a value from data using the context's JSONPath, if
// one is set. Bare paths like "stats.tables" get the "$." prefix added.
func applyJSONPath(ctx context.Context, data any) (any, error) {
	path := JSONPathFromContext(ctx)
	if path == "" {
		return data, nil
	}

	normalizedData, err := normalizeToInterface(data)
	if err != nil {
		return nil, err
	}

	value, err := jsonpath.Get(normalizeJSONPath(path), normalizedData)
	if err != nil {
		return nil, clierrors.WrapUserError(err, "invalid --jsonpath value", "Example: --jsonpath '$.stats.tables'")
	}
	return value, nil
}

func normalizeJSONPath(path string) string {
	trimmed := strings.TrimSpace(path)
	switch {
	case trimmed == "":
		return ""
	case strings.HasPrefix(trimmed, "$"), strings.HasPrefix(trimmed, "@"):
		return trimmed
	case strings.HasPrefix(trimmed, "."), strings.HasPrefix(trimmed, "["):
		return "$" + trimmed
	default:
		return "$." + trimmed
	}
}
