// Package cmdutil holds small helpers shared by the commands: input source
// resolution and key=value flag parsing.
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	clierrors "github.com/salmonumbrella/tracwiki-cli/internal/errors"
)

// ReadInputSource reads input from a file path, or stdin when path is "-".
func ReadInputSource(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("input file path is required")
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return string(data), nil
}

// ResolveInput resolves a command's document argument: a path, "@file", "-"
// for stdin, or empty (also stdin).
func ResolveInput(arg string) (string, error) {
	trimmed := strings.TrimSpace(arg)
	if trimmed == "" || trimmed == "-" {
		return ReadInputSource("-")
	}
	if strings.HasPrefix(trimmed, "@") {
		return ReadInputSource(trimmed[1:])
	}
	return ReadInputSource(trimmed)
}

// WriteOutput writes data to path, or to w when path is empty or "-".
func WriteOutput(w io.Writer, path, data string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(w, data)
		return err
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

// ParseColumnWidths parses repeated "COL=WIDTH" flag values into a width map.
func ParseColumnWidths(values []string) (map[int]int, error) {
	if len(values) == 0 {
		return nil, nil
	}
	widths := make(map[int]int, len(values))
	for _, v := range values {
		col, width, ok := strings.Cut(v, "=")
		if !ok {
			return nil, clierrors.NewValidationError("--column-width", fmt.Sprintf("%q is not COL=WIDTH", v))
		}
		c, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil || c < 0 {
			return nil, clierrors.NewValidationError("--column-width", fmt.Sprintf("column %q is not a non-negative integer", col))
		}
		w, err := strconv.Atoi(strings.TrimSpace(width))
		if err != nil || w < 0 {
			return nil, clierrors.NewValidationError("--column-width", fmt.Sprintf("width %q is not a non-negative integer", width))
		}
		widths[c] = w
	}
	return widths, nil
}

// ParseAliases parses repeated "FROM=TO" flag values into an alias map.
func ParseAliases(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	aliases := make(map[string]string, len(values))
	for _, v := range values {
		from, to, ok := strings.Cut(v, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, clierrors.NewValidationError("--lang-alias", fmt.Sprintf("%q is not FROM=TO", v))
		}
		aliases[from] = to
	}
	return aliases, nil
}
