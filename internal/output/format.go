// Package output formats `trc inspect` results: JSON, YAML or a readable
// text tree, with optional jq filtering and JSONPath extraction.
package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is a human-readable tree (default).
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected text|json|yaml)")
	}
}

// Printer handles output formatting across the supported formats.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Print outputs data in the configured format, applying any jq query or
// JSONPath carried in the context.
func (p *Printer) Print(ctx context.Context, data any) error {
	if data == nil {
		return nil
	}

	data, err := applyJSONPath(ctx, data)
	if err != nil {
		return err
	}

	switch p.format {
	case FormatJSON:
		return p.printJSON(ctx, data)
	case FormatYAML:
		return p.printYAML(ctx, data)
	case FormatText:
		return p.printText(ctx, data)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

func (p *Printer) printJSON(ctx context.Context, data any) error {
	if query := QueryFromContext(ctx); query != "" {
		results, err := runQuery(query, data)
		if err != nil {
			return err
		}
		return p.encodeJSON(results...)
	}
	return p.encodeJSON(data)
}

func (p *Printer) encodeJSON(values ...any) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	for _, v := range values {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printYAML(ctx context.Context, data any) error {
	data, err := applyQuery(ctx, data)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

// printText renders scalars bare and everything else as YAML, which reads
// well for tree-shaped inspect output.
func (p *Printer) printText(ctx context.Context, data any) error {
	data, err := applyQuery(ctx, data)
	if err != nil {
		return err
	}
	switch v := data.(type) {
	case string:
		_, err := fmt.Fprintln(p.w, v)
		return err
	case bool, int, int64, float64:
		_, err := fmt.Fprintln(p.w, v)
		return err
	}
	return p.printYAML(context.Background(), data)
}

// applyQuery runs the context's jq query, if any, for non-JSON formats.
// A query yielding one value returns it bare; several come back as a slice.
func applyQuery(ctx context.Context, data any) (any, error) {
	query := QueryFromContext(ctx)
	if query == "" {
		return data, nil
	}
	results, err := runQuery(query, data)
	if err != nil {
		return nil, err
	}
	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}
