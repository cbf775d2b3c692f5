// Package tracwiki renders a doctree document as Trac-style wiki markup.
//
// Most node kinds are plain string substitution; the table subsystem
// (table.go) carries the real work: per-column width measurement with a
// render-scoped cache, padded cell assembly, second-row rule handling and
// dummy header synthesis.
package tracwiki

import (
	"fmt"
	"strings"

	"github.com/salmonumbrella/tracwiki-cli/internal/doctree"
)

// Dialect tokens.
const (
	headingMarker = "="
	strikeToken   = "~~"
	fenceOpen     = "{{{"
	fenceClose    = "}}}"
	shebangPrefix = "#!"

	// A paragraph starting with the directive trigger is escaped with the
	// dialect's literal marker so it is not swallowed as a processor line.
	directiveTrigger = "#"
	literalEscape    = "!"
)

// defaultLanguageAliases maps source language tags to the names the wiki's
// syntax highlighter knows. f90 is the one renaming the dialect requires.
var defaultLanguageAliases = map[string]string{
	"f90": "fortran",
}

// Transcoder converts doctree documents to wiki markup. A Transcoder is
// immutable after construction and safe to share; each Render call carries
// its own width cache.
type Transcoder struct {
	preserveBreaks bool
	columnWidths   map[int]int
	langAliases    map[string]string
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithPreserveBreaks disables paragraph whitespace collapsing, keeping the
// source's line breaks.
func WithPreserveBreaks(on bool) Option {
	return func(t *Transcoder) { t.preserveBreaks = on }
}

// WithColumnWidths sets explicit widths by column index. These apply to every
// table in the document and take precedence over measured widths and in-table
// cookies.
func WithColumnWidths(widths map[int]int) Option {
	return func(t *Transcoder) {
		for col, w := range widths {
			t.columnWidths[col] = w
		}
	}
}

// WithLanguageAliases adds code block language renamings on top of the
// defaults.
func WithLanguageAliases(aliases map[string]string) Option {
	return func(t *Transcoder) {
		for from, to := range aliases {
			t.langAliases[from] = to
		}
	}
}

// New builds a Transcoder.
func New(opts ...Option) *Transcoder {
	t := &Transcoder{
		columnWidths: map[int]int{},
		langAliases:  map[string]string{},
	}
	for from, to := range defaultLanguageAliases {
		t.langAliases[from] = to
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render produces the wiki text for a document.
func (t *Transcoder) Render(doc *doctree.Document) string {
	s := &renderState{t: t, widths: map[widthKey]int{}}
	return s.renderChildren(doc)
}

// renderState is the per-Render mutable state, today just the width cache.
// Rendering within one state is single-threaded.
type renderState struct {
	t      *Transcoder
	widths map[widthKey]int
}

// render dispatches one node. The switch is exhaustive over the doctree
// variants; an unknown node renders as its plain text so output stays total.
func (s *renderState) render(n doctree.Node) string {
	switch n := n.(type) {
	case *doctree.Document:
		return s.renderChildren(n)
	case *doctree.Headline:
		return s.headline(n)
	case *doctree.Paragraph:
		return s.paragraph(n)
	case *doctree.Table:
		return s.table(n)
	case *doctree.TableRow:
		return s.tableRow(n)
	case *doctree.TableCell:
		return s.tableCell(n)
	case *doctree.CodeBlock:
		return s.codeBlock(n)
	case *doctree.ExampleBlock:
		return exampleBlock(n)
	case *doctree.List:
		return s.list(n, 0)
	case *doctree.ListItem:
		return s.renderChildren(n)
	case *doctree.Strikethrough:
		return strikeToken + s.renderChildren(n) + strikeToken
	case *doctree.Subscript:
		// The dialect has no braced subscript form; a bare underscore prefix
		// is the closest it offers.
		return "_" + s.renderChildren(n)
	case *doctree.Emphasis:
		if n.Strong {
			return "'''" + s.renderChildren(n) + "'''"
		}
		return "''" + s.renderChildren(n) + "''"
	case *doctree.CodeSpan:
		return "`" + n.Literal + "`"
	case *doctree.Link:
		return link(n.Destination, s.renderChildren(n))
	case *doctree.Text:
		return n.Value
	}
	return doctree.PlainText(n)
}

func (s *renderState) renderChildren(n doctree.Node) string {
	var b strings.Builder
	for _, c := range n.Children() {
		b.WriteString(s.render(c))
	}
	return b.String()
}

// renderInline renders a node's children without block separators. Table cell
// measurement and cell content share this path so measured widths always match
// rendered content.
func (s *renderState) renderInline(n doctree.Node) string {
	return s.renderChildren(n)
}

func (s *renderState) headline(h *doctree.Headline) string {
	marker := strings.Repeat(headingMarker, relativeLevel(h)+1)
	return fmt.Sprintf("%s %s\n%s", marker, h.Title, s.renderChildren(h))
}

// relativeLevel is the headline's 0-based depth: its source level offset by
// any headline ancestors it is nested under.
func relativeLevel(h *doctree.Headline) int {
	level := h.Level - 1
	for p := h.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*doctree.Headline); ok {
			level++
		}
	}
	return level
}

func (s *renderState) paragraph(p *doctree.Paragraph) string {
	contents := s.renderChildren(p)
	if !s.t.preserveBreaks {
		contents = strings.Join(strings.Fields(contents), " ")
	}
	contents = strings.TrimRight(contents, "\n") + "\n"
	if strings.HasPrefix(contents, directiveTrigger) {
		contents = literalEscape + contents
	}
	return contents
}

func (s *renderState) codeBlock(cb *doctree.CodeBlock) string {
	lang := cb.Language
	if alias, ok := s.t.langAliases[lang]; ok {
		lang = alias
	}
	code := ensureNewline(cb.Literal)
	if lang == "" {
		return fenceOpen + "\n" + code + fenceClose + "\n"
	}
	return fenceOpen + shebangPrefix + lang + "\n" + code + fenceClose + "\n"
}

func exampleBlock(eb *doctree.ExampleBlock) string {
	return fenceOpen + "\n" + ensureNewline(eb.Literal) + fenceClose + "\n"
}

func (s *renderState) list(l *doctree.List, depth int) string {
	var b strings.Builder
	for i, item := range l.Items() {
		indent := strings.Repeat(" ", depth+1)
		if l.Ordered {
			b.WriteString(fmt.Sprintf("%s%d. ", indent, i+1))
		} else {
			b.WriteString(indent + "* ")
		}
		b.WriteString(s.listItem(item, depth))
	}
	return b.String()
}

func (s *renderState) listItem(item *doctree.ListItem, depth int) string {
	var b strings.Builder
	for _, c := range item.Children() {
		if nested, ok := c.(*doctree.List); ok {
			b.WriteString(s.list(nested, depth+1))
			continue
		}
		b.WriteString(s.render(c))
	}
	out := b.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

func link(destination, label string) string {
	label = strings.TrimSpace(label)
	if label == "" || label == destination {
		return "[" + destination + "]"
	}
	return "[" + destination + " " + label + "]"
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
