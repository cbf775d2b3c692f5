// Package markdown parses Markdown source into the converter's document tree.
//
// Parsing is delegated to goldmark with the GFM extensions; this package only
// maps the goldmark AST onto doctree nodes. Two shape changes happen on the
// way: headings become nested headline sections, and every parsed table gets a
// rule row at index 1 (the GFM delimiter line goldmark consumes), which is the
// position the wiki dialect requires a separator in.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/salmonumbrella/tracwiki-cli/internal/doctree"
)

var parser = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse converts Markdown source into a document tree.
func Parse(source []byte) *doctree.Document {
	root := parser.Parser().Parse(text.NewReader(source))
	blocks := convertBlocks(root, source)
	return doctree.NewDocument(nestSections(blocks)...)
}

// section pairs a headline with the blocks collected under it so far.
type section struct {
	headline *doctree.Headline
	blocks   []doctree.Node
}

// nestSections groups a flat block sequence into headline sections: each
// block after a headline belongs to it until a headline of the same or
// shallower level appears.
func nestSections(blocks []doctree.Node) []doctree.Node {
	var top []doctree.Node
	var stack []*section

	place := func(n doctree.Node) {
		if len(stack) == 0 {
			top = append(top, n)
			return
		}
		s := stack[len(stack)-1]
		s.blocks = append(s.blocks, n)
	}
	// closeTo pops sections of level >= level, rebuilding each headline with
	// its collected body.
	closeTo := func(level int) {
		for len(stack) > 0 && stack[len(stack)-1].headline.Level >= level {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			rebuilt := doctree.NewHeadline(s.headline.Level, s.headline.Title, s.blocks...)
			if len(stack) == 0 {
				top = append(top, rebuilt)
			} else {
				parent := stack[len(stack)-1]
				parent.blocks = append(parent.blocks, rebuilt)
			}
		}
	}

	for _, b := range blocks {
		if h, ok := b.(*doctree.Headline); ok {
			closeTo(h.Level)
			stack = append(stack, &section{headline: h})
			continue
		}
		place(b)
	}
	closeTo(0)
	return top
}

func convertBlocks(parent ast.Node, source []byte) []doctree.Node {
	var out []doctree.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, convertBlock(n, source)...)
	}
	return out
}

// convertBlock maps one goldmark block node to zero or more doctree nodes.
func convertBlock(n ast.Node, source []byte) []doctree.Node {
	switch n := n.(type) {
	case *ast.Heading:
		title := strings.TrimSpace(inlineText(n, source))
		return []doctree.Node{doctree.NewHeadline(n.Level, title)}
	case *ast.Paragraph:
		return []doctree.Node{doctree.NewParagraph(convertInlines(n, source)...)}
	case *ast.TextBlock:
		return []doctree.Node{doctree.NewParagraph(convertInlines(n, source)...)}
	case *ast.FencedCodeBlock:
		lang := string(n.Language(source))
		return []doctree.Node{doctree.NewCodeBlock(lang, blockLines(n, source))}
	case *ast.CodeBlock:
		return []doctree.Node{doctree.NewExampleBlock(blockLines(n, source))}
	case *ast.List:
		return []doctree.Node{convertList(n, source)}
	case *ast.Blockquote:
		// The dialect's quoting is out of scope; quoted blocks pass through
		// as their contents.
		return convertBlocks(n, source)
	case *ast.ThematicBreak:
		return []doctree.Node{doctree.NewParagraph(doctree.NewText("----"))}
	case *east.Table:
		return []doctree.Node{convertTable(n, source)}
	case *ast.HTMLBlock:
		return nil
	}
	if n.Type() == ast.TypeBlock {
		return []doctree.Node{doctree.NewParagraph(convertInlines(n, source)...)}
	}
	return nil
}

func convertList(l *ast.List, source []byte) *doctree.List {
	var items []*doctree.ListItem
	for n := l.FirstChild(); n != nil; n = n.NextSibling() {
		items = append(items, doctree.NewListItem(convertBlocks(n, source)...))
	}
	return doctree.NewList(l.IsOrdered(), items...)
}

// convertTable maps a GFM table: header row first, then a synthesized rule
// row, then the body rows.
func convertTable(t *east.Table, source []byte) *doctree.Table {
	var rows []*doctree.TableRow
	for n := t.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *east.TableHeader:
			rows = append(rows, convertTableRow(n, source), doctree.NewRuleRow())
		case *east.TableRow:
			rows = append(rows, convertTableRow(n, source))
		}
	}
	return doctree.NewTable(rows...)
}

func convertTableRow(row ast.Node, source []byte) *doctree.TableRow {
	var cells []*doctree.TableCell
	for n := row.FirstChild(); n != nil; n = n.NextSibling() {
		cells = append(cells, doctree.NewTableCell(convertInlines(n, source)...))
	}
	return doctree.NewTableRow(cells...)
}

func convertInlines(parent ast.Node, source []byte) []doctree.Node {
	var out []doctree.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, convertInline(n, source)...)
	}
	return out
}

func convertInline(n ast.Node, source []byte) []doctree.Node {
	switch n := n.(type) {
	case *ast.Text:
		value := string(n.Segment.Value(source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			value += "\n"
		}
		if value == "" {
			return nil
		}
		return []doctree.Node{doctree.NewText(value)}
	case *ast.String:
		return []doctree.Node{doctree.NewText(string(n.Value))}
	case *ast.CodeSpan:
		return []doctree.Node{doctree.NewCodeSpan(inlineText(n, source))}
	case *ast.Emphasis:
		return []doctree.Node{doctree.NewEmphasis(n.Level >= 2, convertInlines(n, source)...)}
	case *east.Strikethrough:
		if singleTildeDelimited(n, source) {
			return []doctree.Node{doctree.NewSubscript(convertInlines(n, source)...)}
		}
		return []doctree.Node{doctree.NewStrikethrough(convertInlines(n, source)...)}
	case *ast.Link:
		return []doctree.Node{doctree.NewLink(string(n.Destination), convertInlines(n, source)...)}
	case *ast.AutoLink:
		return []doctree.Node{doctree.NewLink(string(n.URL(source)))}
	case *ast.Image:
		return []doctree.Node{doctree.NewLink(string(n.Destination), convertInlines(n, source)...)}
	case *ast.RawHTML:
		return nil
	}
	if txt := inlineText(n, source); txt != "" {
		return []doctree.Node{doctree.NewText(txt)}
	}
	return nil
}

// singleTildeDelimited reports whether a strikethrough span was delimited by
// one tilde (pandoc-style subscript, `~2~`) rather than two. goldmark's GFM
// extension accepts both run lengths and parses them into the same node kind,
// so the opener length is recovered from the source bytes preceding the
// span's first text segment.
func singleTildeDelimited(n ast.Node, source []byte) bool {
	start := -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			start = t.Segment.Start
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	// A span opening with anything but a bare tilde (another inline's marker,
	// or no text at all) keeps strikethrough semantics.
	if start < 1 || source[start-1] != '~' {
		return false
	}
	return start < 2 || source[start-2] != '~'
}

// inlineText flattens a node's inline content to plain text.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	appendText(n, source, &b)
	return b.String()
}

func appendText(n ast.Node, source []byte, b *strings.Builder) {
	if t, ok := n.(*ast.Text); ok {
		b.Write(t.Segment.Value(source))
		if t.SoftLineBreak() || t.HardLineBreak() {
			b.WriteString("\n")
		}
		return
	}
	if s, ok := n.(*ast.String); ok {
		b.Write(s.Value)
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		appendText(c, source, b)
	}
}

// blockLines joins a block node's source line segments.
func blockLines(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}
