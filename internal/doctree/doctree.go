// Package doctree defines the document tree the converter renders from: a
// closed set of node variants (headlines, paragraphs, tables, inline markup)
// with parent links, plus the query operations the renderer needs (sibling
// positions, table dimensions, special columns, plain-text extraction).
//
// Nodes are built once by a front end (internal/markdown, or tests directly)
// and are never mutated by rendering.
package doctree

import (
	"strings"
)

// Kind identifies a node variant.
type Kind int

const (
	KindDocument Kind = iota
	KindHeadline
	KindParagraph
	KindTable
	KindTableRow
	KindTableCell
	KindCodeBlock
	KindExampleBlock
	KindList
	KindListItem
	KindStrikethrough
	KindSubscript
	KindEmphasis
	KindCodeSpan
	KindLink
	KindText
)

// String returns the lowercase name of the kind, as used by `trc inspect`.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindHeadline:
		return "headline"
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	case KindTableRow:
		return "table-row"
	case KindTableCell:
		return "table-cell"
	case KindCodeBlock:
		return "code-block"
	case KindExampleBlock:
		return "example-block"
	case KindList:
		return "list"
	case KindListItem:
		return "list-item"
	case KindStrikethrough:
		return "strikethrough"
	case KindSubscript:
		return "subscript"
	case KindEmphasis:
		return "emphasis"
	case KindCodeSpan:
		return "code-span"
	case KindLink:
		return "link"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Node is implemented by every variant in this package and nothing else.
type Node interface {
	Kind() Kind
	Parent() Node
	Children() []Node

	setParent(Node)
}

// baseNode carries the tree links shared by all variants.
type baseNode struct {
	parent   Node
	children []Node
}

func (b *baseNode) Parent() Node     { return b.parent }
func (b *baseNode) Children() []Node { return b.children }
func (b *baseNode) setParent(p Node) { b.parent = p }

func (b *baseNode) adopt(self Node, children []Node) {
	b.children = children
	for _, c := range children {
		c.setParent(self)
	}
}

// Document is the tree root.
type Document struct {
	baseNode
}

func (*Document) Kind() Kind { return KindDocument }

// NewDocument builds a document from its top-level nodes.
func NewDocument(children ...Node) *Document {
	d := &Document{}
	d.adopt(d, children)
	return d
}

// Headline is a section heading. Level is 1-based; the body of the section
// (everything up to the next headline of the same or shallower level) is held
// in Children.
type Headline struct {
	baseNode
	Level int
	Title string
}

func (*Headline) Kind() Kind { return KindHeadline }

func NewHeadline(level int, title string, children ...Node) *Headline {
	h := &Headline{Level: level, Title: title}
	h.adopt(h, children)
	return h
}

// Paragraph holds a run of inline nodes.
type Paragraph struct {
	baseNode
}

func (*Paragraph) Kind() Kind { return KindParagraph }

func NewParagraph(children ...Node) *Paragraph {
	p := &Paragraph{}
	p.adopt(p, children)
	return p
}

// Table owns an ordered sequence of rows.
type Table struct {
	baseNode
}

func (*Table) Kind() Kind { return KindTable }

func NewTable(rows ...*TableRow) *Table {
	t := &Table{}
	children := make([]Node, len(rows))
	for i, r := range rows {
		children[i] = r
	}
	t.adopt(t, children)
	return t
}

// Rows returns the table's rows in order, rule rows included.
func (t *Table) Rows() []*TableRow {
	rows := make([]*TableRow, 0, len(t.children))
	for _, c := range t.children {
		if r, ok := c.(*TableRow); ok {
			rows = append(rows, r)
		}
	}
	return rows
}

// TableRow is either a content row holding cells or a rule row holding none.
type TableRow struct {
	baseNode
	rule bool
}

func (*TableRow) Kind() Kind { return KindTableRow }

// IsRule reports whether the row is a horizontal separator rather than content.
func (r *TableRow) IsRule() bool { return r.rule }

func NewTableRow(cells ...*TableCell) *TableRow {
	r := &TableRow{}
	children := make([]Node, len(cells))
	for i, c := range cells {
		children[i] = c
	}
	r.adopt(r, children)
	return r
}

// NewRuleRow builds a separator row. It carries no cells.
func NewRuleRow() *TableRow {
	return &TableRow{rule: true}
}

// Cells returns the row's cells in order.
func (r *TableRow) Cells() []*TableCell {
	cells := make([]*TableCell, 0, len(r.children))
	for _, c := range r.children {
		if cell, ok := c.(*TableCell); ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

// TableCell holds inline content.
type TableCell struct {
	baseNode
}

func (*TableCell) Kind() Kind { return KindTableCell }

func NewTableCell(children ...Node) *TableCell {
	c := &TableCell{}
	c.adopt(c, children)
	return c
}

// CodeBlock is a fenced source block with an optional language tag.
type CodeBlock struct {
	baseNode
	Language string
	Literal  string
}

func (*CodeBlock) Kind() Kind { return KindCodeBlock }

func NewCodeBlock(language, literal string) *CodeBlock {
	return &CodeBlock{Language: language, Literal: literal}
}

// ExampleBlock is preformatted text with no language.
type ExampleBlock struct {
	baseNode
	Literal string
}

func (*ExampleBlock) Kind() Kind { return KindExampleBlock }

func NewExampleBlock(literal string) *ExampleBlock {
	return &ExampleBlock{Literal: literal}
}

// List is an ordered or unordered list of items.
type List struct {
	baseNode
	Ordered bool
}

func (*List) Kind() Kind { return KindList }

func NewList(ordered bool, items ...*ListItem) *List {
	l := &List{Ordered: ordered}
	children := make([]Node, len(items))
	for i, it := range items {
		children[i] = it
	}
	l.adopt(l, children)
	return l
}

// Items returns the list's items in order.
func (l *List) Items() []*ListItem {
	items := make([]*ListItem, 0, len(l.children))
	for _, c := range l.children {
		if it, ok := c.(*ListItem); ok {
			items = append(items, it)
		}
	}
	return items
}

// ListItem holds the blocks of one list entry.
type ListItem struct {
	baseNode
}

func (*ListItem) Kind() Kind { return KindListItem }

func NewListItem(children ...Node) *ListItem {
	li := &ListItem{}
	li.adopt(li, children)
	return li
}

// Strikethrough wraps inline content struck through in the source.
type Strikethrough struct {
	baseNode
}

func (*Strikethrough) Kind() Kind { return KindStrikethrough }

func NewStrikethrough(children ...Node) *Strikethrough {
	s := &Strikethrough{}
	s.adopt(s, children)
	return s
}

// Subscript wraps inline content subscripted in the source.
type Subscript struct {
	baseNode
}

func (*Subscript) Kind() Kind { return KindSubscript }

func NewSubscript(children ...Node) *Subscript {
	s := &Subscript{}
	s.adopt(s, children)
	return s
}

// Emphasis is italic (Strong false) or bold (Strong true) inline content.
type Emphasis struct {
	baseNode
	Strong bool
}

func (*Emphasis) Kind() Kind { return KindEmphasis }

func NewEmphasis(strong bool, children ...Node) *Emphasis {
	e := &Emphasis{Strong: strong}
	e.adopt(e, children)
	return e
}

// CodeSpan is inline verbatim text.
type CodeSpan struct {
	baseNode
	Literal string
}

func (*CodeSpan) Kind() Kind { return KindCodeSpan }

func NewCodeSpan(literal string) *CodeSpan {
	return &CodeSpan{Literal: literal}
}

// Link points at Destination; its children are the label (may be empty for
// bare URLs).
type Link struct {
	baseNode
	Destination string
}

func (*Link) Kind() Kind { return KindLink }

func NewLink(destination string, children ...Node) *Link {
	l := &Link{Destination: destination}
	l.adopt(l, children)
	return l
}

// Text is a literal run of characters.
type Text struct {
	baseNode
	Value string
}

func (*Text) Kind() Kind { return KindText }

func NewText(value string) *Text {
	return &Text{Value: value}
}

// SiblingIndex returns n's position among its parent's children, or 0 when n
// has no parent.
func SiblingIndex(n Node) int {
	p := n.Parent()
	if p == nil {
		return 0
	}
	for i, c := range p.Children() {
		if c == n {
			return i
		}
	}
	return 0
}

// ParentTable returns the nearest Table ancestor of n, or nil.
func ParentTable(n Node) *Table {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if t, ok := p.(*Table); ok {
			return t
		}
	}
	return nil
}

// PlainText renders the subtree under n to markup-free text.
func PlainText(n Node) string {
	var b strings.Builder
	plainText(n, &b)
	return b.String()
}

func plainText(n Node, b *strings.Builder) {
	switch n := n.(type) {
	case *Text:
		b.WriteString(n.Value)
	case *CodeSpan:
		b.WriteString(n.Literal)
	case *CodeBlock:
		b.WriteString(n.Literal)
	case *ExampleBlock:
		b.WriteString(n.Literal)
	case *Headline:
		b.WriteString(n.Title)
		for _, c := range n.Children() {
			plainText(c, b)
		}
	case *Link:
		if len(n.Children()) == 0 {
			b.WriteString(n.Destination)
			return
		}
		for _, c := range n.Children() {
			plainText(c, b)
		}
	default:
		for _, c := range n.Children() {
			plainText(c, b)
		}
	}
}
