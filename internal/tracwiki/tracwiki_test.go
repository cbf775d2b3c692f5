package tracwiki

import (
	"testing"

	"github.com/salmonumbrella/tracwiki-cli/internal/doctree"
)

func render(n doctree.Node, opts ...Option) string {
	return New(opts...).Render(doctree.NewDocument(n))
}

func TestHeadline(t *testing.T) {
	tests := []struct {
		name string
		node *doctree.Headline
		want string
	}{
		{
			name: "top level",
			node: doctree.NewHeadline(1, "Overview"),
			want: "= Overview\n",
		},
		{
			name: "second level",
			node: doctree.NewHeadline(2, "Details"),
			want: "== Details\n",
		},
		{
			name: "with body",
			node: doctree.NewHeadline(1, "Intro", doctree.NewParagraph(doctree.NewText("text"))),
			want: "= Intro\ntext\n",
		},
		{
			name: "nested headline adds a level",
			node: doctree.NewHeadline(1, "Outer", doctree.NewHeadline(1, "Inner")),
			want: "= Outer\n== Inner\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(tt.node); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParagraph(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		preserve bool
		want     string
	}{
		{
			name: "whitespace collapsed",
			text: "a\nb   c",
			want: "a b c\n",
		},
		{
			name:     "preserve breaks",
			text:     "a\nb   c",
			preserve: true,
			want:     "a\nb   c\n",
		},
		{
			name: "leading directive trigger escaped",
			text: "#1 item",
			want: "!#1 item\n",
		},
		{
			name: "empty paragraph",
			text: "",
			want: "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := doctree.NewParagraph(doctree.NewText(tt.text))
			got := render(p, WithPreserveBreaks(tt.preserve))
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeBlock(t *testing.T) {
	tests := []struct {
		name string
		lang string
		code string
		want string
	}{
		{
			name: "plain language",
			lang: "python",
			code: "print(1)\n",
			want: "{{{#!python\nprint(1)\n}}}\n",
		},
		{
			name: "f90 renamed to fortran",
			lang: "f90",
			code: "end program\n",
			want: "{{{#!fortran\nend program\n}}}\n",
		},
		{
			name: "no language",
			lang: "",
			code: "plain\n",
			want: "{{{\nplain\n}}}\n",
		},
		{
			name: "missing trailing newline added",
			lang: "go",
			code: "x := 1",
			want: "{{{#!go\nx := 1\n}}}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(doctree.NewCodeBlock(tt.lang, tt.code))
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeBlockCustomAlias(t *testing.T) {
	cb := doctree.NewCodeBlock("golang", "x\n")
	got := render(cb, WithLanguageAliases(map[string]string{"golang": "go"}))
	want := "{{{#!go\nx\n}}}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestExampleBlock(t *testing.T) {
	got := render(doctree.NewExampleBlock("verbatim\n"))
	want := "{{{\nverbatim\n}}}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestInlineMarkup(t *testing.T) {
	tests := []struct {
		name string
		node doctree.Node
		want string
	}{
		{
			name: "strikethrough",
			node: doctree.NewStrikethrough(doctree.NewText("gone")),
			want: "~~gone~~",
		},
		{
			name: "subscript",
			node: doctree.NewSubscript(doctree.NewText("2")),
			want: "_2",
		},
		{
			name: "emphasis",
			node: doctree.NewEmphasis(false, doctree.NewText("it")),
			want: "''it''",
		},
		{
			name: "strong",
			node: doctree.NewEmphasis(true, doctree.NewText("bold")),
			want: "'''bold'''",
		},
		{
			name: "code span",
			node: doctree.NewCodeSpan("x := 1"),
			want: "`x := 1`",
		},
		{
			name: "bare link",
			node: doctree.NewLink("https://example.com"),
			want: "[https://example.com]",
		},
		{
			name: "labeled link",
			node: doctree.NewLink("https://example.com", doctree.NewText("site")),
			want: "[https://example.com site]",
		},
		{
			name: "label equal to destination collapses",
			node: doctree.NewLink("https://example.com", doctree.NewText("https://example.com")),
			want: "[https://example.com]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := doctree.NewParagraph(tt.node, doctree.NewText(" end"))
			got := render(p)
			want := tt.want + " end\n"
			if got != want {
				t.Errorf("Render() = %q, want %q", got, want)
			}
		})
	}
}

func TestList(t *testing.T) {
	item := func(s string) *doctree.ListItem {
		return doctree.NewListItem(doctree.NewParagraph(doctree.NewText(s)))
	}

	unordered := doctree.NewList(false, item("one"), item("two"))
	if got, want := render(unordered), " * one\n * two\n"; got != want {
		t.Errorf("unordered = %q, want %q", got, want)
	}

	ordered := doctree.NewList(true, item("first"), item("second"))
	if got, want := render(ordered), " 1. first\n 2. second\n"; got != want {
		t.Errorf("ordered = %q, want %q", got, want)
	}
}

func TestNestedList(t *testing.T) {
	inner := doctree.NewList(false, doctree.NewListItem(doctree.NewParagraph(doctree.NewText("sub"))))
	outer := doctree.NewList(false, doctree.NewListItem(
		doctree.NewParagraph(doctree.NewText("top")),
		inner,
	))
	got := render(outer)
	want := " * top\n  * sub\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
