package doctree

import "testing"

func textCell(s string) *TableCell {
	return NewTableCell(NewText(s))
}

func TestSiblingIndex(t *testing.T) {
	r0 := NewTableRow(textCell("a"))
	r1 := NewRuleRow()
	r2 := NewTableRow(textCell("b"))
	NewTable(r0, r1, r2)

	if got := SiblingIndex(r0); got != 0 {
		t.Errorf("SiblingIndex(r0) = %d, want 0", got)
	}
	if got := SiblingIndex(r1); got != 1 {
		t.Errorf("SiblingIndex(r1) = %d, want 1", got)
	}
	if got := SiblingIndex(r2); got != 2 {
		t.Errorf("SiblingIndex(r2) = %d, want 2", got)
	}
	if got := SiblingIndex(NewText("loose")); got != 0 {
		t.Errorf("SiblingIndex(parentless) = %d, want 0", got)
	}
}

func TestParentTable(t *testing.T) {
	cell := textCell("x")
	row := NewTableRow(cell)
	table := NewTable(row)

	if got := ParentTable(cell); got != table {
		t.Errorf("ParentTable(cell) = %v, want the owning table", got)
	}
	if got := ParentTable(row); got != table {
		t.Errorf("ParentTable(row) = %v, want the owning table", got)
	}
	if got := ParentTable(table); got != nil {
		t.Errorf("ParentTable(table) = %v, want nil", got)
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"text", NewText("hello"), "hello"},
		{"nested inline", NewParagraph(NewText("a "), NewStrikethrough(NewText("b"))), "a b"},
		{"code span", NewCodeSpan("x := 1"), "x := 1"},
		{"code block", NewCodeBlock("go", "fmt.Println()\n"), "fmt.Println()\n"},
		{"headline", NewHeadline(1, "Title", NewParagraph(NewText(" body"))), "Title body"},
		{"bare link", NewLink("https://example.com"), "https://example.com"},
		{"labeled link", NewLink("https://example.com", NewText("site")), "site"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.node); got != tt.want {
				t.Errorf("PlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		name     string
		table    *Table
		wantRows int
		wantCols int
	}{
		{
			name:     "empty table",
			table:    NewTable(),
			wantRows: 0,
			wantCols: 0,
		},
		{
			name:     "single row",
			table:    NewTable(NewTableRow(textCell("a"), textCell("b"))),
			wantRows: 1,
			wantCols: 2,
		},
		{
			name: "rule rows not counted",
			table: NewTable(
				NewTableRow(textCell("h")),
				NewRuleRow(),
				NewTableRow(textCell("b")),
			),
			wantRows: 2,
			wantCols: 1,
		},
		{
			name: "special column not counted",
			table: NewTable(
				NewTableRow(textCell("/"), textCell("a"), textCell("b")),
				NewTableRow(textCell(""), textCell("c"), textCell("d")),
			),
			wantRows: 2,
			wantCols: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols := Dimensions(tt.table)
			if rows != tt.wantRows || cols != tt.wantCols {
				t.Errorf("Dimensions() = (%d, %d), want (%d, %d)", rows, cols, tt.wantRows, tt.wantCols)
			}
		})
	}
}

func TestHasSpecialColumn(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		want  bool
	}{
		{
			name: "marked first column",
			table: NewTable(
				NewTableRow(textCell("/"), textCell("a")),
				NewTableRow(textCell(""), textCell("b")),
			),
			want: true,
		},
		{
			name: "all empty first column is not special",
			table: NewTable(
				NewTableRow(textCell(""), textCell("a")),
				NewTableRow(textCell(""), textCell("b")),
			),
			want: false,
		},
		{
			name: "content in first column",
			table: NewTable(
				NewTableRow(textCell("/"), textCell("a")),
				NewTableRow(textCell("x"), textCell("b")),
			),
			want: false,
		},
		{
			name:  "single column never special",
			table: NewTable(NewTableRow(textCell("/"))),
			want:  false,
		},
		{
			name:  "empty table",
			table: NewTable(),
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasSpecialColumn(tt.table); got != tt.want {
				t.Errorf("HasSpecialColumn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellAddress(t *testing.T) {
	c00 := textCell("a")
	c01 := textCell("b")
	c10 := textCell("c")
	NewTable(
		NewTableRow(c00, c01),
		NewRuleRow(),
		NewTableRow(c10),
	)

	tests := []struct {
		name    string
		cell    *TableCell
		wantRow int
		wantCol int
	}{
		{"first cell", c00, 0, 0},
		{"second column", c01, 0, 1},
		{"row after rule", c10, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := CellAddress(tt.cell)
			if !ok {
				t.Fatal("CellAddress() not ok")
			}
			if row != tt.wantRow || col != tt.wantCol {
				t.Errorf("CellAddress() = (%d, %d), want (%d, %d)", row, col, tt.wantRow, tt.wantCol)
			}
		})
	}

	if _, _, ok := CellAddress(textCell("loose")); ok {
		t.Error("CellAddress() ok for a cell outside any table")
	}
}

func TestCellAddressSpecialColumn(t *testing.T) {
	mark := textCell("/")
	content := textCell("a")
	NewTable(
		NewTableRow(mark, content),
		NewTableRow(textCell(""), textCell("b")),
	)

	if _, _, ok := CellAddress(mark); ok {
		t.Error("CellAddress() ok for a special-column cell")
	}
	_, col, ok := CellAddress(content)
	if !ok || col != 0 {
		t.Errorf("CellAddress(content) = (col %d, ok %v), want (0, true)", col, ok)
	}
}

func TestCellAt(t *testing.T) {
	row := NewTableRow(textCell("/"), textCell("a"), textCell("b"))
	table := NewTable(
		row,
		NewTableRow(textCell(""), textCell("c"), textCell("d")),
	)

	if got := CellAt(table, row, 0); got == nil || PlainText(got) != "a" {
		t.Errorf("CellAt(0) = %v, want cell %q", got, "a")
	}
	if got := CellAt(table, row, 1); got == nil || PlainText(got) != "b" {
		t.Errorf("CellAt(1) = %v, want cell %q", got, "b")
	}
	if got := CellAt(table, row, 2); got != nil {
		t.Errorf("CellAt(2) = %v, want nil", got)
	}
	if got := CellAt(table, NewRuleRow(), 0); got != nil {
		t.Errorf("CellAt(rule row) = %v, want nil", got)
	}
}

func TestColumnCookie(t *testing.T) {
	table := NewTable(
		NewTableRow(textCell("<10>"), textCell("b")),
		NewTableRow(textCell("long content"), textCell("x")),
	)

	w, ok := ColumnCookie(table, 0)
	if !ok || w != 10 {
		t.Errorf("ColumnCookie(0) = (%d, %v), want (10, true)", w, ok)
	}
	if _, ok := ColumnCookie(table, 1); ok {
		t.Error("ColumnCookie(1) ok, want no cookie")
	}
}

func TestCookieWidth(t *testing.T) {
	tests := []struct {
		content string
		want    int
		wantOK  bool
	}{
		{"<10>", 10, true},
		{" <7> ", 7, true},
		{"<x>", 0, false},
		{"a <10>", 0, false},
		{"10", 0, false},
	}
	for _, tt := range tests {
		w, ok := CookieWidth(textCell(tt.content))
		if w != tt.want || ok != tt.wantOK {
			t.Errorf("CookieWidth(%q) = (%d, %v), want (%d, %v)", tt.content, w, ok, tt.want, tt.wantOK)
		}
	}
}
