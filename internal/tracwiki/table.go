package tracwiki

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/salmonumbrella/tracwiki-cli/internal/doctree"
)

// Table tokens. Adjacent cells share borders: a row reads
// "|| a   || bb ||", where the first cell opens with the strong border and
// every later cell contributes only the space separator plus its closer.
const (
	cellOpen      = "|| " // left border of a column-group start
	cellSeparator = " "   // left border of every other cell
	cellClose     = " ||" // right border of every cell
	ruleBorder    = "||"
	ruleChar      = "-"

	// Dash runs and dummy header cells never shrink below this, so rules
	// stay visible next to narrow columns.
	minRuleWidth = 3
)

// widthKey addresses one column of one table in the render-scoped cache.
// Keying by table identity keeps simultaneous tables in one document from
// poisoning each other's widths.
type widthKey struct {
	table  *doctree.Table
	column int
}

// columnWidth returns the rendered width of a table column.
//
// An explicit directive wins without measurement: first the transcoder's
// column width options, then a "<N>" cookie cell in the column. Otherwise the
// maximum display width over the column's cells is measured once, cached, and
// reused; columns are populated lazily, one at a time, on first access.
func (s *renderState) columnWidth(table *doctree.Table, column int) int {
	if w, ok := s.t.columnWidths[column]; ok {
		return w
	}
	if w, ok := doctree.ColumnCookie(table, column); ok {
		return w
	}

	key := widthKey{table: table, column: column}
	if w, ok := s.widths[key]; ok {
		return w
	}

	max := 0
	for _, row := range table.Rows() {
		cell := doctree.CellAt(table, row, column)
		if cell == nil {
			continue
		}
		if w := runewidth.StringWidth(s.cellContent(cell)); w > max {
			max = w
		}
	}
	s.widths[key] = max
	return max
}

// cellContent renders a cell's subtree the same way the cell renderer emits
// it, so measured widths always match emitted content. Cookie cells are
// directives, not content, and come back empty.
func (s *renderState) cellContent(cell *doctree.TableCell) string {
	if _, ok := doctree.CookieWidth(cell); ok {
		return ""
	}
	return strings.TrimSpace(s.renderInline(cell))
}

// tableCell renders one cell: left border, content, right-padding to the
// column's width, right border. Cells in a special column render to nothing.
func (s *renderState) tableCell(cell *doctree.TableCell) string {
	table := doctree.ParentTable(cell)
	if table == nil {
		return s.cellContent(cell)
	}
	_, column, ok := doctree.CellAddress(cell)
	if !ok {
		return ""
	}

	left := cellSeparator
	if startsColumnGroup(column) {
		left = cellOpen
	}
	content := s.cellContent(cell)
	pad := s.columnWidth(table, column) - runewidth.StringWidth(content)
	if pad < 0 {
		pad = 0
	}
	return left + content + strings.Repeat(" ", pad) + cellClose
}

// startsColumnGroup reports whether a content column opens a column group.
// The front end carries no group markers, so only the first column qualifies.
func startsColumnGroup(column int) bool {
	return column == 0
}

// tableRow renders one row by concatenating its rendered cells, newline
// terminated.
//
// A rule row at sibling index 1 becomes a horizontal line sized to the
// table's column widths. The dialect recognizes a separator only in that
// position; rule rows anywhere else render as ordinary (empty) rows and are
// swallowed by the table renderer's newline collapsing.
func (s *renderState) tableRow(row *doctree.TableRow) string {
	table := doctree.ParentTable(row)
	if table == nil {
		return ""
	}
	if row.IsRule() {
		if doctree.SiblingIndex(row) == 1 {
			return s.hline(table) + "\n"
		}
		return "\n"
	}

	var b strings.Builder
	for _, cell := range row.Cells() {
		b.WriteString(s.tableCell(cell))
	}
	b.WriteString("\n")
	return b.String()
}

// hline builds a horizontal rule line: per column, a run of dashes at least
// minRuleWidth long, joined and wrapped by the rule border.
func (s *renderState) hline(table *doctree.Table) string {
	_, columns := doctree.Dimensions(table)
	runs := make([]string, columns)
	for col := 0; col < columns; col++ {
		width := s.columnWidth(table, col)
		if width < minRuleWidth {
			width = minRuleWidth
		}
		runs[col] = strings.Repeat(ruleChar, width)
	}
	return ruleBorder + strings.Join(runs, ruleBorder) + ruleBorder
}

// table assembles the whole table. When the table has at most one content row
// it lacks a header by the dialect's first-row-is-header convention, so a
// dummy header (blank padded cells plus a rule) is prepended. A table with no
// rows has no columns to size a header against and renders empty instead.
// Double newlines from blank row artifacts are collapsed at the end.
func (s *renderState) table(table *doctree.Table) string {
	rows, columns := doctree.Dimensions(table)

	var b strings.Builder
	if rows <= 1 && columns > 0 {
		b.WriteString(s.dummyHeader(table, columns))
	}
	for _, row := range table.Rows() {
		b.WriteString(s.tableRow(row))
	}
	return strings.ReplaceAll(b.String(), "\n\n", "\n")
}

// dummyHeader synthesizes the two-line header block for header-less tables:
// a row of blank width-padded cells, then a rule line.
func (s *renderState) dummyHeader(table *doctree.Table, columns int) string {
	blanks := make([]string, columns)
	for col := 0; col < columns; col++ {
		width := s.columnWidth(table, col)
		if width < minRuleWidth {
			width = minRuleWidth
		}
		blanks[col] = strings.Repeat(" ", width)
	}
	blankRow := cellOpen + strings.Join(blanks, cellClose+cellSeparator) + cellClose
	return blankRow + "\n" + s.hline(table) + "\n"
}
