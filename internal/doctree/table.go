package doctree

import (
	"regexp"
	"strconv"
	"strings"
)

// cookieRe matches an explicit column width directive: a cell whose entire
// content is "<N>".
var cookieRe = regexp.MustCompile(`^<(\d+)>$`)

// specialMarks are the recognized values of special-column cells.
const specialMarks = "/!<>*^_$"

// Dimensions returns the table's content row count and content column count.
// Rule rows do not count as rows; a special first column does not count as a
// column. A table with no content rows has zero columns.
func Dimensions(t *Table) (rows, columns int) {
	for _, r := range t.Rows() {
		if r.IsRule() {
			continue
		}
		if rows == 0 {
			columns = len(r.Cells())
			if HasSpecialColumn(t) {
				columns--
			}
		}
		rows++
	}
	return rows, columns
}

// HasSpecialColumn reports whether the table's first column is a convention
// marker column: every first-column cell is empty or a single mark character,
// and at least one holds a mark. Such a column is excluded from cell
// addressing and width measurement.
func HasSpecialColumn(t *Table) bool {
	marked := false
	seen := false
	for _, r := range t.Rows() {
		if r.IsRule() {
			continue
		}
		cells := r.Cells()
		if len(cells) < 2 {
			return false
		}
		seen = true
		v := strings.TrimSpace(PlainText(cells[0]))
		switch {
		case v == "":
		case len(v) == 1 && strings.ContainsRune(specialMarks, rune(v[0])):
			marked = true
		default:
			return false
		}
	}
	return seen && marked
}

// CellAddress returns the 0-indexed (row, column) of a cell, counting content
// rows only and skipping a special first column. ok is false for cells inside
// the special column itself and for cells outside a table.
func CellAddress(cell *TableCell) (row, column int, ok bool) {
	r, isRow := cell.Parent().(*TableRow)
	if !isRow {
		return 0, 0, false
	}
	t := ParentTable(cell)
	if t == nil {
		return 0, 0, false
	}

	column = -1
	for i, c := range r.Cells() {
		if c == cell {
			column = i
			break
		}
	}
	if column < 0 {
		return 0, 0, false
	}
	if HasSpecialColumn(t) {
		if column == 0 {
			return 0, 0, false
		}
		column--
	}

	for _, sibling := range t.Rows() {
		if sibling == r {
			return row, column, true
		}
		if !sibling.IsRule() {
			row++
		}
	}
	return 0, 0, false
}

// CellAt returns the cell at the given content column of a row, skipping the
// table's special column when it has one. Returns nil when the row is a rule
// row or has no cell at that column.
func CellAt(t *Table, row *TableRow, column int) *TableCell {
	if row.IsRule() {
		return nil
	}
	if HasSpecialColumn(t) {
		column++
	}
	cells := row.Cells()
	if column < 0 || column >= len(cells) {
		return nil
	}
	return cells[column]
}

// ColumnCookie returns the explicit width directive for a column, if any cell
// in that column is a "<N>" cookie. The first cookie found scanning rows
// top-down wins.
func ColumnCookie(t *Table, column int) (int, bool) {
	for _, r := range t.Rows() {
		cell := CellAt(t, r, column)
		if cell == nil {
			continue
		}
		if w, ok := CookieWidth(cell); ok {
			return w, true
		}
	}
	return 0, false
}

// CookieWidth reports whether the cell is a width cookie and, if so, its
// value. Cookie cells are excluded from measurement and render empty.
func CookieWidth(cell *TableCell) (int, bool) {
	m := cookieRe.FindStringSubmatch(strings.TrimSpace(PlainText(cell)))
	if m == nil {
		return 0, false
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return w, true
}
