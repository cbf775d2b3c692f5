package doctree

// Summary returns a JSON-friendly description of a subtree: the node kind,
// its interesting fields, and its children. Used by `trc inspect` and the
// MCP inspect tool.
func Summary(n Node) map[string]any {
	m := map[string]any{"kind": n.Kind().String()}

	switch n := n.(type) {
	case *Headline:
		m["level"] = n.Level
		m["title"] = n.Title
	case *Table:
		rows, cols := Dimensions(n)
		m["rows"] = rows
		m["columns"] = cols
		if HasSpecialColumn(n) {
			m["special_column"] = true
		}
	case *TableRow:
		if n.IsRule() {
			m["rule"] = true
		}
	case *CodeBlock:
		if n.Language != "" {
			m["language"] = n.Language
		}
	case *List:
		m["ordered"] = n.Ordered
	case *Emphasis:
		m["strong"] = n.Strong
	case *Link:
		m["destination"] = n.Destination
	case *Text:
		m["value"] = n.Value
	case *CodeSpan:
		m["value"] = n.Literal
	}

	if children := n.Children(); len(children) > 0 {
		out := make([]map[string]any, len(children))
		for i, c := range children {
			out[i] = Summary(c)
		}
		m["children"] = out
	}
	return m
}
