package deck

import "strings"

// FormatRow renders a Record as one sheet row in the same dialect Parse
// reads: comma-separated, fields quoted when they contain a comma or quote.
func FormatRow(r Record) string {
	return quoteField(r.Category) + "," + quoteField(r.Text) + "," + r.Depth.String()
}

func quoteField(s string) string {
	if !strings.ContainsAny(s, ",\"") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
