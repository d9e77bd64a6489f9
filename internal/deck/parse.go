package deck

import "strings"

// Column labels the header auto-detection matches against. Spreadsheet
// exports sometimes include the header row and sometimes don't, so the
// parser sniffs the first line instead of trusting the export.
var headerLabels = [2]string{"category", "question"}

// Parse turns a raw comma-separated payload into Records.
//
// The scan is deliberately forgiving: blank lines are skipped, a leading
// header row is detected and dropped, quoted fields may contain commas, a
// doubled quote inside a quoted field is a literal quote, and rows with
// fewer than two populated fields are silently discarded. Parse never fails;
// worst case it returns an empty slice.
func Parse(raw string) []Record {
	var records []Record
	first := true

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitFields(line)

		if first {
			first = false
			if isHeader(fields) {
				continue
			}
		}

		if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
			continue
		}

		rec := Record{
			Category: fields[0],
			Text:     fields[1],
			Depth:    DepthDeep,
		}
		if len(fields) > 2 {
			rec.Depth = ParseDepth(fields[2])
		}
		records = append(records, rec)
	}

	return records
}

// splitFields scans one line character by character, tracking whether the
// cursor is inside a quoted field. Fields are trimmed of surrounding
// whitespace.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				// Escaped quote: emit one literal quote, consume both.
				cur.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))

	return fields
}

// isHeader reports whether the first parsed line looks like a column header
// rather than data.
func isHeader(fields []string) bool {
	for i, label := range headerLabels {
		if i < len(fields) && strings.Contains(strings.ToLower(fields[i]), label) {
			return true
		}
	}
	return false
}
