package deck

import "strings"

// Depth classifies how heavy a question is. The source sheet marks lighter
// questions with a "light" hint in its third column; everything else is deep.
type Depth int

const (
	DepthLight Depth = iota
	DepthDeep
)

func (d Depth) String() string {
	if d == DepthLight {
		return "light"
	}
	return "deep"
}

// ParseDepth maps a raw depth-hint field to a Depth. Unrecognized or empty
// hints default to deep.
func ParseDepth(field string) Depth {
	if strings.Contains(strings.ToLower(field), "light") {
		return DepthLight
	}
	return DepthDeep
}

// Record is one parsed question entry. Immutable once parsed.
type Record struct {
	Category string
	Text     string
	Depth    Depth
}

// Categories returns the distinct category names in first-seen order.
func Categories(records []Record) []string {
	seen := make(map[string]bool, len(records))
	var out []string
	for _, r := range records {
		if seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	return out
}

// CategoryIndex assigns each category a stable integer in first-seen order
// over the unfiltered record set. Used to pick a deterministic visual variant
// per category; stable for the lifetime of a data load.
func CategoryIndex(records []Record) map[string]int {
	idx := make(map[string]int)
	for _, cat := range Categories(records) {
		idx[cat] = len(idx)
	}
	return idx
}
