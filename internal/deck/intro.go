package deck

import "strings"

// IntroPolicy selects how the designated intro record is sourced from a
// fresh data load. Observed sheet variants disagree on this, so it stays
// configurable.
type IntroPolicy int

const (
	// IntroNone disables the intro slide entirely.
	IntroNone IntroPolicy = iota
	// IntroReservedCategory takes the first record of a reserved category
	// and removes that whole category from the question pool.
	IntroReservedCategory
	// IntroFirstRecord takes the first data row as the intro.
	IntroFirstRecord
)

// DefaultIntroCategory is the reserved label used by IntroReservedCategory.
const DefaultIntroCategory = "intro"

// ExtractIntro splits records into a designated intro record and the
// remaining question pool according to policy. The returned pool preserves
// the input order. A nil intro means no intro slide will ever be shown.
func ExtractIntro(records []Record, policy IntroPolicy, reserved string) (*Record, []Record) {
	switch policy {
	case IntroReservedCategory:
		var intro *Record
		rest := make([]Record, 0, len(records))
		for _, r := range records {
			if strings.EqualFold(r.Category, reserved) {
				if intro == nil {
					rec := r
					intro = &rec
				}
				continue
			}
			rest = append(rest, r)
		}
		return intro, rest

	case IntroFirstRecord:
		if len(records) == 0 {
			return nil, nil
		}
		rec := records[0]
		return &rec, append([]Record(nil), records[1:]...)

	default:
		return nil, append([]Record(nil), records...)
	}
}
