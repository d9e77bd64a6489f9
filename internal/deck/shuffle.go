package deck

import "math/rand"

// Shuffle returns a randomized, category-balanced reordering of records.
//
// Records are grouped by category and each group is shuffled independently.
// The output is then built in sweeps: every sweep visits the categories in a
// freshly shuffled order and takes at most one not-yet-emitted record from
// each, skipping exhausted categories. The result interleaves categories
// round-robin style so no category's questions cluster together.
//
// The caller supplies the randomness so tests can seed it. The input slice
// is never mutated; the output is always a permutation of the input.
func Shuffle(records []Record, rng *rand.Rand) []Record {
	if len(records) < 2 {
		return append([]Record(nil), records...)
	}

	order := Categories(records)
	groups := make(map[string][]Record, len(order))
	for _, r := range records {
		groups[r.Category] = append(groups[r.Category], r)
	}

	for _, cat := range order {
		g := groups[cat]
		rng.Shuffle(len(g), func(i, j int) {
			g[i], g[j] = g[j], g[i]
		})
	}

	out := make([]Record, 0, len(records))
	taken := make(map[string]int, len(order))

	for len(out) < len(records) {
		sweep := append([]string(nil), order...)
		rng.Shuffle(len(sweep), func(i, j int) {
			sweep[i], sweep[j] = sweep[j], sweep[i]
		})

		for _, cat := range sweep {
			if taken[cat] < len(groups[cat]) {
				out = append(out, groups[cat][taken[cat]])
				taken[cat]++
			}
		}
	}

	return out
}
