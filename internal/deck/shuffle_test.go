package deck

import (
	"fmt"
	"math/rand"
	"testing"
)

func evenRecords(categories, perCategory int) []Record {
	var records []Record
	for c := 0; c < categories; c++ {
		for i := 0; i < perCategory; i++ {
			records = append(records, Record{
				Category: fmt.Sprintf("cat-%d", c),
				Text:     fmt.Sprintf("q-%d-%d", c, i),
			})
		}
	}
	return records
}

func TestShuffle_IsPermutation(t *testing.T) {
	records := evenRecords(4, 7)
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		out := Shuffle(records, rng)

		if len(out) != len(records) {
			t.Fatalf("len(out) = %d, want %d", len(out), len(records))
		}

		counts := make(map[Record]int)
		for _, r := range records {
			counts[r]++
		}
		for _, r := range out {
			counts[r]--
		}
		for r, n := range counts {
			if n != 0 {
				t.Fatalf("record %+v count off by %d", r, n)
			}
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	records := evenRecords(3, 3)
	snapshot := append([]Record(nil), records...)

	Shuffle(records, rand.New(rand.NewSource(1)))

	for i := range snapshot {
		if records[i] != snapshot[i] {
			t.Fatalf("input mutated at %d: %+v != %+v", i, records[i], snapshot[i])
		}
	}
}

// With every category holding the same number of records, each sweep emits
// exactly one record per category, so the same category can appear at most
// twice in a row (end of one sweep, start of the next).
func TestShuffle_InterleavesCategories(t *testing.T) {
	records := evenRecords(5, 10)
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 100; run++ {
		out := Shuffle(records, rng)

		maxRun, cur := 1, 1
		for i := 1; i < len(out); i++ {
			if out[i].Category == out[i-1].Category {
				cur++
			} else {
				cur = 1
			}
			if cur > maxRun {
				maxRun = cur
			}
		}

		if maxRun > 2 {
			t.Fatalf("run %d: max same-category run = %d, want <= 2", run, maxRun)
		}
	}
}

func TestShuffle_SeededIsDeterministic(t *testing.T) {
	records := evenRecords(3, 4)

	a := Shuffle(records, rand.New(rand.NewSource(99)))
	b := Shuffle(records, rand.New(rand.NewSource(99)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %+v != %+v", i, a[i], b[i])
		}
	}
}

func TestShuffle_TinyInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if out := Shuffle(nil, rng); len(out) != 0 {
		t.Errorf("Shuffle(nil) = %v, want empty", out)
	}

	one := []Record{{Category: "a", Text: "only"}}
	out := Shuffle(one, rng)
	if len(out) != 1 || out[0] != one[0] {
		t.Errorf("Shuffle(single) = %v, want %v", out, one)
	}
}
