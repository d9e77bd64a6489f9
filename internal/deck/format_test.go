package deck

import "testing"

func TestFormatRow_RoundTripsThroughParse(t *testing.T) {
	records := []Record{
		{Category: "team", Text: "What energized you today?", Depth: DepthDeep},
		{Category: "fun", Text: "with, a comma", Depth: DepthLight},
		{Category: "fun", Text: `she said "hi"`, Depth: DepthDeep},
	}

	for _, want := range records {
		line := FormatRow(want)
		got := Parse(line)
		if len(got) != 1 {
			t.Fatalf("Parse(FormatRow(%+v)) yielded %d records", want, len(got))
		}
		if got[0] != want {
			t.Errorf("round trip: got %+v, want %+v", got[0], want)
		}
	}
}
