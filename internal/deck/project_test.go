package deck

import "testing"

func projectFixture() ([]Record, *Record) {
	records := []Record{
		{Category: "team", Text: "t1", Depth: DepthDeep},
		{Category: "fun", Text: "f1", Depth: DepthLight},
		{Category: "team", Text: "t2", Depth: DepthLight},
		{Category: "personal", Text: "p1", Depth: DepthDeep},
		{Category: "fun", Text: "f2", Depth: DepthDeep},
	}
	intro := &Record{Category: "intro", Text: "welcome"}
	return records, intro
}

func TestProject_FullSelectionDeepModeIncludesIntroFirst(t *testing.T) {
	records, intro := projectFixture()
	filter := NewFilterState(records)

	slides := Project(records, filter, intro)

	if len(slides) != len(records)+1 {
		t.Fatalf("len(slides) = %d, want %d", len(slides), len(records)+1)
	}
	if slides[0].Kind != SlideIntro {
		t.Fatalf("slides[0].Kind = %v, want intro", slides[0].Kind)
	}
	for i, r := range records {
		if slides[i+1].Record != r {
			t.Errorf("slides[%d] = %+v, want %+v (record order must be preserved)", i+1, slides[i+1].Record, r)
		}
		if slides[i+1].Kind != SlideQuestion {
			t.Errorf("slides[%d].Kind = %v, want question", i+1, slides[i+1].Kind)
		}
	}
}

func TestProject_SubsetSelectionDropsIntro(t *testing.T) {
	records, intro := projectFixture()
	filter := NewFilterState(records)
	delete(filter.Selected, "personal")

	slides := Project(records, filter, intro)

	for _, s := range slides {
		if s.Kind == SlideIntro {
			t.Fatal("intro slide present despite active category filter")
		}
		if s.Record.Category == "personal" {
			t.Fatalf("deselected category leaked into deck: %+v", s.Record)
		}
	}
	// t1, f1, t2, f2 survive, in canonical order.
	if len(slides) != 4 {
		t.Fatalf("len(slides) = %d, want 4", len(slides))
	}
	if slides[0].Record.Text != "t1" || slides[3].Record.Text != "f2" {
		t.Errorf("relative order not preserved: %+v", slides)
	}
}

func TestProject_LightModeExcludesDeepAndIntro(t *testing.T) {
	records, intro := projectFixture()
	filter := NewFilterState(records)
	filter.DeepMode = false

	slides := Project(records, filter, intro)

	if len(slides) != 2 {
		t.Fatalf("len(slides) = %d, want 2", len(slides))
	}
	for _, s := range slides {
		if s.Kind == SlideIntro {
			t.Fatal("intro slide must not appear in light mode")
		}
		if s.Record.Depth != DepthLight {
			t.Fatalf("deep record leaked into light deck: %+v", s.Record)
		}
	}
}

func TestProject_NoIntroDesignated(t *testing.T) {
	records, _ := projectFixture()
	filter := NewFilterState(records)

	slides := Project(records, filter, nil)

	if len(slides) != len(records) {
		t.Fatalf("len(slides) = %d, want %d", len(slides), len(records))
	}
	if slides[0].Kind != SlideQuestion {
		t.Errorf("slides[0].Kind = %v, want question", slides[0].Kind)
	}
}

func TestProject_EmptySelectionYieldsEmptyDeck(t *testing.T) {
	records, intro := projectFixture()
	filter := FilterState{Selected: map[string]bool{}, DeepMode: true}

	if slides := Project(records, filter, intro); len(slides) != 0 {
		t.Errorf("len(slides) = %d, want 0", len(slides))
	}
}

func TestExtractIntro_ReservedCategory(t *testing.T) {
	records := []Record{
		{Category: "Intro", Text: "welcome one"},
		{Category: "team", Text: "t1"},
		{Category: "intro", Text: "welcome two"},
		{Category: "fun", Text: "f1"},
	}

	intro, rest := ExtractIntro(records, IntroReservedCategory, DefaultIntroCategory)

	if intro == nil || intro.Text != "welcome one" {
		t.Fatalf("intro = %+v, want first reserved-category record", intro)
	}
	if len(rest) != 2 {
		t.Fatalf("len(rest) = %d, want 2 (all reserved rows removed)", len(rest))
	}
	for _, r := range rest {
		if r.Category == "Intro" || r.Category == "intro" {
			t.Errorf("reserved category left in pool: %+v", r)
		}
	}
}

func TestExtractIntro_FirstRecord(t *testing.T) {
	records := []Record{
		{Category: "team", Text: "t1"},
		{Category: "fun", Text: "f1"},
	}

	intro, rest := ExtractIntro(records, IntroFirstRecord, "")

	if intro == nil || intro.Text != "t1" {
		t.Fatalf("intro = %+v, want first record", intro)
	}
	if len(rest) != 1 || rest[0].Text != "f1" {
		t.Fatalf("rest = %+v, want remaining records", rest)
	}
}

func TestExtractIntro_NonePolicyAndEmptyInput(t *testing.T) {
	records := []Record{{Category: "team", Text: "t1"}}

	intro, rest := ExtractIntro(records, IntroNone, DefaultIntroCategory)
	if intro != nil {
		t.Errorf("intro = %+v, want nil", intro)
	}
	if len(rest) != 1 {
		t.Errorf("len(rest) = %d, want 1", len(rest))
	}

	intro, rest = ExtractIntro(nil, IntroFirstRecord, "")
	if intro != nil || rest != nil {
		t.Errorf("empty input: intro=%v rest=%v, want nil/nil", intro, rest)
	}
}
