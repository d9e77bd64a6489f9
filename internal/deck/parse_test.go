package deck

import "testing"

func TestParse_SkipsHeaderRow(t *testing.T) {
	raw := "Category,Question,Depth\nteam,How are you arriving today?,deep\n"
	records := Parse(raw)

	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].Category != "team" {
		t.Errorf("Category = %q, want %q", records[0].Category, "team")
	}
}

func TestParse_HeaderDetectionIsCaseInsensitive(t *testing.T) {
	raw := "KATEGORIE/CATEGORY,the question column\nfun,What made you laugh?\n"
	records := Parse(raw)

	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
}

func TestParse_FirstDataRowIsNotMistakenForHeader(t *testing.T) {
	raw := "team,What energized you this week?,deep\nfun,Coffee or tea?,light\n"
	records := Parse(raw)

	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
}

func TestParse_QuotedFieldKeepsEmbeddedComma(t *testing.T) {
	records := Parse(`cat,"a, b",deep`)

	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].Text != "a, b" {
		t.Errorf("Text = %q, want %q", records[0].Text, "a, b")
	}
}

func TestParse_DoubledQuoteBecomesLiteralQuote(t *testing.T) {
	records := Parse(`cat,"she said ""hi"" to me",deep`)

	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	want := `she said "hi" to me`
	if records[0].Text != want {
		t.Errorf("Text = %q, want %q", records[0].Text, want)
	}
}

func TestParse_DepthHint(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Depth
	}{
		{"light token", `cat,text,light`, DepthLight},
		{"light inside phrase", `cat,text,"light version"`, DepthLight},
		{"uppercase light", `cat,text,LIGHT`, DepthLight},
		{"unrecognized hint", `cat,text,foo`, DepthDeep},
		{"missing hint", `cat,text`, DepthDeep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Parse(tt.raw)
			if len(records) != 1 {
				t.Fatalf("len(records) = %d, want 1", len(records))
			}
			if records[0].Depth != tt.want {
				t.Errorf("Depth = %v, want %v", records[0].Depth, tt.want)
			}
		})
	}
}

func TestParse_DropsMalformedRows(t *testing.T) {
	raw := "team,first question\n\n,missing category\nonly-category,\nsolo\nfun,second question\n"
	records := Parse(raw)

	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Text != "first question" || records[1].Text != "second question" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestParse_TrimsFieldsAndCarriageReturns(t *testing.T) {
	raw := "  team ,  spaced out question \r\nfun,another\r\n"
	records := Parse(raw)

	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Category != "team" {
		t.Errorf("Category = %q, want %q", records[0].Category, "team")
	}
	if records[0].Text != "spaced out question" {
		t.Errorf("Text = %q, want %q", records[0].Text, "spaced out question")
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Errorf("Parse(\"\") = %v, want empty", got)
	}
	if got := Parse("\n\n\n"); len(got) != 0 {
		t.Errorf("Parse(blank lines) = %v, want empty", got)
	}
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	records := []Record{
		{Category: "b", Text: "1"},
		{Category: "a", Text: "2"},
		{Category: "b", Text: "3"},
		{Category: "c", Text: "4"},
	}

	got := Categories(records)
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	idx := CategoryIndex(records)
	for i, cat := range want {
		if idx[cat] != i {
			t.Errorf("CategoryIndex[%q] = %d, want %d", cat, idx[cat], i)
		}
	}
}
