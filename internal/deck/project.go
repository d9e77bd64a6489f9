package deck

// SlideKind discriminates the two slide variants.
type SlideKind int

const (
	SlideQuestion SlideKind = iota
	SlideIntro
)

// Slide is one navigable unit wrapping a Record.
type Slide struct {
	Kind   SlideKind
	Record Record
}

// FilterState holds the two independent filter inputs. Selected must stay a
// subset of the categories present in the record set; the navigation
// controller enforces that on mutation.
type FilterState struct {
	Selected map[string]bool
	DeepMode bool
}

// NewFilterState returns the neutral filter for a record set: every category
// selected, deep mode on.
func NewFilterState(records []Record) FilterState {
	f := FilterState{
		Selected: make(map[string]bool),
		DeepMode: true,
	}
	for _, cat := range Categories(records) {
		f.Selected[cat] = true
	}
	return f
}

// Project derives the full slide deck from the canonical record order, the
// filter state and an optional intro record. The deck is rebuilt from
// scratch on every call; it is never patched in place, because membership
// and order depend jointly on three independently-changing inputs.
//
// The intro slide is prepended only when no category filter is active and
// deep mode is enabled.
func Project(records []Record, filter FilterState, intro *Record) []Slide {
	all := Categories(records)

	selected := 0
	for _, cat := range all {
		if filter.Selected[cat] {
			selected++
		}
	}
	filterActive := selected < len(all)

	var slides []Slide
	if intro != nil && !filterActive && filter.DeepMode {
		slides = append(slides, Slide{Kind: SlideIntro, Record: *intro})
	}

	for _, r := range records {
		if !filter.Selected[r.Category] {
			continue
		}
		if !filter.DeepMode && r.Depth != DepthLight {
			continue
		}
		slides = append(slides, Slide{Kind: SlideQuestion, Record: r})
	}

	return slides
}
