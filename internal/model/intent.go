package model

const AnyField string = "any"

// YearRange is inclusive on both ends.
type YearRange struct {
	Start int
	End   int
}

func (r YearRange) Contains(year int) bool {
	return year >= r.Start && year <= r.End
}

// Intent is the structured representation of a free-text request.
// Produced by the intent parser, consumed only by the resolution engine.
// Not persisted.
type Intent struct {
	Genres    []string
	YearRange *YearRange
	Mood      string
}

func (i Intent) IsEmpty() bool {
	return len(i.Genres) == 0 && i.YearRange == nil && i.Mood == ""
}

// HasSelection reports whether the intent names a mood or genre, as
// opposed to carrying only a year constraint.
func (i Intent) HasSelection() bool {
	return len(i.Genres) > 0 || i.Mood != ""
}
