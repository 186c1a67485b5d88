package model

// Recommendation is a ranked, deduplicated movie list with an optional
// advisory explaining how the list was produced (or why the specific
// criteria could not be satisfied). The advisory is a tagged field, not a
// pseudo-movie smuggled into the list.
type Recommendation struct {
	Advisory string
	Movies   []MovieRecord
}

func (r Recommendation) HasAdvisory() bool {
	return r.Advisory != ""
}
