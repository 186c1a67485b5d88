package model

import "strconv"

// MovieRecord is a catalog movie as fetched from TMDB. Records are never
// mutated after fetch; the engine only filters and reorders copies.
type MovieRecord struct {
	ID          int
	Title       string
	Overview    string
	Genres      []string
	Keywords    []string
	ReleaseDate string
	VoteAverage float64
	PosterPath  string
	Runtime     int
	Cast        []CastMember
}

type CastMember struct {
	Name        string
	Character   string
	ProfilePath string
}

// ReleaseYear parses the leading YYYY of ReleaseDate. ok is false for
// missing or unparseable dates.
func (m MovieRecord) ReleaseYear() (int, bool) {
	if len(m.ReleaseDate) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// DeduplicateByID keeps the first occurrence of every id, preserving order.
func DeduplicateByID(movies []MovieRecord) []MovieRecord {
	seen := make(map[int]struct{}, len(movies))
	out := make([]MovieRecord, 0, len(movies))
	for _, m := range movies {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}
