package taxonomy

import (
	"errors"
	"strings"
)

var (
	ErrUnknownGenre = errors.New("unknown genre")
	ErrUnknownMood  = errors.New("unknown mood")
)

// Taxonomy maps human-readable genre and mood labels onto TMDB genre ids.
// The tables are fixed at startup and read-only afterwards; lookups are
// case-insensitive. An unknown label is a not-found outcome, callers treat
// it as "no matching criteria" and fall back.
type Taxonomy struct {
	genres    map[string]int
	moods     map[string][]int
	moodTerms map[string][]string
}

func New() *Taxonomy {
	return &Taxonomy{
		genres: map[string]int{
			"action":      28,
			"adventure":   12,
			"animation":   16,
			"comedy":      35,
			"documentary": 99,
			"drama":       18,
			"family":      10751,
			"horror":      27,
			"romance":     10749,
			"sci-fi":      878,
			"thriller":    53,
		},
		moods: map[string][]int{
			"happy":    {35, 10751},
			"sad":      {18, 10749},
			"excited":  {28, 12},
			"romantic": {10749, 35},
			"scared":   {27, 53},
			"inspired": {18, 99},
			"relaxed":  {35, 16},
		},
		moodTerms: map[string][]string{
			"happy":    {"comedy", "feel-good", "uplifting", "funny", "light-hearted"},
			"sad":      {"drama", "emotional", "touching", "heartfelt", "melancholy"},
			"excited":  {"action", "adventure", "thriller", "suspense", "exciting"},
			"romantic": {"romance", "love", "romantic", "passion", "relationship"},
			"scared":   {"horror", "scary", "frightening", "terrifying", "suspense"},
			"inspired": {"drama", "biography", "sports", "documentary", "inspirational"},
			"relaxed":  {"comedy", "animation", "family", "feel-good", "light"},
		},
	}
}

func (t *Taxonomy) GenreID(label string) (int, error) {
	id, ok := t.genres[normalize(label)]
	if !ok {
		return 0, ErrUnknownGenre
	}
	return id, nil
}

// GenreIDsForMood returns the genre ids a mood spans. Order carries no
// priority, it is only used for aggregation.
func (t *Taxonomy) GenreIDsForMood(mood string) ([]int, error) {
	ids, ok := t.moods[normalize(mood)]
	if !ok {
		return nil, ErrUnknownMood
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out, nil
}

// MoodTerms returns the keyword bag used for content-index queries.
func (t *Taxonomy) MoodTerms(mood string) ([]string, error) {
	terms, ok := t.moodTerms[normalize(mood)]
	if !ok {
		return nil, ErrUnknownMood
	}
	out := make([]string, len(terms))
	copy(out, terms)
	return out, nil
}

func (t *Taxonomy) Genres() []string {
	labels := make([]string, 0, len(t.genres))
	for label := range t.genres {
		labels = append(labels, label)
	}
	return labels
}

func (t *Taxonomy) Moods() []string {
	labels := make([]string, 0, len(t.moods))
	for label := range t.moods {
		labels = append(labels, label)
	}
	return labels
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
