package infra_postgres_corpus

import (
	"time"

	"github.com/cinemood/core/internal/model"
	"github.com/lib/pq"
)

// CorpusMovieDB rows keep insertion order through a serial position column
// so a reloaded snapshot preserves the original corpus order.
type CorpusMovieDB struct {
	ID          int            `db:"id"`
	Title       string         `db:"title"`
	Overview    string         `db:"overview"`
	Genres      pq.StringArray `db:"genres"`
	Keywords    pq.StringArray `db:"keywords"`
	ReleaseDate string         `db:"release_date"`
	VoteAverage float64        `db:"vote_average"`
	PosterPath  string         `db:"poster_path"`
	FetchedAt   time.Time      `db:"fetched_at"`
}

func (m *CorpusMovieDB) ToDomain() model.MovieRecord {
	return model.MovieRecord{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		Genres:      []string(m.Genres),
		Keywords:    []string(m.Keywords),
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
		PosterPath:  m.PosterPath,
	}
}

func FromDomain(m model.MovieRecord, fetchedAt time.Time) CorpusMovieDB {
	return CorpusMovieDB{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		Genres:      pq.StringArray(m.Genres),
		Keywords:    pq.StringArray(m.Keywords),
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
		PosterPath:  m.PosterPath,
		FetchedAt:   fetchedAt,
	}
}
