package infra_postgres_corpus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cinemood/core/internal/model"
	"github.com/jmoiron/sqlx"
)

var ErrEmptySnapshot = errors.New("corpus snapshot is empty")

// Repository persists the fetched movie corpus so index rebuilds after a
// restart do not refetch the whole catalog.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Replace swaps the snapshot for a fresh corpus in one transaction.
func (r *Repository) Replace(ctx context.Context, movies []model.MovieRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM corpus_movies`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	query := `
		INSERT INTO corpus_movies (id, title, overview, genres, keywords, release_date, vote_average, poster_path, fetched_at)
		VALUES (:id, :title, :overview, :genres, :keywords, :release_date, :vote_average, :poster_path, :fetched_at)
	`

	now := time.Now().UTC()
	for _, m := range movies {
		if _, err := tx.NamedExecContext(ctx, query, FromDomain(m, now)); err != nil {
			return fmt.Errorf("failed to store corpus movie: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// Load returns the snapshot and the time it was taken.
func (r *Repository) Load(ctx context.Context) ([]model.MovieRecord, time.Time, error) {
	query := `
		SELECT id, title, overview, genres, keywords, release_date, vote_average, poster_path, fetched_at
		FROM corpus_movies
		ORDER BY position
	`

	var rows []CorpusMovieDB
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query corpus snapshot: %w", err)
	}
	if len(rows) == 0 {
		return nil, time.Time{}, ErrEmptySnapshot
	}

	movies := make([]model.MovieRecord, len(rows))
	fetchedAt := rows[0].FetchedAt
	for i, row := range rows {
		movies[i] = row.ToDomain()
		if row.FetchedAt.Before(fetchedAt) {
			fetchedAt = row.FetchedAt
		}
	}
	return movies, fetchedAt, nil
}
