package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cinemood/core/internal/model"
)

const DefaultLimit = 1000

// Catalog supplies the raw corpus: popularity-ranked pages plus per-movie
// keyword labels.
type Catalog interface {
	GetPopular(ctx context.Context, page int) ([]model.MovieRecord, error)
	GetKeywords(ctx context.Context, id int) ([]string, error)
}

// Snapshots is an optional persistent copy of a fetched corpus.
type Snapshots interface {
	Load(ctx context.Context) ([]model.MovieRecord, time.Time, error)
	Replace(ctx context.Context, movies []model.MovieRecord) error
}

// Loader assembles the content-index corpus. A fresh-enough snapshot is
// served as-is; otherwise the catalog is paged through until the limit and
// the result is snapshotted for the next start. Consumers never know which
// source the corpus came from.
type Loader struct {
	catalog   Catalog
	snapshots Snapshots
	maxAge    time.Duration
	logger    *slog.Logger
}

type Option func(*Loader)

// WithSnapshots enables the persistent snapshot source. maxAge bounds how
// old a snapshot may be before the catalog is refetched.
func WithSnapshots(snapshots Snapshots, maxAge time.Duration) Option {
	return func(l *Loader) {
		l.snapshots = snapshots
		l.maxAge = maxAge
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

func New(catalog Catalog, opts ...Option) *Loader {
	l := &Loader{
		catalog: catalog,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) Load(ctx context.Context, limit int) ([]model.MovieRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if l.snapshots != nil {
		movies, fetchedAt, err := l.snapshots.Load(ctx)
		if err == nil && len(movies) > 0 && time.Since(fetchedAt) <= l.maxAge {
			l.logger.Info("serving corpus from snapshot",
				slog.Int("movies", len(movies)),
				slog.Time("fetched_at", fetchedAt),
			)
			if len(movies) > limit {
				movies = movies[:limit]
			}
			return movies, nil
		}
	}

	movies, err := l.fetch(ctx, limit)
	if err != nil {
		return nil, err
	}

	if l.snapshots != nil && len(movies) > 0 {
		if err := l.snapshots.Replace(ctx, movies); err != nil {
			l.logger.Warn("failed to persist corpus snapshot", slog.String("error", err.Error()))
		}
	}
	return movies, nil
}

func (l *Loader) fetch(ctx context.Context, limit int) ([]model.MovieRecord, error) {
	var corpus []model.MovieRecord
	seen := make(map[int]struct{}, limit)

	for page := 1; len(corpus) < limit; page++ {
		movies, err := l.catalog.GetPopular(ctx, page)
		if err != nil {
			if len(corpus) > 0 {
				l.logger.Warn("corpus fetch stopped early",
					slog.Int("page", page),
					slog.String("error", err.Error()),
				)
				break
			}
			return nil, fmt.Errorf("failed to fetch corpus: %w", err)
		}
		if len(movies) == 0 {
			break
		}

		for _, m := range movies {
			if _, ok := seen[m.ID]; ok {
				continue
			}

			keywords, err := l.catalog.GetKeywords(ctx, m.ID)
			if err != nil {
				// A record without keywords would skew the index; skip it.
				l.logger.Warn("skipping movie without keywords",
					slog.Int("movie_id", m.ID),
					slog.String("error", err.Error()),
				)
				continue
			}
			m.Keywords = keywords

			seen[m.ID] = struct{}{}
			corpus = append(corpus, m)
			if len(corpus) == limit {
				break
			}
		}
	}

	return corpus, nil
}
