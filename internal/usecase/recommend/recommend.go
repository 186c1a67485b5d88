package usecase_recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cinemood/core/internal/model"
	"github.com/cinemood/core/internal/service/intent"
)

var (
	ErrNoRecommendations = errors.New("no recommendations available")
	ErrEmptyCriteria     = errors.New("no recommendation criteria provided")
)

const (
	similarCap  = 5
	resultCap   = 10
	fallbackCap = 10
	indexTopN   = 5
)

// Advisory texts. The unavailable/no-match pair distinguishes "no data
// source" from "no matches for your criteria" for the end user.
const (
	msgModelUnavailable = "AI service is currently unavailable. Here are some popular movies you might enjoy."
	msgNoMatches        = "I couldn't find movies matching your specific criteria. Here are some popular movies you might enjoy."
)

// Catalog is the movie metadata source. Any operation may fail on
// transport; the engine converts failures into empty results for that
// criterion and proceeds down the fallback chain.
type Catalog interface {
	GetMoviesByGenre(ctx context.Context, genreID int, page int) ([]model.MovieRecord, error)
	GetSimilar(ctx context.Context, id int) ([]model.MovieRecord, error)
	GetPopular(ctx context.Context, page int) ([]model.MovieRecord, error)
	GetMoviesByYear(ctx context.Context, year int) ([]model.MovieRecord, error)
}

// Taxonomy resolves labels onto catalog genre ids.
type Taxonomy interface {
	GenreID(label string) (int, error)
	GenreIDsForMood(mood string) ([]int, error)
	MoodTerms(mood string) ([]string, error)
}

// Parser extracts a structured intent from free text.
type Parser interface {
	Parse(ctx context.Context, freeText string) (model.Intent, error)
}

// Index ranks an in-memory corpus by textual similarity.
type Index interface {
	Query(text string, n int) []model.MovieRecord
}

// Criteria is the one-of input of a resolution: reference movie, mood,
// genre, year, free text, or nothing at all (meaning "popular").
type Criteria struct {
	MovieID  int
	Mood     string
	Genre    string
	Year     int
	FreeText string
}

func (c Criteria) IsEmpty() bool {
	return c.MovieID == 0 && c.Mood == "" && c.Genre == "" && c.Year == 0 && c.FreeText == ""
}

func (c Criteria) signals() int {
	n := 0
	if c.Mood != "" {
		n++
	}
	if c.Genre != "" {
		n++
	}
	if c.Year != 0 {
		n++
	}
	return n
}

// Usecase is the resolution engine: it normalizes whatever criteria are
// available into an intent, maps labels through the taxonomy, retrieves and
// ranks candidates, and degrades through the fallback chain down to
// popularity when any step yields nothing.
type Usecase struct {
	catalog  Catalog
	taxonomy Taxonomy
	parser   Parser
	index    Index
	useIndex bool

	logger *slog.Logger
}

type Option func(*Usecase)

// WithContentIndex enables the content-similarity strategy for mood
// resolution. The catalog union remains the fallback when the index has
// nothing for a mood.
func WithContentIndex(index Index) Option {
	return func(u *Usecase) {
		u.index = index
		u.useIndex = index != nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(catalog Catalog, taxonomy Taxonomy, parser Parser, opts ...Option) *Usecase {
	u := &Usecase{
		catalog:  catalog,
		taxonomy: taxonomy,
		parser:   parser,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Resolve runs the priority chain: reference movie, then free text, then
// mood over genre over year, then the popularity fallback. The first
// satisfied criterion wins.
func (u *Usecase) Resolve(ctx context.Context, criteria Criteria) (model.Recommendation, error) {
	if criteria.IsEmpty() {
		return u.popular(ctx, "")
	}

	if criteria.MovieID != 0 {
		return u.bySimilarity(ctx, criteria.MovieID)
	}

	in, parserDown := u.intentFor(ctx, criteria)
	if parserDown {
		return u.popular(ctx, msgModelUnavailable)
	}

	movies := u.resolveIntent(ctx, in, criteria.Year)

	// An intent without a mood or genre still resolves: the popularity
	// list seeds the result so a year range has something to filter.
	if len(movies) == 0 && !in.HasSelection() && criteria.Year == 0 {
		movies = u.popularSeed(ctx)
	}

	if in.YearRange != nil {
		movies = filterByYearRange(movies, *in.YearRange)
	}
	movies = capMovies(movies, resultCap)

	if len(movies) == 0 {
		return u.popular(ctx, msgNoMatches)
	}

	advisory := ""
	if criteria.FreeText != "" {
		advisory = summaryAdvisory(criteria.FreeText, in)
	} else if criteria.signals() > 1 {
		advisory = summaryAdvisory("", in)
	}

	return model.Recommendation{Advisory: advisory, Movies: movies}, nil
}

// ByMood, ByGenre, Similar and Popular are degenerate cases of Resolve,
// exposed for the pass-through endpoints.

func (u *Usecase) ByMood(ctx context.Context, mood string) (model.Recommendation, error) {
	return u.Resolve(ctx, Criteria{Mood: mood})
}

func (u *Usecase) ByGenre(ctx context.Context, genre string) (model.Recommendation, error) {
	return u.Resolve(ctx, Criteria{Genre: genre})
}

func (u *Usecase) Similar(ctx context.Context, movieID int) (model.Recommendation, error) {
	return u.Resolve(ctx, Criteria{MovieID: movieID})
}

func (u *Usecase) Popular(ctx context.Context) (model.Recommendation, error) {
	return u.Resolve(ctx, Criteria{})
}

func (u *Usecase) bySimilarity(ctx context.Context, movieID int) (model.Recommendation, error) {
	movies, err := u.catalog.GetSimilar(ctx, movieID)
	if err != nil {
		u.logger.Warn("similarity lookup failed",
			slog.Int("movie_id", movieID),
			slog.String("error", err.Error()),
		)
		movies = nil
	}
	if len(movies) == 0 {
		return u.popular(ctx, msgNoMatches)
	}
	// Catalog similarity order is preserved as-is.
	if len(movies) > similarCap {
		movies = movies[:similarCap]
	}
	return model.Recommendation{Movies: model.DeduplicateByID(movies)}, nil
}

// intentFor produces the intent to resolve: parsed from free text when
// present, otherwise assembled from the explicit criteria. parserDown is
// true when free text was given but the generative model could not serve.
func (u *Usecase) intentFor(ctx context.Context, criteria Criteria) (model.Intent, bool) {
	if criteria.FreeText == "" {
		var in model.Intent
		if criteria.Mood != "" {
			in.Mood = strings.ToLower(criteria.Mood)
		}
		if criteria.Genre != "" {
			in.Genres = []string{strings.ToLower(criteria.Genre)}
		}
		return in, false
	}

	in, err := u.parser.Parse(ctx, criteria.FreeText)
	if err != nil {
		if !errors.Is(err, intent.ErrUnavailable) {
			u.logger.Warn("intent parsing failed", slog.String("error", err.Error()))
		}
		return model.Intent{}, true
	}
	return in, false
}

// resolveIntent applies the mood-over-genre-over-year priority. Mood wins
// over explicit genres when both are present; this mirrors the documented
// policy, not a ranking judgment.
func (u *Usecase) resolveIntent(ctx context.Context, in model.Intent, bareYear int) []model.MovieRecord {
	if in.Mood != "" && in.Mood != model.AnyField {
		if movies := u.byMoodCriterion(ctx, in.Mood); len(movies) > 0 {
			return movies
		}
		return nil
	}

	if len(in.Genres) > 0 {
		return u.byGenreLabels(ctx, in.Genres)
	}

	if bareYear != 0 {
		movies, err := u.catalog.GetMoviesByYear(ctx, bareYear)
		if err != nil {
			u.logger.Warn("year lookup failed",
				slog.Int("year", bareYear),
				slog.String("error", err.Error()),
			)
			return nil
		}
		return capMovies(model.DeduplicateByID(movies), resultCap)
	}

	return nil
}

func (u *Usecase) byMoodCriterion(ctx context.Context, mood string) []model.MovieRecord {
	if u.useIndex {
		if terms, err := u.taxonomy.MoodTerms(mood); err == nil {
			if movies := u.index.Query(strings.Join(terms, " "), indexTopN); len(movies) > 0 {
				// Index order is its own similarity ranking, kept as-is.
				return model.DeduplicateByID(movies)
			}
		}
	}

	ids, err := u.taxonomy.GenreIDsForMood(mood)
	if err != nil {
		return nil
	}

	var union []model.MovieRecord
	for _, id := range ids {
		movies, fetchErr := u.catalog.GetMoviesByGenre(ctx, id, 1)
		if fetchErr != nil {
			u.logger.Warn("genre fetch failed",
				slog.Int("genre_id", id),
				slog.String("error", fetchErr.Error()),
			)
			continue
		}
		union = append(union, movies...)
	}

	return rankUnion(union)
}

func (u *Usecase) byGenreLabels(ctx context.Context, labels []string) []model.MovieRecord {
	var ids []int
	for _, label := range labels {
		id, err := u.taxonomy.GenreID(label)
		if err != nil {
			// Unknown label is an absent criterion, silently skipped.
			continue
		}
		ids = append(ids, id)
	}

	var union []model.MovieRecord
	for _, id := range ids {
		movies, err := u.catalog.GetMoviesByGenre(ctx, id, 1)
		if err != nil {
			u.logger.Warn("genre fetch failed",
				slog.Int("genre_id", id),
				slog.String("error", err.Error()),
			)
			continue
		}
		union = append(union, movies...)
	}

	if len(ids) == 1 {
		// Single-genre results keep the catalog's own ordering.
		return capMovies(model.DeduplicateByID(union), resultCap)
	}
	return rankUnion(union)
}

// popularSeed is the uncapped candidate pool for selection-less intents;
// the caller filters and caps it.
func (u *Usecase) popularSeed(ctx context.Context) []model.MovieRecord {
	movies, err := u.catalog.GetPopular(ctx, 1)
	if err != nil {
		u.logger.Warn("popularity seed failed", slog.String("error", err.Error()))
		return nil
	}
	return model.DeduplicateByID(movies)
}

func (u *Usecase) popular(ctx context.Context, advisory string) (model.Recommendation, error) {
	movies, err := u.catalog.GetPopular(ctx, 1)
	if err != nil {
		u.logger.Error("popularity fallback failed", slog.String("error", err.Error()))
		movies = nil
	}
	if len(movies) == 0 {
		return model.Recommendation{}, fmt.Errorf("%w: popularity fallback is empty", ErrNoRecommendations)
	}
	return model.Recommendation{
		Advisory: advisory,
		Movies:   capMovies(model.DeduplicateByID(movies), fallbackCap),
	}, nil
}

// rankUnion deduplicates a multi-source union and orders it by rating,
// descending, stable, capped.
func rankUnion(movies []model.MovieRecord) []model.MovieRecord {
	movies = model.DeduplicateByID(movies)
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].VoteAverage > movies[j].VoteAverage
	})
	return capMovies(movies, resultCap)
}

// filterByYearRange keeps records released within the range, inclusive.
// Records without a parseable release date are dropped.
func filterByYearRange(movies []model.MovieRecord, r model.YearRange) []model.MovieRecord {
	out := make([]model.MovieRecord, 0, len(movies))
	for _, m := range movies {
		year, ok := m.ReleaseYear()
		if !ok {
			continue
		}
		if r.Contains(year) {
			out = append(out, m)
		}
	}
	return out
}

func capMovies(movies []model.MovieRecord, n int) []model.MovieRecord {
	if len(movies) > n {
		return movies[:n]
	}
	return movies
}

// summaryAdvisory explains which genre/year/mood combination produced a
// non-fallback result.
func summaryAdvisory(freeText string, in model.Intent) string {
	var parts []string
	if len(in.Genres) > 0 {
		titled := make([]string, len(in.Genres))
		for i, g := range in.Genres {
			titled[i] = titleCase(g)
		}
		parts = append(parts, strings.Join(titled, ", ")+" movies")
	}
	if in.YearRange != nil {
		if in.YearRange.Start == in.YearRange.End {
			parts = append(parts, fmt.Sprintf("from %d", in.YearRange.Start))
		} else {
			parts = append(parts, fmt.Sprintf("from %d-%d", in.YearRange.Start, in.YearRange.End))
		}
	}
	if in.Mood != "" && in.Mood != model.AnyField {
		parts = append(parts, fmt.Sprintf("with a %s mood", in.Mood))
	}
	if len(parts) == 0 {
		parts = append(parts, "movies")
	}

	if freeText != "" {
		return fmt.Sprintf("Based on your request for '%s', I've selected %s that might interest you.", freeText, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("I've selected %s that might interest you.", strings.Join(parts, ", "))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
