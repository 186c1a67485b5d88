package usecase_recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/cinemood/core/internal/model"
	"github.com/cinemood/core/internal/service/intent"
	"github.com/cinemood/core/internal/service/taxonomy"
	recommend_mocks "github.com/cinemood/core/mocks/recommend"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type UsecaseRecommendUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	catalog  *recommend_mocks.Catalog
	taxonomy *recommend_mocks.Taxonomy
	parser   *recommend_mocks.Parser
	ctx      context.Context
}

func initResources(t provider.T, opts ...Option) *resources {
	catalog := recommend_mocks.NewCatalog(t)
	tax := recommend_mocks.NewTaxonomy(t)
	parser := recommend_mocks.NewParser(t)
	usecase := New(catalog, tax, parser, opts...)

	return &resources{
		usecase:  usecase,
		catalog:  catalog,
		taxonomy: tax,
		parser:   parser,
		ctx:      context.Background(),
	}
}

type MovieBuilder struct {
	m model.MovieRecord
}

func NewMovieBuilder(id int) *MovieBuilder {
	return &MovieBuilder{
		m: model.MovieRecord{
			ID:          id,
			Title:       "Test Movie",
			Genres:      []string{"Drama"},
			ReleaseDate: "2020-01-01",
			VoteAverage: 7.0,
			Overview:    "Test overview",
		},
	}
}

func (b *MovieBuilder) WithVote(vote float64) *MovieBuilder {
	b.m.VoteAverage = vote
	return b
}

func (b *MovieBuilder) WithReleaseDate(date string) *MovieBuilder {
	b.m.ReleaseDate = date
	return b
}

func (b *MovieBuilder) Build() model.MovieRecord {
	return b.m
}

func movieIDs(movies []model.MovieRecord) []int {
	ids := make([]int, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func (suite *UsecaseRecommendUnitSuite) TestResolveByMood(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		criteria    Criteria
		expectedIDs []int
		advisory    string
	}{
		{
			name: "Should union mood genres sorted by rating without advisory",
			setupMocks: func(r *resources) {
				r.taxonomy.On("GenreIDsForMood", "scared").Return([]int{27, 53}, nil).Once()
				r.catalog.On("GetMoviesByGenre", r.ctx, 27, 1).Return([]model.MovieRecord{
					NewMovieBuilder(1).WithVote(6.1).Build(),
					NewMovieBuilder(2).WithVote(8.4).Build(),
					NewMovieBuilder(3).WithVote(7.2).Build(),
				}, nil).Once()
				r.catalog.On("GetMoviesByGenre", r.ctx, 53, 1).Return([]model.MovieRecord{
					NewMovieBuilder(4).WithVote(9.0).Build(),
					NewMovieBuilder(5).WithVote(5.5).Build(),
				}, nil).Once()
			},
			criteria:    Criteria{Mood: "scared"},
			expectedIDs: []int{4, 2, 3, 1, 5},
		},
		{
			name: "Should deduplicate overlapping ids across mood genres",
			setupMocks: func(r *resources) {
				r.taxonomy.On("GenreIDsForMood", "scared").Return([]int{27, 53}, nil).Once()
				r.catalog.On("GetMoviesByGenre", r.ctx, 27, 1).Return([]model.MovieRecord{
					NewMovieBuilder(1).WithVote(8.0).Build(),
					NewMovieBuilder(2).WithVote(7.0).Build(),
				}, nil).Once()
				r.catalog.On("GetMoviesByGenre", r.ctx, 53, 1).Return([]model.MovieRecord{
					NewMovieBuilder(2).WithVote(7.0).Build(),
					NewMovieBuilder(3).WithVote(6.0).Build(),
				}, nil).Once()
			},
			criteria:    Criteria{Mood: "scared"},
			expectedIDs: []int{1, 2, 3},
		},
		{
			name: "Should skip failed genre fetch and keep the rest",
			setupMocks: func(r *resources) {
				r.taxonomy.On("GenreIDsForMood", "scared").Return([]int{27, 53}, nil).Once()
				r.catalog.On("GetMoviesByGenre", r.ctx, 27, 1).Return(nil, errors.New("tmdb down")).Once()
				r.catalog.On("GetMoviesByGenre", r.ctx, 53, 1).Return([]model.MovieRecord{
					NewMovieBuilder(3).WithVote(6.0).Build(),
				}, nil).Once()
			},
			criteria:    Criteria{Mood: "scared"},
			expectedIDs: []int{3},
		},
		{
			name: "Should fall back to popular with advisory for unknown mood",
			setupMocks: func(r *resources) {
				r.taxonomy.On("GenreIDsForMood", "grumpy").Return(nil, taxonomy.ErrUnknownMood).Once()
				r.catalog.On("GetPopular", r.ctx, 1).Return([]model.MovieRecord{
					NewMovieBuilder(9).Build(),
				}, nil).Once()
			},
			criteria:    Criteria{Mood: "grumpy"},
			expectedIDs: []int{9},
			advisory:    msgNoMatches,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.Resolve(r.ctx, tc.criteria)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedIDs, movieIDs(got.Movies))
			assert.Equal(t, tc.advisory, got.Advisory)
		})
	}
}

func (suite *UsecaseRecommendUnitSuite) TestResolveByGenre(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		criteria    Criteria
		expectedIDs []int
		advisory    string
	}{
		{
			name: "Should preserve catalog order for a single genre",
			setupMocks: func(r *resources) {
				r.taxonomy.On("GenreID", "horror").Return(27, nil).Once()
				r.catalog.On("GetMoviesByGenre", r.ctx, 27, 1).Return([]model.MovieRecord{
					NewMovieBuilder(1).WithVote(5.0).Build(),
					NewMovieBuilder(2).WithVote(9.0).Build(),
				}, nil).Once()
			},
			criteria:    Criteria{Genre: "horror"},
			expectedIDs: []int{1, 2},
		},
		{
			name: "Should fall back to popular with advisory for unknown genre",
			setupMocks: func(r *resources) {
				r.taxonomy.On("GenreID", "not-a-real-genre").Return(0, taxonomy.ErrUnknownGenre).Once()
				r.catalog.On("GetPopular", r.ctx, 1).Return([]model.MovieRecord{
					NewMovieBuilder(7).Build(),
					NewMovieBuilder(8).Build(),
				}, nil).Once()
			},
			criteria:    Criteria{Genre: "not-a-real-genre"},
			expectedIDs: []int{7, 8},
			advisory:    msgNoMatches,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.Resolve(r.ctx, tc.criteria)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedIDs, movieIDs(got.Movies))
			assert.Equal(t, tc.advisory, got.Advisory)
		})
	}
}

func (suite *UsecaseRecommendUnitSuite) TestResolveBySimilarity(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		criteria    Criteria
		expectedIDs []int
		advisory    string
	}{
		{
			name: "Should return similar movies in catalog order capped at five",
			setupMocks: func(r *resources) {
				r.catalog.On("GetSimilar", r.ctx, 603).Return([]model.MovieRecord{
					NewMovieBuilder(10).WithVote(3.0).Build(),
					NewMovieBuilder(11).WithVote(9.0).Build(),
					NewMovieBuilder(12).WithVote(6.0).Build(),
					NewMovieBuilder(13).WithVote(8.0).Build(),
					NewMovieBuilder(14).WithVote(7.0).Build(),
					NewMovieBuilder(15).WithVote(5.0).Build(),
				}, nil).Once()
			},
			criteria:    Criteria{MovieID: 603},
			expectedIDs: []int{10, 11, 12, 13, 14},
		},
		{
			name: "Should not contain the reference movie itself",
			setupMocks: func(r *resources) {
				r.catalog.On("GetSimilar", r.ctx, 603).Return([]model.MovieRecord{
					NewMovieBuilder(10).Build(),
					NewMovieBuilder(11).Build(),
				}, nil).Once()
			},
			criteria:    Criteria{MovieID: 603},
			expectedIDs: []int{10, 11},
		},
		{
			name: "Should fall back to popular with advisory on catalog error",
			setupMocks: func(r *resources) {
				r.catalog.On("GetSimilar", r.ctx, 603).Return(nil, errors.New("tmdb down")).Once()
				r.catalog.On("GetPopular", r.ctx, 1).Return([]model.MovieRecord{
					NewMovieBuilder(1).Build(),
				}, nil).Once()
			},
			criteria:    Criteria{MovieID: 603},
			expectedIDs: []int{1},
			advisory:    msgNoMatches,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.Resolve(r.ctx, tc.criteria)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedIDs, movieIDs(got.Movies))
			assert.Equal(t, tc.advisory, got.Advisory)
			assert.NotContains(t, movieIDs(got.Movies), tc.criteria.MovieID)
		})
	}
}

func (suite *UsecaseRecommendUnitSuite) TestResolveFreeText(t provider.T) {
	t.Parallel()

	t.Run("Should parse intent and filter by year range with advisory", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.parser.On("Parse", r.ctx, "I want a 90s comedy").Return(model.Intent{
			Genres:    []string{"comedy"},
			YearRange: &model.YearRange{Start: 1990, End: 1999},
		}, nil).Once()
		r.taxonomy.On("GenreID", "comedy").Return(35, nil).Once()
		r.catalog.On("GetMoviesByGenre", r.ctx, 35, 1).Return([]model.MovieRecord{
			NewMovieBuilder(1).WithReleaseDate("1995-03-01").Build(),
			NewMovieBuilder(2).WithReleaseDate("2004-06-12").Build(),
			NewMovieBuilder(3).WithReleaseDate("").Build(),
			NewMovieBuilder(4).WithReleaseDate("1991-11-20").Build(),
		}, nil).Once()

		got, err := r.usecase.Resolve(r.ctx, Criteria{FreeText: "I want a 90s comedy"})

		require.NoError(t, err)
		assert.Equal(t, []int{1, 4}, movieIDs(got.Movies))
		assert.Contains(t, got.Advisory, "Based on your request for 'I want a 90s comedy'")
		assert.Contains(t, got.Advisory, "Comedy movies")
	})

	t.Run("Should prefer mood over genres in parsed intent", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.parser.On("Parse", r.ctx, "scary comedies").Return(model.Intent{
			Genres: []string{"comedy"},
			Mood:   "scared",
		}, nil).Once()
		r.taxonomy.On("GenreIDsForMood", "scared").Return([]int{27}, nil).Once()
		r.catalog.On("GetMoviesByGenre", r.ctx, 27, 1).Return([]model.MovieRecord{
			NewMovieBuilder(1).Build(),
		}, nil).Once()

		got, err := r.usecase.Resolve(r.ctx, Criteria{FreeText: "scary comedies"})

		require.NoError(t, err)
		assert.Equal(t, []int{1}, movieIDs(got.Movies))
		assert.Contains(t, got.Advisory, "with a scared mood")
	})

	t.Run("Should seed year-only intent from popular and filter it", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.parser.On("Parse", r.ctx, "90s movies").Return(model.Intent{
			YearRange: &model.YearRange{Start: 1990, End: 1999},
		}, nil).Once()
		r.catalog.On("GetPopular", r.ctx, 1).Return([]model.MovieRecord{
			NewMovieBuilder(1).WithReleaseDate("1995-03-01").Build(),
			NewMovieBuilder(2).WithReleaseDate("2004-06-12").Build(),
			NewMovieBuilder(3).WithReleaseDate("1991-11-20").Build(),
		}, nil).Once()

		got, err := r.usecase.Resolve(r.ctx, Criteria{FreeText: "90s movies"})

		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, movieIDs(got.Movies))
		assert.Contains(t, got.Advisory, "Based on your request for '90s movies'")
		assert.Contains(t, got.Advisory, "from 1990-1999")
		assert.NotContains(t, got.Advisory, msgNoMatches)
	})

	t.Run("Should return popular with summary advisory for an unspecified intent", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.parser.On("Parse", r.ctx, "surprise me").Return(model.Intent{}, nil).Once()
		r.catalog.On("GetPopular", r.ctx, 1).Return([]model.MovieRecord{
			NewMovieBuilder(1).Build(),
			NewMovieBuilder(2).Build(),
		}, nil).Once()

		got, err := r.usecase.Resolve(r.ctx, Criteria{FreeText: "surprise me"})

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, movieIDs(got.Movies))
		assert.Contains(t, got.Advisory, "Based on your request for 'surprise me'")
		assert.NotEqual(t, msgNoMatches, got.Advisory)
	})

	t.Run("Should advise no matches when the year range empties the seed", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.parser.On("Parse", r.ctx, "movies from 1950").Return(model.Intent{
			YearRange: &model.YearRange{Start: 1950, End: 1950},
		}, nil).Once()
		// Once for the seed, once for the fallback.
		r.catalog.On("GetPopular", r.ctx, 1).Return([]model.MovieRecord{
			NewMovieBuilder(1).WithReleaseDate("1995-03-01").Build(),
		}, nil).Twice()

		got, err := r.usecase.Resolve(r.ctx, Criteria{FreeText: "movies from 1950"})

		require.NoError(t, err)
		assert.Equal(t, []int{1}, movieIDs(got.Movies))
		assert.Equal(t, msgNoMatches, got.Advisory)
	})

	t.Run("Should fall back to popular when parser is unavailable", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.parser.On("Parse", r.ctx, "I want a 90s comedy").Return(model.Intent{}, intent.ErrUnavailable).Once()

		popular := make([]model.MovieRecord, 0, 12)
		for id := 1; id <= 12; id++ {
			popular = append(popular, NewMovieBuilder(id).Build())
		}
		r.catalog.On("GetPopular", r.ctx, 1).Return(popular, nil).Once()

		got, err := r.usecase.Resolve(r.ctx, Criteria{FreeText: "I want a 90s comedy"})

		require.NoError(t, err)
		assert.Len(t, got.Movies, fallbackCap)
		assert.Equal(t, msgModelUnavailable, got.Advisory)
	})
}

func (suite *UsecaseRecommendUnitSuite) TestResolveFallbacks(t provider.T) {
	t.Parallel()

	t.Run("Should return popular without advisory for empty criteria", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.catalog.On("GetPopular", r.ctx, 1).Return([]model.MovieRecord{
			NewMovieBuilder(1).Build(),
		}, nil).Once()

		got, err := r.usecase.Resolve(r.ctx, Criteria{})

		require.NoError(t, err)
		assert.False(t, got.HasAdvisory())
		assert.Equal(t, []int{1}, movieIDs(got.Movies))
	})

	t.Run("Should error only when even the popularity fallback is empty", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.catalog.On("GetPopular", r.ctx, 1).Return(nil, errors.New("tmdb down")).Once()

		_, err := r.usecase.Resolve(r.ctx, Criteria{})
		assert.ErrorIs(t, err, ErrNoRecommendations)
	})
}

func (suite *UsecaseRecommendUnitSuite) TestResolveIdempotent(t provider.T) {
	t.Parallel()

	r := initResources(t)

	movies := []model.MovieRecord{
		NewMovieBuilder(1).WithVote(6.0).Build(),
		NewMovieBuilder(2).WithVote(8.0).Build(),
		NewMovieBuilder(3).WithVote(8.0).Build(),
	}
	r.taxonomy.On("GenreIDsForMood", "happy").Return([]int{35, 10751}, nil).Twice()
	r.catalog.On("GetMoviesByGenre", r.ctx, 35, 1).Return(movies, nil).Twice()
	r.catalog.On("GetMoviesByGenre", r.ctx, 10751, 1).Return(nil, nil).Twice()

	first, err := r.usecase.Resolve(r.ctx, Criteria{Mood: "happy"})
	require.NoError(t, err)
	second, err := r.usecase.Resolve(r.ctx, Criteria{Mood: "happy"})
	require.NoError(t, err)

	assert.Equal(t, movieIDs(first.Movies), movieIDs(second.Movies))
	// Equal ratings keep their fetch order.
	assert.Equal(t, []int{2, 3, 1}, movieIDs(first.Movies))
}

func (suite *UsecaseRecommendUnitSuite) TestResolveWithContentIndex(t provider.T) {
	t.Parallel()

	t.Run("Should serve mood from the index when it has matches", func(t provider.T) {
		t.Parallel()

		index := recommend_mocks.NewIndex(t)
		r := initResources(t, WithContentIndex(index))

		r.taxonomy.On("MoodTerms", "scared").Return([]string{"horror", "scary"}, nil).Once()
		index.On("Query", "horror scary", indexTopN).Return([]model.MovieRecord{
			NewMovieBuilder(1).WithVote(5.0).Build(),
			NewMovieBuilder(2).WithVote(9.0).Build(),
		}).Once()

		got, err := r.usecase.Resolve(r.ctx, Criteria{Mood: "scared"})

		require.NoError(t, err)
		// Index similarity order is preserved, not re-sorted by rating.
		assert.Equal(t, []int{1, 2}, movieIDs(got.Movies))
	})

	t.Run("Should fall back to catalog union when index is empty", func(t provider.T) {
		t.Parallel()

		index := recommend_mocks.NewIndex(t)
		r := initResources(t, WithContentIndex(index))

		r.taxonomy.On("MoodTerms", "scared").Return([]string{"horror", "scary"}, nil).Once()
		index.On("Query", "horror scary", indexTopN).Return(nil).Once()
		r.taxonomy.On("GenreIDsForMood", "scared").Return([]int{27}, nil).Once()
		r.catalog.On("GetMoviesByGenre", r.ctx, 27, 1).Return([]model.MovieRecord{
			NewMovieBuilder(3).Build(),
		}, nil).Once()

		got, err := r.usecase.Resolve(r.ctx, Criteria{Mood: "scared"})

		require.NoError(t, err)
		assert.Equal(t, []int{3}, movieIDs(got.Movies))
	})
}

func (suite *UsecaseRecommendUnitSuite) TestResolveBareYear(t provider.T) {
	t.Parallel()

	r := initResources(t)

	r.catalog.On("GetMoviesByYear", r.ctx, 1994).Return([]model.MovieRecord{
		NewMovieBuilder(1).WithReleaseDate("1994-09-23").Build(),
	}, nil).Once()

	got, err := r.usecase.Resolve(r.ctx, Criteria{Year: 1994})

	require.NoError(t, err)
	assert.Equal(t, []int{1}, movieIDs(got.Movies))
	assert.False(t, got.HasAdvisory())
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRecommendUnitSuite))
}
