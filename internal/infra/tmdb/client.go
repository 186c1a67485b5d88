package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cinemood/core/internal/model"
)

var (
	ErrNotFound   = errors.New("movie not found")
	ErrBadStatus  = errors.New("unexpected tmdb status")
	ErrNoAPIKey   = errors.New("tmdb api key is not configured")
	ErrBadPayload = errors.New("malformed tmdb payload")
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	similarLimit   = 5
	castLimit      = 5
)

// Cache stores serialized list payloads keyed by endpoint+params.
// Implemented by infra/redis/moviecache; a nil cache disables caching.
type Cache interface {
	Get(key string) (string, error)
	Set(key string, value string, ttl time.Duration) error
}

// Client is the TMDB v3 catalog gateway. All operations report transport
// and upstream failures as errors; callers in the resolution path convert
// them into empty results and fall through to the next strategy.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client

	cache    Cache
	cacheTTL time.Duration

	logger *slog.Logger
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithCache(cache Cache, ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	c := &Client{
		baseURL:  defaultBaseURL,
		apiKey:   apiKey,
		language: "en-US",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetMovie fetches full details for one movie, credits appended.
func (c *Client) GetMovie(ctx context.Context, id int) (model.MovieRecord, error) {
	var payload detailPayload
	err := c.get(ctx, fmt.Sprintf("movie/%d", id), url.Values{
		"append_to_response": {"credits"},
	}, &payload)
	if err != nil {
		return model.MovieRecord{}, err
	}
	return payload.toRecord(), nil
}

// GetMoviesByGenre discovers movies for one genre id, catalog popularity
// order preserved.
func (c *Client) GetMoviesByGenre(ctx context.Context, genreID int, page int) ([]model.MovieRecord, error) {
	if page < 1 {
		page = 1
	}
	return c.list(ctx, "discover/movie", url.Values{
		"with_genres": {strconv.Itoa(genreID)},
		"sort_by":     {"popularity.desc"},
		"page":        {strconv.Itoa(page)},
	}, 0)
}

// GetSimilar returns at most 5 movies similar to id, catalog order preserved.
func (c *Client) GetSimilar(ctx context.Context, id int) ([]model.MovieRecord, error) {
	return c.list(ctx, fmt.Sprintf("movie/%d/similar", id), url.Values{}, similarLimit)
}

func (c *Client) GetPopular(ctx context.Context, page int) ([]model.MovieRecord, error) {
	if page < 1 {
		page = 1
	}
	return c.list(ctx, "movie/popular", url.Values{
		"page": {strconv.Itoa(page)},
	}, 0)
}

func (c *Client) GetMoviesByYear(ctx context.Context, year int) ([]model.MovieRecord, error) {
	return c.list(ctx, "discover/movie", url.Values{
		"primary_release_year": {strconv.Itoa(year)},
		"sort_by":              {"popularity.desc"},
	}, 0)
}

func (c *Client) SearchMovies(ctx context.Context, query string) ([]model.MovieRecord, error) {
	return c.list(ctx, "search/movie", url.Values{
		"query": {query},
	}, 0)
}

// GetTrending accepts "day" or "week" windows.
func (c *Client) GetTrending(ctx context.Context, window string) ([]model.MovieRecord, error) {
	if window != "week" {
		window = "day"
	}
	return c.list(ctx, "trending/movie/"+window, url.Values{}, 0)
}

func (c *Client) GetUpcoming(ctx context.Context) ([]model.MovieRecord, error) {
	return c.list(ctx, "movie/upcoming", url.Values{}, 0)
}

// GetKeywords returns the movie's keyword labels.
func (c *Client) GetKeywords(ctx context.Context, id int) ([]string, error) {
	var payload keywordsPayload
	if err := c.get(ctx, fmt.Sprintf("movie/%d/keywords", id), url.Values{}, &payload); err != nil {
		return nil, err
	}
	names := make([]string, len(payload.Keywords))
	for i, kw := range payload.Keywords {
		names[i] = kw.Name
	}
	return names, nil
}

func (c *Client) list(ctx context.Context, endpoint string, params url.Values, limit int) ([]model.MovieRecord, error) {
	var payload listPayload
	if err := c.get(ctx, endpoint, params, &payload); err != nil {
		return nil, err
	}

	results := payload.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	movies := make([]model.MovieRecord, len(results))
	for i, dto := range results {
		movies[i] = dto.toRecord()
	}
	return movies, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	key := cacheKey(endpoint, params)
	if c.cache != nil {
		if raw, err := c.cache.Get(key); err == nil && raw != "" {
			if err := json.Unmarshal([]byte(raw), out); err == nil {
				return nil
			}
		}
	}

	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read tmdb response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn("tmdb returned non-OK status",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrBadPayload, err)
	}

	if c.cache != nil {
		if err := c.cache.Set(key, string(body), c.cacheTTL); err != nil {
			c.logger.Warn("failed to cache tmdb response", slog.String("error", err.Error()))
		}
	}
	return nil
}

func cacheKey(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + params.Encode()
}
