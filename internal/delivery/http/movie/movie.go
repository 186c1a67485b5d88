package http_movie

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cinemood/core/internal/infra/tmdb"
	"github.com/cinemood/core/internal/model"
	"github.com/gin-gonic/gin"
)

// Catalog is the slice of the catalog gateway the pass-through endpoints
// need.
type Catalog interface {
	GetMovie(ctx context.Context, id int) (model.MovieRecord, error)
	GetPopular(ctx context.Context, page int) ([]model.MovieRecord, error)
	GetTrending(ctx context.Context, window string) ([]model.MovieRecord, error)
	GetUpcoming(ctx context.Context) ([]model.MovieRecord, error)
	SearchMovies(ctx context.Context, query string) ([]model.MovieRecord, error)
}

type MovieListResponseDTO struct {
	Success bool               `json:"success"`
	Movies  []MovieResponseDTO `json:"movies"`
}

type MovieDetailsResponseDTO struct {
	Success bool             `json:"success"`
	Movie   MovieResponseDTO `json:"movie"`
}

type MovieResponseDTO struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Overview    string          `json:"overview,omitempty"`
	Genres      []string        `json:"genres,omitempty"`
	ReleaseDate string          `json:"release_date,omitempty"`
	VoteAverage float64         `json:"vote_average"`
	PosterPath  string          `json:"poster_path,omitempty"`
	Runtime     int             `json:"runtime,omitempty"`
	Cast        []CastMemberDTO `json:"cast,omitempty"`
}

type CastMemberDTO struct {
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

type HealthResponseDTO struct {
	Status         string `json:"status"`
	TMDBConnection string `json:"tmdb_connection"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

func ConvertFromMovieRecord(m model.MovieRecord) MovieResponseDTO {
	cast := make([]CastMemberDTO, len(m.Cast))
	for i, member := range m.Cast {
		cast[i] = CastMemberDTO{
			Name:        member.Name,
			Character:   member.Character,
			ProfilePath: member.ProfilePath,
		}
	}
	return MovieResponseDTO{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		Genres:      m.Genres,
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
		PosterPath:  m.PosterPath,
		Runtime:     m.Runtime,
		Cast:        cast,
	}
}

func ConvertFromMovieRecordList(movies []model.MovieRecord) []MovieResponseDTO {
	out := make([]MovieResponseDTO, len(movies))
	for i, m := range movies {
		out[i] = ConvertFromMovieRecord(m)
	}
	return out
}

type Controller struct {
	catalog Catalog

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(catalog Catalog, opts ...ControllerOption) *Controller {
	c := &Controller{
		catalog: catalog,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("/popular", c.popular)
	movies.GET("/trending", c.trending)
	movies.GET("/new-releases", c.newReleases)
	movies.GET("/movie-of-the-day", c.movieOfTheDay)
	movies.GET("/search", c.search)
	movies.GET("/:movie_id", c.details)

	router.GET("/health", c.health)
}

func (c *Controller) popular(ctx *gin.Context) {
	movies, err := c.catalog.GetPopular(ctx.Request.Context(), 1)
	if err != nil {
		c.fail(ctx, "Failed to load popular movies", err)
		return
	}
	ctx.JSON(http.StatusOK, MovieListResponseDTO{Success: true, Movies: ConvertFromMovieRecordList(movies)})
}

func (c *Controller) trending(ctx *gin.Context) {
	window := ctx.DefaultQuery("window", "day")
	movies, err := c.catalog.GetTrending(ctx.Request.Context(), window)
	if err != nil {
		c.fail(ctx, "Failed to load trending movies", err)
		return
	}
	ctx.JSON(http.StatusOK, MovieListResponseDTO{Success: true, Movies: ConvertFromMovieRecordList(movies)})
}

func (c *Controller) newReleases(ctx *gin.Context) {
	movies, err := c.catalog.GetUpcoming(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "Failed to load new releases", err)
		return
	}
	ctx.JSON(http.StatusOK, MovieListResponseDTO{Success: true, Movies: ConvertFromMovieRecordList(movies)})
}

// movieOfTheDay is the head of the popularity list.
func (c *Controller) movieOfTheDay(ctx *gin.Context) {
	movies, err := c.catalog.GetPopular(ctx.Request.Context(), 1)
	if err != nil || len(movies) == 0 {
		status := http.StatusNotFound
		if err != nil {
			c.logger.Error("failed to pick movie of the day", slog.String("error", err.Error()))
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, ErrorResponse{
			Error: "No movie of the day available",
			Code:  status,
		})
		return
	}
	ctx.JSON(http.StatusOK, MovieDetailsResponseDTO{Success: true, Movie: ConvertFromMovieRecord(movies[0])})
}

func (c *Controller) search(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "No search query provided",
			Code:  http.StatusBadRequest,
		})
		return
	}

	movies, err := c.catalog.SearchMovies(ctx.Request.Context(), query)
	if err != nil {
		c.fail(ctx, "Failed to search movies", err)
		return
	}
	ctx.JSON(http.StatusOK, MovieListResponseDTO{Success: true, Movies: ConvertFromMovieRecordList(movies)})
}

func (c *Controller) details(ctx *gin.Context) {
	movieID, err := strconv.Atoi(ctx.Param("movie_id"))
	if err != nil || movieID <= 0 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid movie id",
			Code:  http.StatusBadRequest,
		})
		return
	}

	movie, err := c.catalog.GetMovie(ctx.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		c.fail(ctx, "Failed to load movie details", err)
		return
	}
	ctx.JSON(http.StatusOK, MovieDetailsResponseDTO{Success: true, Movie: ConvertFromMovieRecord(movie)})
}

// health verifies the catalog connection with a single popular fetch.
func (c *Controller) health(ctx *gin.Context) {
	if _, err := c.catalog.GetPopular(ctx.Request.Context(), 1); err != nil {
		ctx.JSON(http.StatusInternalServerError, HealthResponseDTO{
			Status:         "unhealthy",
			TMDBConnection: "error",
		})
		return
	}
	ctx.JSON(http.StatusOK, HealthResponseDTO{
		Status:         "healthy",
		TMDBConnection: "ok",
	})
}

func (c *Controller) fail(ctx *gin.Context, message string, err error) {
	c.logger.Error(message, slog.String("error", err.Error()))
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   message,
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}
