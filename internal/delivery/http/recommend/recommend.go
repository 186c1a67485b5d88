package http_recommend

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	usecase_recommend "github.com/cinemood/core/internal/usecase/recommend"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	uc *usecase_recommend.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_recommend.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	recs := router.Group("/recommendations")
	recs.POST("", c.byCriteria)
	recs.POST("/chat", c.byChat)
	recs.GET("/mood/:mood", c.byMood)
	recs.GET("/genre/:genre", c.byGenre)
	recs.GET("/similar/:movie_id", c.bySimilar)
}

// byChat resolves a free-text request through the intent parser.
func (c *Controller) byChat(ctx *gin.Context) {
	var req ChatRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	c.respond(ctx, usecase_recommend.Criteria{FreeText: req.Text})
}

// byCriteria resolves explicit criteria; at least one must be present.
func (c *Controller) byCriteria(ctx *gin.Context) {
	var req CriteriaRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	criteria := usecase_recommend.Criteria{
		MovieID: req.MovieID,
		Mood:    req.Mood,
		Genre:   req.Genre,
		Year:    req.Year,
	}
	if criteria.IsEmpty() {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: usecase_recommend.ErrEmptyCriteria.Error(),
			Code:  http.StatusBadRequest,
		})
		return
	}

	c.respond(ctx, criteria)
}

func (c *Controller) byMood(ctx *gin.Context) {
	c.respond(ctx, usecase_recommend.Criteria{Mood: ctx.Param("mood")})
}

func (c *Controller) byGenre(ctx *gin.Context) {
	c.respond(ctx, usecase_recommend.Criteria{Genre: ctx.Param("genre")})
}

func (c *Controller) bySimilar(ctx *gin.Context) {
	movieID, err := strconv.Atoi(ctx.Param("movie_id"))
	if err != nil || movieID <= 0 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid movie id",
			Code:  http.StatusBadRequest,
		})
		return
	}

	c.respond(ctx, usecase_recommend.Criteria{MovieID: movieID})
}

func (c *Controller) respond(ctx *gin.Context, criteria usecase_recommend.Criteria) {
	rec, err := c.uc.Resolve(ctx.Request.Context(), criteria)
	if err != nil {
		if errors.Is(err, usecase_recommend.ErrNoRecommendations) {
			// Even the popularity fallback came up empty; an empty list,
			// not an error, is the documented surface.
			ctx.JSON(http.StatusOK, RecommendationsResponseDTO{Recommendations: []any{}})
			return
		}
		c.logger.Error("resolution failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to resolve recommendations",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromRecommendation(rec))
}
