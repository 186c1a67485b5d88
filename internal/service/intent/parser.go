package intent

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cinemood/core/internal/model"
)

// ErrUnavailable means no structured intent can be extracted: either the
// generative model was never configured, or this particular call failed.
// Callers substitute an all-unspecified intent and proceed.
var ErrUnavailable = errors.New("intent extraction unavailable")

// Generator produces a completion for a prompt. Implemented by infra/llm.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const promptTemplate = `You are a movie recommendation expert. Based on the following user request,
identify the key elements for movie recommendations. Respond in this exact format:
GENRES: [list of genres, separated by commas]
YEAR: [specific year or year range, or "any" if not specified]
MOOD: [mood if specified, or "any"]

For example:
- For "horror comedy movies" -> GENRES: horror, comedy
- For "90s movies" -> YEAR: 1990-1999
- For "romantic comedies from 2000s" -> GENRES: romance, comedy, YEAR: 2000-2009

User request: %s`

// Parser turns unstructured free text into a model.Intent by prompting a
// generative model with a fixed instruction template and defensively
// parsing its constrained three-line reply.
type Parser struct {
	generator Generator
}

// New builds a Parser. A nil generator marks the parser unavailable for the
// process lifetime.
func New(generator Generator) *Parser {
	return &Parser{generator: generator}
}

func (p *Parser) Available() bool {
	return p.generator != nil
}

func (p *Parser) Parse(ctx context.Context, freeText string) (model.Intent, error) {
	if p.generator == nil {
		return model.Intent{}, ErrUnavailable
	}

	reply, err := p.generator.Generate(ctx, fmt.Sprintf(promptTemplate, freeText))
	if err != nil {
		return model.Intent{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return parseReply(reply), nil
}

// parseReply is line-oriented and tolerant: lines without a recognized
// prefix are ignored, malformed YEAR values are treated as absent, and
// "any" on any field means unspecified.
func parseReply(reply string) model.Intent {
	var intent model.Intent
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "GENRES:"):
			intent.Genres = parseGenres(strings.TrimPrefix(line, "GENRES:"))
		case strings.HasPrefix(line, "YEAR:"):
			intent.YearRange = parseYearRange(strings.TrimPrefix(line, "YEAR:"))
		case strings.HasPrefix(line, "MOOD:"):
			mood := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "MOOD:")))
			if mood != model.AnyField && mood != "" {
				intent.Mood = mood
			}
		}
	}
	return intent
}

func parseGenres(value string) []string {
	var genres []string
	for _, g := range strings.Split(value, ",") {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" || g == model.AnyField {
			continue
		}
		genres = append(genres, g)
	}
	return genres
}

func parseYearRange(value string) *model.YearRange {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, model.AnyField) {
		return nil
	}

	if start, end, found := strings.Cut(value, "-"); found {
		startYear, err := strconv.Atoi(strings.TrimSpace(start))
		if err != nil {
			return nil
		}
		endYear, err := strconv.Atoi(strings.TrimSpace(end))
		if err != nil {
			return nil
		}
		return &model.YearRange{Start: startYear, End: endYear}
	}

	year, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &model.YearRange{Start: year, End: year}
}
