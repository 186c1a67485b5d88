package http_recommend

import "github.com/cinemood/core/internal/model"

// ChatRequestDTO carries a free-text recommendation request.
type ChatRequestDTO struct {
	Text string `json:"text" binding:"required" example:"I want a 90s comedy"`
}

// CriteriaRequestDTO carries explicit recommendation criteria. At least one
// field must be set.
type CriteriaRequestDTO struct {
	MovieID int    `json:"movie_id" example:"603"`
	Mood    string `json:"mood" example:"scared"`
	Genre   string `json:"genre" example:"horror"`
	Year    int    `json:"year" example:"1994"`
}

type MovieResponseDTO struct {
	ID          int             `json:"id" example:"603"`
	Title       string          `json:"title" example:"The Matrix"`
	Overview    string          `json:"overview,omitempty"`
	Genres      []string        `json:"genres,omitempty"`
	ReleaseDate string          `json:"release_date,omitempty" example:"1999-03-30"`
	VoteAverage float64         `json:"vote_average" example:"8.2"`
	PosterPath  string          `json:"poster_path,omitempty"`
	Runtime     int             `json:"runtime,omitempty"`
	Cast        []CastMemberDTO `json:"cast,omitempty"`
}

type CastMemberDTO struct {
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// AdvisoryDTO is the legacy wire marker: a list element with only a
// message field preceding the movies.
type AdvisoryDTO struct {
	Message string `json:"message"`
}

// RecommendationsResponseDTO keeps the original API shape: the advisory,
// when present, occupies the first list position.
type RecommendationsResponseDTO struct {
	Recommendations []any `json:"recommendations"`
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

func ConvertFromRecommendation(rec model.Recommendation) RecommendationsResponseDTO {
	items := make([]any, 0, len(rec.Movies)+1)
	if rec.HasAdvisory() {
		items = append(items, AdvisoryDTO{Message: rec.Advisory})
	}
	for _, m := range rec.Movies {
		items = append(items, ConvertFromMovieRecord(m))
	}
	return RecommendationsResponseDTO{Recommendations: items}
}
