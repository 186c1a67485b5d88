package tmdb

import "github.com/cinemood/core/internal/model"

type listPayload struct {
	Page    int        `json:"page"`
	Results []movieDTO `json:"results"`
}

type movieDTO struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	GenreIDs    []int   `json:"genre_ids"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	PosterPath  string  `json:"poster_path"`
}

type detailPayload struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Overview    string     `json:"overview"`
	Genres      []genreDTO `json:"genres"`
	ReleaseDate string     `json:"release_date"`
	VoteAverage float64    `json:"vote_average"`
	PosterPath  string     `json:"poster_path"`
	Runtime     int        `json:"runtime"`
	Credits     struct {
		Cast []castDTO `json:"cast"`
	} `json:"credits"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type castDTO struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

type keywordsPayload struct {
	Keywords []struct {
		Name string `json:"name"`
	} `json:"keywords"`
}

// genreNames resolves the genre_ids of list payloads, which carry ids only.
var genreNames = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

func (d movieDTO) toRecord() model.MovieRecord {
	genres := make([]string, 0, len(d.GenreIDs))
	for _, id := range d.GenreIDs {
		if name, ok := genreNames[id]; ok {
			genres = append(genres, name)
		}
	}
	return model.MovieRecord{
		ID:          d.ID,
		Title:       d.Title,
		Overview:    d.Overview,
		Genres:      genres,
		ReleaseDate: d.ReleaseDate,
		VoteAverage: d.VoteAverage,
		PosterPath:  d.PosterPath,
	}
}

func (d detailPayload) toRecord() model.MovieRecord {
	genres := make([]string, len(d.Genres))
	for i, g := range d.Genres {
		genres[i] = g.Name
	}

	cast := d.Credits.Cast
	if len(cast) > castLimit {
		cast = cast[:castLimit]
	}
	members := make([]model.CastMember, len(cast))
	for i, actor := range cast {
		members[i] = model.CastMember{
			Name:        actor.Name,
			Character:   actor.Character,
			ProfilePath: actor.ProfilePath,
		}
	}

	return model.MovieRecord{
		ID:          d.ID,
		Title:       d.Title,
		Overview:    d.Overview,
		Genres:      genres,
		ReleaseDate: d.ReleaseDate,
		VoteAverage: d.VoteAverage,
		PosterPath:  d.PosterPath,
		Runtime:     d.Runtime,
		Cast:        members,
	}
}
