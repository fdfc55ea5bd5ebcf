package model

type Movie struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PosterUrl   string `json:"poster_url"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"release_date"`
}

// MovieList is the canonical paginated shape. List endpoints may respond with
// either a bare array or this envelope; the service client always normalizes
// to this form.
type MovieList struct {
	Movies      []Movie `json:"movies"`
	TotalPages  int     `json:"total_pages"`
	CurrentPage int     `json:"current_page"`
}

// Genres seeded by the backend. Display hint only; the client accepts any
// genre string the backend returns.
var Genres = []string{"Action", "Comedy", "Drama", "Horror", "Sci-Fi"}
