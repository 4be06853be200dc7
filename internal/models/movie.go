package models

// Movie is an immutable catalog record. JSON tags follow the catalog file format.
type Movie struct {
	ID          int      `json:"id" validate:"gt=0"`
	Title       string   `json:"title" validate:"required"`
	ReleaseYear int      `json:"year" validate:"gt=0"`
	Genres      []string `json:"genre" validate:"required,min=1,dive,required"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=10"`
	PosterURL   string   `json:"poster"`
	Overview    string   `json:"overview"`
}

// HasGenre reports whether the movie carries the given genre. Matching is case-sensitive.
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// GenreCount is a genre name with the number of catalog movies carrying it.
type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MovieListItem is the response shape for movie listing.
type MovieListItem struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	ReleaseYear int      `json:"year"`
	Genres      []string `json:"genres"`
	Rating      float64  `json:"rating"`
	PosterURL   string   `json:"poster_url"`
}

// NewMovieListItem builds the listing shape of a movie.
func NewMovieListItem(m Movie) MovieListItem {
	return MovieListItem{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		Genres:      m.Genres,
		Rating:      m.Rating,
		PosterURL:   m.PosterURL,
	}
}

// MovieListResponse is the paginated movie listing response.
type MovieListResponse struct {
	Page         int             `json:"page"`
	PageSize     int             `json:"page_size"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
	Data         []MovieListItem `json:"data"`
}

// MovieDetail is the response shape for movie detail.
type MovieDetail struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Overview    string          `json:"overview"`
	ReleaseYear int             `json:"year"`
	Genres      []string        `json:"genres"`
	Rating      float64         `json:"rating"`
	PosterURL   string          `json:"poster_url"`
	Related     []MovieListItem `json:"related"`
}

const (
	// DefaultRelatedLimit is how many related movies a detail view shows.
	DefaultRelatedLimit = 6
	MaxRelatedLimit     = 50
)
