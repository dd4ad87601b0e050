package tmdb

// SearchMovieResponse is the body of GET /search/movie
type SearchMovieResponse struct {
	Page         int        `json:"page"`
	Results      *[]MovieDTO `json:"results"` // nil when absent or null
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// MovieDTO is a movie summary as returned in search results
type MovieDTO struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	Overview         string  `json:"overview,omitempty"`
	PosterPath       *string `json:"poster_path"`   // null when no poster
	BackdropPath     *string `json:"backdrop_path"` // null when no backdrop
	ReleaseDate      string  `json:"release_date,omitempty"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
}

// ErrorResponse is the body TMDB returns alongside non-2xx statuses
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
