package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Movie is a single search result as returned by the movie database
type Movie struct {
	ID               int     // TMDB movie ID
	Title            string  // Display title
	OriginalTitle    string  // Title in the original language
	Overview         string  // Plot synopsis
	PosterPath       string  // Relative poster image path, e.g. "/abc.jpg"
	BackdropPath     string  // Relative backdrop image path
	ReleaseDate      string  // "YYYY-MM-DD", may be empty
	VoteAverage      float64 // 0-10 community rating
	VoteCount        int
	Popularity       float64
	Adult            bool
	OriginalLanguage string // ISO 639-1
	GenreIDs         []int
}

// Year returns the release year parsed from ReleaseDate (0 if unknown)
func (m Movie) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// DisplayTitle returns the title with the release year appended when known
func (m Movie) DisplayTitle() string {
	if year := m.Year(); year > 0 {
		return fmt.Sprintf("%s (%d)", m.Title, year)
	}
	return m.Title
}

// FormattedRating returns the vote average as "7.3" or "" when unrated
func (m Movie) FormattedRating() string {
	if m.VoteCount == 0 {
		return ""
	}
	return strconv.FormatFloat(m.VoteAverage, 'f', 1, 64)
}

// PosterURL joins the poster path onto an image base URL.
// Returns "" when the movie has no poster.
func (m Movie) PosterURL(imageBaseURL string) string {
	if m.PosterPath == "" {
		return ""
	}
	return strings.TrimRight(imageBaseURL, "/") + "/" + strings.TrimLeft(m.PosterPath, "/")
}
