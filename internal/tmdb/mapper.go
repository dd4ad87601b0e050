package tmdb

import "github.com/mmcdole/marquee/internal/domain"

// MapMovies converts search results to domain movies, preserving order
func MapMovies(dtos []MovieDTO) []domain.Movie {
	movies := make([]domain.Movie, 0, len(dtos))
	for _, dto := range dtos {
		movies = append(movies, MapMovie(dto))
	}
	return movies
}

// MapMovie converts a single search result
func MapMovie(dto MovieDTO) domain.Movie {
	return domain.Movie{
		ID:               dto.ID,
		Title:            dto.Title,
		OriginalTitle:    dto.OriginalTitle,
		Overview:         dto.Overview,
		PosterPath:       deref(dto.PosterPath),
		BackdropPath:     deref(dto.BackdropPath),
		ReleaseDate:      dto.ReleaseDate,
		VoteAverage:      dto.VoteAverage,
		VoteCount:        dto.VoteCount,
		Popularity:       dto.Popularity,
		Adult:            dto.Adult,
		OriginalLanguage: dto.OriginalLanguage,
		GenreIDs:         dto.GenreIDs,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
