package domain

import "context"

// MovieSearcher translates a free-text query into an ordered list of movies.
type MovieSearcher interface {
	Search(ctx context.Context, query string) ([]Movie, error)
}
