package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/mmcdole/marquee/internal/domain"
)

// Env is the set of fields an expression can reference
type Env struct {
	Title      string  `expr:"title"`
	Original   string  `expr:"original_title"`
	Overview   string  `expr:"overview"`
	Year       int     `expr:"year"`
	Rating     float64 `expr:"rating"`
	Votes      int     `expr:"votes"`
	Popularity float64 `expr:"popularity"`
	Adult      bool    `expr:"adult"`
	Language   string  `expr:"language"`
	HasPoster  bool    `expr:"has_poster"`
}

// Contains is a case-insensitive substring helper for expressions
func (Env) Contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// newEnv builds the expression environment for a movie
func newEnv(m domain.Movie) Env {
	return Env{
		Title:      m.Title,
		Original:   m.OriginalTitle,
		Overview:   m.Overview,
		Year:       m.Year(),
		Rating:     m.VoteAverage,
		Votes:      m.VoteCount,
		Popularity: m.Popularity,
		Adult:      m.Adult,
		Language:   m.OriginalLanguage,
		HasPoster:  m.PosterPath != "",
	}
}

// Filter is a compiled boolean expression over movie fields,
// e.g. `rating >= 7 && year > 2000`.
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression. Unknown fields are compile errors.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{program: program, expr: expression}, nil
}

// String returns the source expression
func (f *Filter) String() string {
	return f.expr
}

// Match evaluates the filter against a single movie
func (f *Filter) Match(m domain.Movie) (bool, error) {
	out, err := expr.Run(f.program, newEnv(m))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter for %q: %w", m.Title, err)
	}
	matched, _ := out.(bool)
	return matched, nil
}

// Apply returns the movies matching the filter, preserving order
func (f *Filter) Apply(movies []domain.Movie) ([]domain.Movie, error) {
	var out []domain.Movie
	for _, m := range movies {
		ok, err := f.Match(m)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}
