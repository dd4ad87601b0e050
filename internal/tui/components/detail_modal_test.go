package components

import (
	"strings"
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetailModal_Visibility(t *testing.T) {
	d := NewDetailModal("https://image.example/w500")
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())

	d.SetMovie(&domain.Movie{ID: 1, Title: "Heat"})
	assert.True(t, d.IsVisible())

	d.SetMovie(nil)
	assert.False(t, d.IsVisible())
}

func TestDetailModal_View(t *testing.T) {
	d := NewDetailModal("https://image.example/w500")
	d.SetSize(100, 40)
	d.SetMovie(&domain.Movie{
		ID:               1,
		Title:            "Amélie",
		OriginalTitle:    "Le Fabuleux Destin d'Amélie Poulain",
		Overview:         "A shy waitress decides to change the lives of those around her.",
		PosterPath:       "/amelie.jpg",
		ReleaseDate:      "2001-04-25",
		VoteAverage:      7.9,
		VoteCount:        1200,
		OriginalLanguage: "fr",
	})

	view := d.View()
	assert.Contains(t, view, "Amélie (2001)")
	assert.Contains(t, view, "Le Fabuleux Destin")
	assert.Contains(t, view, "2001-04-25")
	assert.Contains(t, view, "7.9")
	assert.Contains(t, view, "1200 votes")
	assert.Contains(t, view, "FR")
	assert.Contains(t, view, "https://image.example/w500/amelie.jpg")
	assert.Contains(t, view, "shy waitress")
}

func TestDetailModal_Unrated(t *testing.T) {
	d := NewDetailModal("")
	d.SetSize(100, 40)
	d.SetMovie(&domain.Movie{ID: 1, Title: "Untitled"})

	view := d.View()
	assert.Contains(t, view, "not rated")
	assert.Contains(t, view, "No overview available.")
}

func TestDetailModal_ScrollResetsOnNewMovie(t *testing.T) {
	d := NewDetailModal("")
	d.SetMovie(&domain.Movie{ID: 1})
	d, _ = d.Update(keyPress("j"))
	d, _ = d.Update(keyPress("j"))
	assert.Equal(t, 2, d.offset)

	d, _ = d.Update(keyPress("k"))
	assert.Equal(t, 1, d.offset)

	d.SetMovie(&domain.Movie{ID: 1})
	assert.Equal(t, 1, d.offset)

	d.SetMovie(&domain.Movie{ID: 2})
	assert.Equal(t, 0, d.offset)
}

func TestWordWrap(t *testing.T) {
	wrapped := wordWrap("the quick brown fox jumps over the lazy dog", 10)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 10)
	}
	assert.Equal(t, "the quick brown fox jumps over the lazy dog", strings.Join(strings.Fields(wrapped), " "))

	assert.Equal(t, "text", wordWrap("text", 0))
}
