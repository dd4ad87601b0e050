package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchBar_Submit(t *testing.T) {
	s := NewSearchBar()
	s.SetWidth(60)

	// Blurred input ignores keys
	s, _, submitted := s.Update(keyPress("x"))
	assert.False(t, submitted)
	assert.Empty(t, s.Value())

	s.Focus()
	for _, r := range "alien" {
		s, _, submitted = s.Update(keyPress(string(r)))
		assert.False(t, submitted)
	}
	assert.Equal(t, "alien", s.Value())
	assert.True(t, s.QueryChanged())
	assert.False(t, s.QueryChanged())

	s, _, submitted = s.Update(keyPress("enter"))
	assert.True(t, submitted)
}

func TestSearchBar_EnterOnBlankDoesNotSubmit(t *testing.T) {
	s := NewSearchBar()
	s.Focus()
	s.SetValue("   ")

	_, _, submitted := s.Update(keyPress("enter"))
	assert.False(t, submitted)
}

func TestSearchBar_EscBlurs(t *testing.T) {
	s := NewSearchBar()
	s.Focus()
	s.SetRecent([]string{"heat"})
	assert.Equal(t, 4, s.Height())

	s, _, _ = s.Update(keyPress("esc"))
	assert.False(t, s.Focused())
	assert.Equal(t, 3, s.Height())
}

func TestSearchBar_RecentHint(t *testing.T) {
	s := NewSearchBar()
	s.SetWidth(80)
	s.Focus()
	s.SetRecent([]string{"a", "b", "c", "d", "e", "f", "g"})

	view := s.View()
	assert.Contains(t, view, "recent: a · b · c · d · e")
	assert.NotContains(t, view, "· f")
}
