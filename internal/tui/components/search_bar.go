package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// maxRecentShown caps the recent-search hints under the input
const maxRecentShown = 5

// SearchBar is the query input shown above the grid
type SearchBar struct {
	input     textinput.Model
	recent    []string // history entries matching the current input
	width     int
	prevQuery string // Track query changes for history matching
}

// NewSearchBar creates a new search bar component
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 100
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.ShowSuggestions = true
	ti.CompletionStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// Focus focuses the input and selects nothing
func (s *SearchBar) Focus() tea.Cmd {
	s.prevQuery = ""
	return s.input.Focus()
}

// Blur removes focus from the input
func (s *SearchBar) Blur() {
	s.input.Blur()
	s.recent = nil
}

// Focused returns whether the input has focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the trimmed query
func (s SearchBar) Value() string {
	return strings.TrimSpace(s.input.Value())
}

// SetValue replaces the input text
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

// SetWidth sets the outer width of the bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// border (2) + padding (2) + prompt (2)
	s.input.Width = max(10, width-6)
}

// SetSuggestions sets the tab-completion candidates
func (s *SearchBar) SetSuggestions(suggestions []string) {
	s.input.SetSuggestions(suggestions)
}

// SetRecent sets the history entries shown under the input
func (s *SearchBar) SetRecent(recent []string) {
	if len(recent) > maxRecentShown {
		recent = recent[:maxRecentShown]
	}
	s.recent = recent
}

// QueryChanged reports whether the input changed since the last call
func (s *SearchBar) QueryChanged() bool {
	q := s.input.Value()
	if q == s.prevQuery {
		return false
	}
	s.prevQuery = q
	return true
}

// Update handles input events, returns (bar, cmd, submitted)
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if !s.input.Focused() {
		return s, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if s.Value() == "" {
				return s, nil, false
			}
			return s, nil, true
		case "esc":
			s.Blur()
			return s, nil, false
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

// Height returns the number of lines View renders
func (s SearchBar) Height() int {
	// border + input line
	h := 3
	if s.input.Focused() && len(s.recent) > 0 {
		h++
	}
	return h
}

// View renders the search bar
func (s SearchBar) View() string {
	style := styles.InactiveBorder
	if s.input.Focused() {
		style = styles.ActiveBorder
	}
	frameW, _ := style.GetFrameSize()

	box := style.
		Width(max(0, s.width-frameW)).
		Padding(0, 1).
		Render(s.input.View())

	if !s.input.Focused() || len(s.recent) == 0 {
		return box
	}

	hint := styles.Truncate(" recent: "+strings.Join(s.recent, " · "), s.width)
	return box + "\n" + styles.DimStyle.Render(hint)
}
