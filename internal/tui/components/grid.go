package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for grid cells
const (
	// Outer cell size including the rounded border
	CellWidth  = 28
	CellHeight = 4

	// Border (1 each side) + Padding(0,1)
	cellFrameWidth = 4

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Filter bar takes 1 line when active
	FilterBarLines = 1
)

// Grid displays search results as a grid of cells
type Grid struct {
	movies []domain.Movie

	// Selection; cursor indexes the visible (filtered) list
	cursor int
	offset int // first visible row
	cols   int
	rows   int

	// Dimensions
	width   int
	height  int
	focused bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int         // indices into movies
	matchedIdx   map[int][]int // movie index -> matched byte offsets in title
}

// NewGrid creates a new grid component
func NewGrid() Grid {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "f "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return Grid{
		filterInput: ti,
		cols:        1,
		rows:        1,
	}
}

// SetMovies replaces the grid content and resets selection and filter
func (g *Grid) SetMovies(movies []domain.Movie) {
	g.movies = movies
	g.cursor = 0
	g.offset = 0
	g.clearFilter()
}

// Movies returns the unfiltered grid content
func (g Grid) Movies() []domain.Movie {
	return g.movies
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.recalcLayout()
}

// recalcLayout derives columns and visible rows from the current size
func (g *Grid) recalcLayout() {
	g.cols = max(1, g.width/CellWidth)

	usable := g.height - ScrollIndicatorLines
	if g.filterActive {
		usable -= FilterBarLines
	}
	g.rows = max(1, usable/CellHeight)
	g.ensureVisible()
}

// SetFocused sets the focus state
func (g *Grid) SetFocused(focused bool) {
	g.focused = focused
}

// Columns returns the number of cells per row
func (g Grid) Columns() int {
	return g.cols
}

// Cursor returns the current cursor position
func (g Grid) Cursor() int {
	return g.cursor
}

// SetCursor moves the cursor, clamped to the visible items
func (g *Grid) SetCursor(pos int) {
	count := g.itemCount()
	if count == 0 {
		g.cursor = 0
		return
	}
	g.cursor = min(max(pos, 0), count-1)
	g.ensureVisible()
}

// SelectedMovie returns the movie under the cursor
func (g Grid) SelectedMovie() *domain.Movie {
	count := g.itemCount()
	if count == 0 || g.cursor >= count {
		return nil
	}
	m := g.movies[g.mapIndex(g.cursor)]
	return &m
}

// IsEmpty returns true if there are no visible items
func (g Grid) IsEmpty() bool {
	return g.itemCount() == 0
}

// ensureVisible scrolls so the cursor row is on screen
func (g *Grid) ensureVisible() {
	row := g.cursor / g.cols
	if row < g.offset {
		g.offset = row
	}
	if row >= g.offset+g.rows {
		g.offset = row - g.rows + 1
	}
}

// ToggleFilter activates the filter input
func (g *Grid) ToggleFilter() {
	g.filterActive = true
	g.filterInput.Focus()
	g.recalcLayout()
}

// IsFiltering returns true if filter mode is active
func (g Grid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (g Grid) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all items
func (g *Grid) ClearFilter() {
	g.clearFilter()
}

func (g *Grid) clearFilter() {
	g.filterActive = false
	g.filterQuery = ""
	g.filteredIdx = nil
	g.matchedIdx = nil
	g.filterInput.SetValue("")
	g.filterInput.Blur()
	g.recalcLayout()
}

// applyFilter fuzzy-matches titles against the filter input
func (g *Grid) applyFilter() {
	query := g.filterInput.Value()
	g.filterQuery = query

	if query == "" {
		g.filteredIdx = nil
		g.matchedIdx = nil
		return
	}

	lowerTitles := make([]string, len(g.movies))
	for i, m := range g.movies {
		lowerTitles[i] = strings.ToLower(m.Title)
	}

	matches := fuzzy.Find(strings.ToLower(query), lowerTitles)

	g.filteredIdx = make([]int, len(matches))
	g.matchedIdx = make(map[int][]int, len(matches))
	for i, match := range matches {
		g.filteredIdx[i] = match.Index
		g.matchedIdx[match.Index] = match.MatchedIndexes
	}

	// Reset cursor to first match
	g.cursor = 0
	g.offset = 0
}

// itemCount returns the number of items after filtering
func (g Grid) itemCount() int {
	if g.filteredIdx != nil {
		return len(g.filteredIdx)
	}
	return len(g.movies)
}

// mapIndex maps a cursor position to the index in movies
func (g Grid) mapIndex(i int) int {
	if g.filteredIdx != nil && i < len(g.filteredIdx) {
		return g.filteredIdx[i]
	}
	return i
}

// Init initializes the component
func (g Grid) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (g Grid) Update(msg tea.Msg) (Grid, tea.Cmd) {
	if !g.focused {
		return g, nil
	}

	// Filter input when active AND focused (typing mode)
	if g.IsFilterTyping() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				g.clearFilter()
				return g, nil
			case "enter":
				// Accept filter, blur input to allow navigation
				g.filterInput.Blur()
				return g, nil
			case "backspace":
				if g.filterInput.Value() == "" {
					g.clearFilter()
					return g, nil
				}
			}
		}

		var cmd tea.Cmd
		g.filterInput, cmd = g.filterInput.Update(msg)
		g.applyFilter()
		return g, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	// Filter active but blurred: navigation over the filtered results
	if g.filterActive {
		switch keyMsg.String() {
		case "esc":
			g.clearFilter()
			return g, nil
		case "f":
			g.filterInput.Focus()
			return g, nil
		}
	}

	count := g.itemCount()
	if count == 0 {
		return g, nil
	}

	switch {
	case key.Matches(keyMsg, GridKeys.Right):
		g.SetCursor(g.cursor + 1)
	case key.Matches(keyMsg, GridKeys.Left):
		g.SetCursor(g.cursor - 1)
	case key.Matches(keyMsg, GridKeys.Down):
		if g.cursor+g.cols < count {
			g.SetCursor(g.cursor + g.cols)
		}
	case key.Matches(keyMsg, GridKeys.Up):
		if g.cursor-g.cols >= 0 {
			g.SetCursor(g.cursor - g.cols)
		}
	case key.Matches(keyMsg, GridKeys.Home):
		g.cursor = 0
		g.offset = 0
	case key.Matches(keyMsg, GridKeys.End):
		g.SetCursor(count - 1)
	case key.Matches(keyMsg, GridKeys.HalfDown):
		g.SetCursor(g.cursor + g.cols*max(1, g.rows/2))
	case key.Matches(keyMsg, GridKeys.HalfUp):
		g.SetCursor(g.cursor - g.cols*max(1, g.rows/2))
	}

	return g, nil
}

// View renders the component
func (g Grid) View() string {
	count := g.itemCount()
	if count == 0 {
		emptyMsg := "No movies to show"
		if g.filterActive && g.filterQuery != "" {
			emptyMsg = "No matches"
		}
		content := styles.DimStyle.Render(emptyMsg)
		if g.filterActive {
			content += "\n" + g.renderFilterBar()
		}
		return lipgloss.Place(g.width, g.height, lipgloss.Center, lipgloss.Center, content)
	}

	first := g.offset * g.cols
	last := min(count, (g.offset+g.rows)*g.cols)

	var rowViews []string
	for start := first; start < last; start += g.cols {
		var cells []string
		for i := start; i < min(start+g.cols, last); i++ {
			cells = append(cells, g.renderCell(i))
		}
		rowViews = append(rowViews, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	// ALWAYS reserve space for scroll indicators to prevent layout shifts
	header := " "
	if g.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if last < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	parts := []string{header}
	parts = append(parts, rowViews...)
	parts = append(parts, footer)
	if g.filterActive {
		parts = append(parts, g.renderFilterBar())
	}

	return lipgloss.NewStyle().
		Width(g.width).
		MaxHeight(g.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderCell renders the movie at cursor position i
func (g Grid) renderCell(i int) string {
	idx := g.mapIndex(i)
	movie := g.movies[idx]
	selected := i == g.cursor && g.focused

	innerWidth := CellWidth - cellFrameWidth

	titleStyle := styles.SubtitleStyle
	if selected {
		titleStyle = styles.TitleStyle
	}
	title := styles.Truncate(movie.Title, innerWidth)
	var titleLine string
	if matched := g.matchedIdx[idx]; len(matched) > 0 && title == movie.Title {
		titleLine = styles.RenderHighlighted(title, matched, titleStyle)
	} else {
		titleLine = titleStyle.Render(title)
	}

	var meta []string
	if year := movie.Year(); year > 0 {
		meta = append(meta, fmt.Sprintf("%d", year))
	}
	if rating := movie.FormattedRating(); rating != "" {
		meta = append(meta, styles.AccentStyle.Render(styles.StarChar)+styles.DimStyle.Render(" "+rating))
	}
	metaLine := styles.DimStyle.Render(strings.Join(meta, styles.DimStyle.Render(" · ")))
	if len(meta) == 0 {
		metaLine = styles.DimStyle.Render("-")
	}

	style := styles.GridCellStyle
	if selected {
		style = styles.GridCellSelectedStyle
	}
	return style.Width(innerWidth + 2).Render(titleLine + "\n" + metaLine)
}

// renderFilterBar renders the filter input with a match count
func (g Grid) renderFilterBar() string {
	input := g.filterInput.View()
	if g.filterQuery == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", g.itemCount(), len(g.movies)))
}
