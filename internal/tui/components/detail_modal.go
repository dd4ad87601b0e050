package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

const (
	maxModalWidth = 72
	minModalWidth = 30
)

// DetailModal shows the details of the selected movie
type DetailModal struct {
	movie        *domain.Movie
	imageBaseURL string
	width        int
	height       int
	offset       int // overview scroll offset
}

// NewDetailModal creates a detail modal that builds poster links from imageBaseURL
func NewDetailModal(imageBaseURL string) DetailModal {
	return DetailModal{imageBaseURL: imageBaseURL}
}

// SetMovie sets the movie to display; nil hides the modal
func (d *DetailModal) SetMovie(movie *domain.Movie) {
	if movie == nil || d.movie == nil || movie.ID != d.movie.ID {
		d.offset = 0
	}
	d.movie = movie
}

// IsVisible returns whether a movie is being shown
func (d DetailModal) IsVisible() bool {
	return d.movie != nil
}

// SetSize sets the available screen size
func (d *DetailModal) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Update scrolls the overview
func (d DetailModal) Update(msg tea.Msg) (DetailModal, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, GridKeys.Down):
			d.offset++
		case key.Matches(keyMsg, GridKeys.Up):
			d.offset = max(0, d.offset-1)
		}
	}
	return d, nil
}

// contentWidth is the text width inside the modal frame
func (d DetailModal) contentWidth() int {
	frameW, _ := styles.ModalStyle.GetFrameSize()
	w := min(maxModalWidth, d.width-4) - frameW
	return max(minModalWidth, w)
}

// View renders the modal
func (d DetailModal) View() string {
	if d.movie == nil {
		return ""
	}
	m := *d.movie
	width := d.contentWidth()
	bg := lipgloss.NewStyle().Background(styles.SlateDark).Width(width)

	var header []string
	header = append(header, styles.ModalTitleStyle.Render(styles.Truncate(m.DisplayTitle(), width)))
	if m.OriginalTitle != "" && m.OriginalTitle != m.Title {
		header = append(header, styles.SubtitleStyle.Render(styles.Truncate(m.OriginalTitle, width)))
	}
	header = append(header, "")
	header = append(header, renderFacts(m)...)
	if url := m.PosterURL(d.imageBaseURL); url != "" {
		header = append(header, styles.DimStyle.Render("Poster  ")+styles.SubtitleStyle.Render(styles.Truncate(url, width-8)))
	}
	header = append(header, "")

	overview := m.Overview
	if overview == "" {
		overview = "No overview available."
	}
	body := strings.Split(wordWrap(overview, width), "\n")

	// Keep the modal inside the screen: header + body window + footer hint
	_, frameH := styles.ModalStyle.GetFrameSize()
	available := max(3, d.height-frameH-len(header)-4)
	offset := min(d.offset, max(0, len(body)-available))
	end := min(len(body), offset+available)
	visible := body[offset:end]

	lines := append([]string{}, header...)
	for _, line := range visible {
		lines = append(lines, styles.SubtitleStyle.Render(line))
	}
	lines = append(lines, "")

	hint := styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" close")
	if len(body) > available {
		hint += styles.HelpDescStyle.Render("  ") + styles.HelpKeyStyle.Render("j/k") + styles.HelpDescStyle.Render(" scroll")
	}
	lines = append(lines, hint)

	for i, line := range lines {
		lines[i] = bg.Render(line)
	}

	return styles.ModalStyle.Render(strings.Join(lines, "\n"))
}

// renderFacts renders the label/value rows under the title
func renderFacts(m domain.Movie) []string {
	label := func(s string) string { return styles.DimStyle.Render(fmt.Sprintf("%-8s", s)) }
	value := styles.SubtitleStyle.Render

	var rows []string
	if m.ReleaseDate != "" {
		rows = append(rows, label("Release")+value(m.ReleaseDate))
	}
	if rating := m.FormattedRating(); rating != "" {
		rows = append(rows, label("Rating")+styles.AccentStyle.Render(styles.StarChar+" "+rating)+
			styles.DimStyle.Render(fmt.Sprintf(" (%d votes)", m.VoteCount)))
	} else {
		rows = append(rows, label("Rating")+styles.DimStyle.Render("not rated"))
	}
	if m.OriginalLanguage != "" {
		rows = append(rows, label("Language")+value(strings.ToUpper(m.OriginalLanguage)))
	}
	if m.Adult {
		rows = append(rows, label("")+styles.ErrorStyle.Render("Adult"))
	}
	return rows
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lineLen := 0

	for i, word := range strings.Fields(text) {
		wordLen := len([]rune(word))

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
