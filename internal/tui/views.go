package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	frames := styles.SpinnerFrames
	return styles.SpinnerStyle.Render(frames[frame%len(frames)])
}

// renderLoader renders the centered loading indicator shown while a search is in flight
func renderLoader(query string, frame, width, height int) string {
	text := "Searching..."
	if query != "" {
		text = fmt.Sprintf("Searching for %q...", styles.Truncate(query, max(10, width/2)))
	}
	content := RenderSpinner(frame) + " " + styles.DimStyle.Render(text)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderErrorBanner renders the banner that replaces the grid after a failed search
func renderErrorBanner(width, height int) string {
	lines := []string{
		styles.ErrorStyle.Bold(true).Render("Could not load movies"),
		"",
		styles.DimStyle.Render("The movie database did not answer."),
		styles.AccentStyle.Render("r") + styles.DimStyle.Render(" retry  ") +
			styles.AccentStyle.Render("/") + styles.DimStyle.Render(" new search"),
	}
	banner := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Red).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, banner)
}

// renderHints renders "key desc" pairs separated by two spaces
func renderHints(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, styles.AccentStyle.Render(pairs[i])+styles.DimStyle.Render(" "+pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

// helpColumnWidth is the width of one help column, key and description
const helpColumnWidth = 32

// helpText builds the help screen body from the live key bindings
func helpText() string {
	nav := components.GridKeys
	left := helpSection("NAVIGATION",
		nav.Up, nav.Down, nav.Left, nav.Right,
		nav.Home, nav.End, nav.HalfDown, nav.HalfUp)
	right := helpSection("ACTIONS",
		Keys.Search, Keys.Open, Keys.Filter, Keys.Reload,
		Keys.Escape, Keys.Help, Keys.Quit)

	var b strings.Builder
	b.WriteString("\n")
	for i := 0; i < max(len(left), len(right)); i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		b.WriteString(styles.Pad(l, helpColumnWidth) + r + "\n")
	}
	b.WriteString("\n  Tab completes a search from history; j/k scroll the details.\n")
	b.WriteString("\nPress any key to return...\n")
	return b.String()
}

// helpSection renders a title line followed by one "key  description" line per binding
func helpSection(title string, bindings ...key.Binding) []string {
	lines := []string{title}
	for _, binding := range bindings {
		h := binding.Help()
		lines = append(lines, fmt.Sprintf("  %-10s %s", h.Key, h.Desc))
	}
	return lines
}
