package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeMovies prints a styled table on a terminal, TSV otherwise
func writeMovies(w io.Writer, movies []domain.Movie) error {
	if isTerminal(w) {
		return writeTable(w, movies)
	}
	return writeTSV(w, movies)
}

// writeTSV writes one tab-separated line per movie: id, title, year, rating, votes
func writeTSV(w io.Writer, movies []domain.Movie) error {
	for _, m := range movies {
		_, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
			m.ID, tsvField(m.Title), yearString(m), m.FormattedRating(), m.VoteCount)
		if err != nil {
			return err
		}
	}
	return nil
}

func tsvField(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}

func yearString(m domain.Movie) string {
	if year := m.Year(); year > 0 {
		return strconv.Itoa(year)
	}
	return ""
}

// writeTable renders movies as a bordered lipgloss table
func writeTable(w io.Writer, movies []domain.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Foreground(styles.Amber).Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	dim := cell.Foreground(styles.DimGray)

	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rating := m.FormattedRating()
		if rating != "" {
			rating = styles.StarChar + " " + rating
		}
		rows = append(rows, []string{
			strconv.Itoa(m.ID),
			styles.Truncate(m.Title, 50),
			yearString(m),
			rating,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(styles.DimGray)).
		Headers("ID", "TITLE", "YEAR", "RATING").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return dim
			default:
				return cell
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
