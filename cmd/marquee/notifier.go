package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// streamNotifier prints notifications as lines, colored when w is a terminal
type streamNotifier struct {
	mu         sync.Mutex
	w          io.Writer
	infoStyle  lipgloss.Style
	errorStyle lipgloss.Style
	color      bool
}

func newStreamNotifier(w io.Writer) *streamNotifier {
	r := lipgloss.NewRenderer(w)
	return &streamNotifier{
		w:          w,
		infoStyle:  r.NewStyle().Foreground(styles.Amber),
		errorStyle: r.NewStyle().Foreground(styles.Red).Bold(true),
		color:      isTerminal(w),
	}
}

// Notify implements domain.Notifier
func (n *streamNotifier) Notify(note domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	prefix := note.Level.String() + ": "
	if n.color {
		style := n.infoStyle
		if note.Level == domain.LevelError {
			style = n.errorStyle
		}
		prefix = style.Render(prefix)
	}
	fmt.Fprintln(n.w, prefix+note.Message)
}
