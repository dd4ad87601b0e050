package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/search"
)

// Command factories for async operations

// MountCmd runs the one-time initial search
func MountCmd(o *search.Orchestrator) tea.Cmd {
	return func() tea.Msg {
		if !o.Mount(context.Background()) {
			return nil
		}
		return SearchDoneMsg{Query: o.Snapshot().Query}
	}
}

// SubmitCmd runs a user search to completion.
// No timeout: the loader stays up until the gateway answers.
func SubmitCmd(o *search.Orchestrator, query string) tea.Cmd {
	return func() tea.Msg {
		o.Submit(context.Background(), query)
		return SearchDoneMsg{Query: query}
	}
}

// WaitForStateCmd blocks until the orchestrator publishes a snapshot
func WaitForStateCmd(states <-chan search.State) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return nil
		}
		return StateChangedMsg{State: state}
	}
}

// WaitForNotificationCmd blocks until a notification arrives
func WaitForNotificationCmd(notes <-chan domain.Notification) tea.Cmd {
	return func() tea.Msg {
		note, ok := <-notes
		if !ok {
			return nil
		}
		return NotificationMsg{Notification: note}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status id after a delay
func ClearStatusCmd(id int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
