package tui

import (
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/search"
)

// Message types for the TUI

// StateChangedMsg carries a new search state snapshot
type StateChangedMsg struct {
	State search.State
}

// NotificationMsg carries a transient notification to show in the footer
type NotificationMsg struct {
	Notification domain.Notification
}

// SearchDoneMsg signals that a submitted search finished, settle delay included
type SearchDoneMsg struct {
	Query string
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status message it was scheduled for
type ClearStatusMsg struct {
	ID int
}
