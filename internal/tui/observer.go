package tui

import (
	"sync"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/search"
)

// ChannelObserver adapts search.Observer to a channel for Bubble Tea.
// Only the newest snapshot matters, so a pending unread one is replaced.
type ChannelObserver struct {
	mu sync.Mutex
	ch chan search.State
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver() *ChannelObserver {
	return &ChannelObserver{ch: make(chan search.State, 1)}
}

// OnStateChange publishes state, dropping an older unread snapshot.
// Emits can race, so an unread snapshot with a higher version is kept instead.
func (o *ChannelObserver) OnStateChange(state search.State) {
	o.mu.Lock()
	defer o.mu.Unlock()

	select {
	case pending := <-o.ch:
		if pending.Version > state.Version {
			state = pending
		}
	default:
	}
	// Sole sender under the lock, so the buffer has room
	o.ch <- state
}

// States returns the receive side.
func (o *ChannelObserver) States() <-chan search.State {
	return o.ch
}

// notificationBuffer is how many notifications may queue before new ones are dropped
const notificationBuffer = 16

// ChannelNotifier adapts domain.Notifier to a channel for Bubble Tea.
type ChannelNotifier struct {
	ch chan domain.Notification
}

// NewChannelNotifier creates a new channel-based notifier.
func NewChannelNotifier() *ChannelNotifier {
	return &ChannelNotifier{ch: make(chan domain.Notification, notificationBuffer)}
}

// Notify sends the notification to the channel (non-blocking if full).
func (n *ChannelNotifier) Notify(note domain.Notification) {
	select {
	case n.ch <- note:
	default: // Non-blocking if channel full
	}
}

// Notifications returns the receive side.
func (n *ChannelNotifier) Notifications() <-chan domain.Notification {
	return n.ch
}
