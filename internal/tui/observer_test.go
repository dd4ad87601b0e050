package tui

import (
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/stretchr/testify/assert"
)

func TestChannelObserver_LatestWins(t *testing.T) {
	o := NewChannelObserver()
	o.OnStateChange(search.State{Version: 1})
	o.OnStateChange(search.State{Version: 2})

	got := <-o.States()
	assert.Equal(t, uint64(2), got.Version)

	select {
	case s := <-o.States():
		t.Fatalf("unexpected extra snapshot %d", s.Version)
	default:
	}
}

func TestChannelObserver_KeepsNewerPending(t *testing.T) {
	o := NewChannelObserver()
	o.OnStateChange(search.State{Version: 7})
	o.OnStateChange(search.State{Version: 6})

	got := <-o.States()
	assert.Equal(t, uint64(7), got.Version)
}

func TestChannelNotifier_DoesNotBlockWhenFull(t *testing.T) {
	n := NewChannelNotifier()
	for i := 0; i < notificationBuffer+5; i++ {
		n.Notify(domain.Notification{Message: "x"})
	}

	assert.Len(t, n.Notifications(), notificationBuffer)
}
