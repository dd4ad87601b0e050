package domain

// NotificationLevel is the severity of a transient notification
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelError
)

// String returns the level name
func (l NotificationLevel) String() string {
	switch l {
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a short-lived, non-blocking message for the user
type Notification struct {
	Level   NotificationLevel
	Message string
}

// Notifier displays transient notifications. Fire-and-forget.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(n Notification)

// Notify calls f(n)
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}
