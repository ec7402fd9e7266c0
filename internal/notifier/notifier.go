package notifier

// Notifier defines a high-level interface for announcing business
// events. This decouples the rest of the application from the specific
// notification provider (e.g., Slack).
type Notifier interface {
	// SendCheckInNotification announces that a player checked in at the
	// given time. Failures are the caller's to swallow: a notification
	// must never fail the check-in that triggered it.
	SendCheckInNotification(name, code, checkInTime string) error
}

// Noop is a Notifier that does nothing. Used when no provider is
// configured.
type Noop struct{}

var _ Notifier = (*Noop)(nil)

// NewNoop creates a new Noop notifier.
func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) SendCheckInNotification(name, code, checkInTime string) error {
	return nil
}
