package notifier

import "sync"

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendCheckInNotificationFunc func(name, code, checkInTime string) error

	// Call records
	SendCheckInNotificationCalls []struct {
		Name, Code, Time string
	}
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCheckInNotificationCalls = nil
}

func (m *Mock) SendCheckInNotification(name, code, checkInTime string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCheckInNotificationCalls = append(m.SendCheckInNotificationCalls, struct {
		Name, Code, Time string
	}{name, code, checkInTime})
	if m.SendCheckInNotificationFunc != nil {
		return m.SendCheckInNotificationFunc(name, code, checkInTime)
	}
	return nil
}
