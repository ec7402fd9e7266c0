package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
type Mock struct {
	mu sync.Mutex

	CheckInCount        int
	PlayersCreatedCount int
	ExportFailureCount  int
	NotifFailedCount    int
	StartupTime         float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncCheckIns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckInCount++
}

func (m *Mock) IncPlayersCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayersCreatedCount++
}

func (m *Mock) IncExportFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExportFailureCount++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifFailedCount++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = seconds
}
