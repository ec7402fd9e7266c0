package report

import "sync"

// MockExporter is a mock implementation of the Exporter interface for
// testing. It is safe for concurrent use.
type MockExporter struct {
	mu sync.Mutex

	RefreshFunc func() error

	RefreshCalls int
}

var _ Exporter = (*MockExporter)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockExporter {
	return &MockExporter{}
}

func (m *MockExporter) Refresh() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshCalls++
	if m.RefreshFunc != nil {
		return m.RefreshFunc()
	}
	return nil
}

func (m *MockExporter) Path() string {
	return "mock.xlsx"
}

// Calls returns how many times Refresh has been invoked.
func (m *MockExporter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.RefreshCalls
}
