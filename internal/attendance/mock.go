package attendance

import "sync"

// MockRecorder is a mock implementation of the Recorder interface for
// testing. It is safe for concurrent use.
type MockRecorder struct {
	mu sync.Mutex

	// Spies for method calls
	CheckInFunc         func(code string) (CheckIn, error)
	VerifyFunc          func(code string) (Verification, error)
	RecentAttendeesFunc func(limit int) ([]Attendee, error)

	// Call records
	CheckInCalls         []string
	VerifyCalls          []string
	RecentAttendeesCalls []int
}

var _ Recorder = (*MockRecorder)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockRecorder {
	return &MockRecorder{}
}

// Reset clears all call records.
func (m *MockRecorder) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckInCalls = nil
	m.VerifyCalls = nil
	m.RecentAttendeesCalls = nil
}

func (m *MockRecorder) CheckIn(code string) (CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckInCalls = append(m.CheckInCalls, code)
	if m.CheckInFunc != nil {
		return m.CheckInFunc(code)
	}
	return CheckIn{}, nil
}

func (m *MockRecorder) Verify(code string) (Verification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VerifyCalls = append(m.VerifyCalls, code)
	if m.VerifyFunc != nil {
		return m.VerifyFunc(code)
	}
	return Verification{Code: code}, nil
}

func (m *MockRecorder) RecentAttendees(limit int) ([]Attendee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecentAttendeesCalls = append(m.RecentAttendeesCalls, limit)
	if m.RecentAttendeesFunc != nil {
		return m.RecentAttendeesFunc(limit)
	}
	return nil, nil
}
