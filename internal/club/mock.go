package club

import "sync"

// MockStore is a mock implementation of the PlayerStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreatePlayerFunc func(name string, age, tenure int) (Player, error)
	GetPlayerFunc    func(id int64) (Player, error)
	ListPlayersFunc  func() ([]Player, error)
	UpdatePlayerFunc func(id int64, name string, age, tenure int) error
	DeletePlayerFunc func(id int64) error

	// Call records
	CreatePlayerCalls []struct {
		Name        string
		Age, Tenure int
	}
	GetPlayerCalls    []int64
	UpdatePlayerCalls []struct {
		ID          int64
		Name        string
		Age, Tenure int
	}
	DeletePlayerCalls []int64
}

var _ PlayerStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = nil
	m.GetPlayerCalls = nil
	m.UpdatePlayerCalls = nil
	m.DeletePlayerCalls = nil
}

func (m *MockStore) CreatePlayer(name string, age, tenure int) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = append(m.CreatePlayerCalls, struct {
		Name        string
		Age, Tenure int
	}{name, age, tenure})
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(name, age, tenure)
	}
	return Player{}, nil
}

func (m *MockStore) GetPlayer(id int64) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerCalls = append(m.GetPlayerCalls, id)
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(id)
	}
	return Player{}, nil
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) UpdatePlayer(id int64, name string, age, tenure int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdatePlayerCalls = append(m.UpdatePlayerCalls, struct {
		ID          int64
		Name        string
		Age, Tenure int
	}{id, name, age, tenure})
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(id, name, age, tenure)
	}
	return nil
}

func (m *MockStore) DeletePlayer(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, id)
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(id)
	}
	return nil
}
