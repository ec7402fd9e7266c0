package club

// PlayerStore defines the interface for managing the player roster.
type PlayerStore interface {
	// CreatePlayer registers a new player and assigns a fresh unique
	// 4-digit code. The returned Player carries the generated id and code.
	CreatePlayer(name string, age, tenure int) (Player, error)
	// GetPlayer returns the player with the given id.
	GetPlayer(id int64) (Player, error)
	// ListPlayers returns all players in insertion order (id ascending).
	ListPlayers() ([]Player, error)
	// UpdatePlayer overwrites name, age and tenure. Id and code never change.
	UpdatePlayer(id int64, name string, age, tenure int) error
	// DeletePlayer removes the player and every attendance record
	// referencing it, as one atomic unit.
	DeletePlayer(id int64) error
}
