package league

import "github.com/google/uuid"

// Team carries display metadata only; games reference teams by name.
type Team struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	Logo string    `db:"logo"`
}
