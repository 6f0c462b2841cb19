package league

import (
	"time"

	"github.com/google/uuid"
)

// SuperBowlRoundName is the round name (case-insensitive, trimmed) that
// doubles every point earned in it.
const SuperBowlRoundName = "super bowl"

type Round struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	SortOrder int       `db:"sort_order"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`

	// Populated by the store when loading a round with its games.
	Games []Game `db:"-"`
}
