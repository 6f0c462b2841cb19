package league

import (
	"time"

	"github.com/google/uuid"
)

type ContextKey string

const ParticipantKey ContextKey = "participant"

type Participant struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`

	// Nil for participants created through an OAuth provider.
	PinHash *string `db:"pin_hash"`

	IsAdmin bool `db:"is_admin"`
	// Display flag only, never used in point computation.
	IsPro bool `db:"is_pro"`

	Provider   *string `db:"provider"`
	ProviderID *string `db:"provider_id"`

	CreatedAt time.Time `db:"created_at"`
}
