package league

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Winner is the side a pick predicts to win. Closed vocabulary: anything
// else coming out of the database is a data-integrity error, not a default.
type Winner string

const (
	WinnerHome Winner = "HOME"
	WinnerAway Winner = "AWAY"
)

func ParseWinner(s string) (Winner, error) {
	switch Winner(s) {
	case WinnerHome, WinnerAway:
		return Winner(s), nil
	}
	return "", fmt.Errorf("invalid winner %q", s)
}

func (w *Winner) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return fmt.Errorf("scan winner: %w", err)
	}
	parsed, err := ParseWinner(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

func (w Winner) Value() (driver.Value, error) {
	if _, err := ParseWinner(string(w)); err != nil {
		return nil, err
	}
	return string(w), nil
}

// MarginBucket is a predicted absolute score differential rounded up to the
// nearest multiple of 5, with 30+ as an open-ended top bucket.
type MarginBucket string

const (
	M5      MarginBucket = "M5"
	M10     MarginBucket = "M10"
	M15     MarginBucket = "M15"
	M20     MarginBucket = "M20"
	M25     MarginBucket = "M25"
	M30     MarginBucket = "M30"
	M30Plus MarginBucket = "M30PLUS"
)

// MarginBuckets lists every bucket in ascending order, for pick forms.
var MarginBuckets = []MarginBucket{M5, M10, M15, M20, M25, M30, M30Plus}

func ParseMarginBucket(s string) (MarginBucket, error) {
	switch MarginBucket(s) {
	case M5, M10, M15, M20, M25, M30, M30Plus:
		return MarginBucket(s), nil
	}
	return "", fmt.Errorf("invalid margin bucket %q", s)
}

// Label is the short form shown on pick forms ("5", "10", ... "30+").
func (m MarginBucket) Label() string {
	if m == M30Plus {
		return "30+"
	}
	return string(m[1:])
}

func (m *MarginBucket) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return fmt.Errorf("scan margin bucket: %w", err)
	}
	parsed, err := ParseMarginBucket(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m MarginBucket) Value() (driver.Value, error) {
	if _, err := ParseMarginBucket(string(m)); err != nil {
		return nil, err
	}
	return string(m), nil
}

func scanString(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("unexpected type %T", src)
}

type Pick struct {
	ID            uuid.UUID `db:"id"`
	ParticipantID uuid.UUID `db:"participant_id"`
	GameID        uuid.UUID `db:"game_id"`

	PickWinner Winner       `db:"pick_winner"`
	PickMargin MarginBucket `db:"pick_margin"`

	// Cached scoring results, written only by game finalization. Readers
	// that need authoritative values recompute from the game score instead.
	WinnerCorrect bool `db:"winner_correct"`
	MarginCorrect bool `db:"margin_correct"`
	Points        int  `db:"points"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Filled by joined queries only; not columns of the picks table.
	ParticipantName  string `db:"participant_name"`
	ParticipantIsPro bool   `db:"participant_is_pro"`
}
