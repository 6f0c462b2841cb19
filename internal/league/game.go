package league

import (
	"time"

	"github.com/google/uuid"
)

type GameStatus string

const (
	GameScheduled GameStatus = "SCHEDULED"
	GameFinal     GameStatus = "FINAL"
)

type Game struct {
	ID      uuid.UUID `db:"id"`
	RoundID uuid.UUID `db:"round_id"`

	HomeTeam string `db:"home_team"`
	AwayTeam string `db:"away_team"`

	StartAt time.Time `db:"start_at"`
	// No picks may be created or changed once this has passed.
	LockAt time.Time `db:"lock_at"`

	Status    GameStatus `db:"status"`
	HomeScore *int       `db:"home_score"`
	AwayScore *int       `db:"away_score"`

	CreatedAt time.Time `db:"created_at"`

	// Populated by the store when loading games with their picks.
	Picks []Pick `db:"-"`
}

// HasFinalScore reports whether the game is finished with both scores
// recorded. Games for which this is false contribute nothing to any
// leaderboard.
func (g *Game) HasFinalScore() bool {
	return g.Status == GameFinal && g.HomeScore != nil && g.AwayScore != nil
}

func (g *Game) Locked(now time.Time) bool {
	return now.After(g.LockAt)
}
