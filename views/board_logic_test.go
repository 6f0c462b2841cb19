package views

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/utils"
)

func TestPrepareBoardDataNilRound(t *testing.T) {
	games, err := PrepareBoardData(nil)
	require.NoError(t, err)
	assert.Nil(t, games)
}

func TestPrepareBoardDataScoresOnlyFinalGames(t *testing.T) {
	anaPick := league.Pick{
		ID:              uuid.New(),
		ParticipantID:   uuid.New(),
		PickWinner:      league.WinnerHome,
		PickMargin:      league.M5,
		ParticipantName: "Ana",
	}

	round := &league.Round{
		ID:   uuid.New(),
		Name: "Wild Card",
		Games: []league.Game{
			{
				ID:        uuid.New(),
				Status:    league.GameFinal,
				HomeScore: utils.Ptr(27),
				AwayScore: utils.Ptr(24),
				Picks:     []league.Pick{anaPick},
			},
			{
				ID:     uuid.New(),
				Status: league.GameScheduled,
				Picks:  []league.Pick{anaPick},
			},
		},
	}

	games, err := PrepareBoardData(round)
	require.NoError(t, err)
	require.Len(t, games, 2)

	final := games[0].Picks[0]
	assert.True(t, final.Scored)
	assert.True(t, final.WinnerCorrect)
	assert.True(t, final.MarginCorrect)
	assert.Equal(t, 2, final.Points)

	pending := games[1].Picks[0]
	assert.False(t, pending.Scored)
	assert.Zero(t, pending.Points)
}

// The board re-derives correctness from scores, so it disagrees with stale
// cached pick columns on purpose.
func TestPrepareBoardDataIgnoresCachedColumns(t *testing.T) {
	stale := league.Pick{
		ID:            uuid.New(),
		ParticipantID: uuid.New(),
		PickWinner:    league.WinnerAway,
		PickMargin:    league.M5,
		// Cached columns claim a perfect pick.
		WinnerCorrect: true,
		MarginCorrect: true,
		Points:        2,
	}

	round := &league.Round{
		ID:   uuid.New(),
		Name: "Wild Card",
		Games: []league.Game{{
			ID:        uuid.New(),
			Status:    league.GameFinal,
			HomeScore: utils.Ptr(27),
			AwayScore: utils.Ptr(24),
			Picks:     []league.Pick{stale},
		}},
	}

	games, err := PrepareBoardData(round)
	require.NoError(t, err)

	got := games[0].Picks[0]
	assert.True(t, got.Scored)
	assert.False(t, got.WinnerCorrect)
	assert.Equal(t, 0, got.Points)
}
