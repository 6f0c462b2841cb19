package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vicentesantos13/playoffs-challenge/internal/leaderboard"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/store"
)

func pointsFor(t *testing.T, rows []leaderboard.Row, name string) int {
	t.Helper()

	for _, row := range rows {
		if row.Name == name {
			return row.Points
		}
	}
	t.Fatalf("no leaderboard row for %q", name)
	return 0
}

func TestLeaderboardModes(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	admin := adminCtx(t, database)
	adminSvc := newAdminService(database)
	pickStore := store.NewPickStore(database)
	svc := NewLeaderboardService(database, store.NewRoundStore(database), pickStore)

	roundID, err := adminSvc.CreateRound(admin, "Wild Card", 1)
	require.NoError(t, err)
	gameID, err := adminSvc.CreateGame(admin, newGameInput(roundID))
	require.NoError(t, err)

	ana := newParticipant(t, database, "Ana", false)
	now := time.Now().UTC()
	err = pickStore.UpsertPick(admin, &league.Pick{
		ID:            uuid.New(),
		ParticipantID: ana.ID,
		GameID:        gameID,
		PickWinner:    league.WinnerHome,
		PickMargin:    league.M5,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)

	require.NoError(t, adminSvc.FinalizeGame(admin, gameID, 27, 24))

	// Right after finalization the cached fast path and the authoritative
	// recompute agree.
	totals, err := svc.Totals(admin, nil)
	require.NoError(t, err)
	require.Len(t, totals, 2, "Ana plus the pick-less admin")
	assert.Equal(t, "Ana", totals[0].Name)
	assert.Equal(t, 2, totals[0].Points)

	standings, err := svc.Standings(admin)
	require.NoError(t, err)
	require.Len(t, standings.TotalRows, 1)
	assert.Equal(t, 2, standings.TotalRows[0].Points)
	require.Len(t, standings.ByRound, 1)
	assert.Equal(t, roundID, standings.ByRound[0].RoundID)

	// Corrupt the cache: Totals follows the stale column, Standings keeps
	// answering from the actual score.
	_, err = database.Exec("UPDATE picks SET points = 0")
	require.NoError(t, err)

	totals, err = svc.Totals(admin, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, pointsFor(t, totals, "Ana"))

	standings, err = svc.Standings(admin)
	require.NoError(t, err)
	assert.Equal(t, 2, standings.TotalRows[0].Points)
}

func TestTotalsFilteredByRound(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	admin := adminCtx(t, database)
	adminSvc := newAdminService(database)
	pickStore := store.NewPickStore(database)
	svc := NewLeaderboardService(database, store.NewRoundStore(database), pickStore)

	round1, err := adminSvc.CreateRound(admin, "Wild Card", 1)
	require.NoError(t, err)
	round2, err := adminSvc.CreateRound(admin, "Divisional", 2)
	require.NoError(t, err)
	game1, err := adminSvc.CreateGame(admin, newGameInput(round1))
	require.NoError(t, err)
	game2, err := adminSvc.CreateGame(admin, newGameInput(round2))
	require.NoError(t, err)

	ana := newParticipant(t, database, "Ana", false)
	now := time.Now().UTC()
	for _, gameID := range []uuid.UUID{game1, game2} {
		err := pickStore.UpsertPick(admin, &league.Pick{
			ID:            uuid.New(),
			ParticipantID: ana.ID,
			GameID:        gameID,
			PickWinner:    league.WinnerHome,
			PickMargin:    league.M5,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		require.NoError(t, err)
	}

	require.NoError(t, adminSvc.FinalizeGame(admin, game1, 27, 24)) // 2 points
	require.NoError(t, adminSvc.FinalizeGame(admin, game2, 20, 27)) // 0 points

	all, err := svc.Totals(admin, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, pointsFor(t, all, "Ana"))

	perRound, err := svc.Totals(admin, &round2)
	require.NoError(t, err)
	assert.Equal(t, 0, pointsFor(t, perRound, "Ana"))
}
