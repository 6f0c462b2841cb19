package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/store"
)

func newPickService(database *sqlx.DB, now time.Time) *PickService {
	svc := NewPickService(database, store.NewGameStore(database), store.NewPickStore(database))
	svc.now = func() time.Time { return now }
	return svc
}

func TestUpsertPickHappyPath(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	admin := adminCtx(t, database)
	adminSvc := newAdminService(database)
	roundID, err := adminSvc.CreateRound(admin, "Wild Card", 1)
	require.NoError(t, err)
	gameID, err := adminSvc.CreateGame(admin, newGameInput(roundID))
	require.NoError(t, err)

	ana := newParticipant(t, database, "Ana", false)
	ctx := sessionCtx(ana)
	svc := newPickService(database, time.Now().UTC())

	require.NoError(t, svc.UpsertPick(ctx, gameID, league.WinnerHome, league.M10))
	// Resubmitting replaces the previous pick.
	require.NoError(t, svc.UpsertPick(ctx, gameID, league.WinnerAway, league.M25))

	myPicks, err := svc.PicksForParticipant(ctx)
	require.NoError(t, err)
	require.Len(t, myPicks, 1)
	assert.Equal(t, league.WinnerAway, myPicks[gameID].PickWinner)
	assert.Equal(t, league.M25, myPicks[gameID].PickMargin)
}

func TestUpsertPickRequiresSession(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	svc := newPickService(database, time.Now().UTC())
	err := svc.UpsertPick(context.Background(), uuid.New(), league.WinnerHome, league.M5)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpsertPickRejectedAfterLock(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	admin := adminCtx(t, database)
	adminSvc := newAdminService(database)
	roundID, err := adminSvc.CreateRound(admin, "Wild Card", 1)
	require.NoError(t, err)
	gameID, err := adminSvc.CreateGame(admin, newGameInput(roundID))
	require.NoError(t, err)

	ana := newParticipant(t, database, "Ana", false)
	ctx := sessionCtx(ana)

	// Kickoff in newGameInput is 24h out; pretend it is two days later.
	svc := newPickService(database, time.Now().UTC().Add(48*time.Hour))
	err = svc.UpsertPick(ctx, gameID, league.WinnerHome, league.M5)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestUpsertPickRejectedOnFinalGame(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	admin := adminCtx(t, database)
	adminSvc := newAdminService(database)
	roundID, err := adminSvc.CreateRound(admin, "Wild Card", 1)
	require.NoError(t, err)
	gameID, err := adminSvc.CreateGame(admin, newGameInput(roundID))
	require.NoError(t, err)
	require.NoError(t, adminSvc.FinalizeGame(admin, gameID, 21, 14))

	ana := newParticipant(t, database, "Ana", false)
	svc := newPickService(database, time.Now().UTC())

	err = svc.UpsertPick(sessionCtx(ana), gameID, league.WinnerHome, league.M5)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestUpsertPickValidatesVocabulary(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	ana := newParticipant(t, database, "Ana", false)
	svc := newPickService(database, time.Now().UTC())

	var vErr *ValidationError
	err := svc.UpsertPick(sessionCtx(ana), uuid.New(), league.Winner("DRAW"), league.M5)
	assert.ErrorAs(t, err, &vErr)

	err = svc.UpsertPick(sessionCtx(ana), uuid.New(), league.WinnerHome, league.MarginBucket("M7"))
	assert.ErrorAs(t, err, &vErr)
}

func TestUpsertPickUnknownGame(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	ana := newParticipant(t, database, "Ana", false)
	svc := newPickService(database, time.Now().UTC())

	err := svc.UpsertPick(sessionCtx(ana), uuid.New(), league.WinnerHome, league.M5)
	assert.Error(t, err)
}
