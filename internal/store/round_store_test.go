package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vicentesantos13/playoffs-challenge/internal/db"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	err = db.RunMigrationsFrom(database.DB, "file://../../migrations")
	require.NoError(t, err, "Failed to apply migrations")

	return database
}

func createTestRound(t *testing.T, database *sqlx.DB, name string, order int) *league.Round {
	t.Helper()

	round := &league.Round{ID: uuid.New(), Name: name, SortOrder: order}
	require.NoError(t, NewRoundStore(database).CreateRound(context.Background(), round))
	return round
}

func createTestGame(t *testing.T, database *sqlx.DB, roundID uuid.UUID) *league.Game {
	t.Helper()

	now := time.Now().UTC()
	game := &league.Game{
		ID:       uuid.New(),
		RoundID:  roundID,
		HomeTeam: "Philadelphia Eagles",
		AwayTeam: "Buffalo Bills",
		StartAt:  now.Add(24 * time.Hour),
		LockAt:   now.Add(24 * time.Hour),
		Status:   league.GameScheduled,
	}
	require.NoError(t, NewGameStore(database).CreateGame(context.Background(), game))
	return game
}

func createTestParticipant(t *testing.T, database *sqlx.DB, name string) *league.Participant {
	t.Helper()

	participant := &league.Participant{ID: uuid.New(), Name: name}
	require.NoError(t, NewParticipantStore(database).CreateParticipant(context.Background(), participant))
	return participant
}

func TestCreateAndGetRound(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	store := NewRoundStore(database)
	round := createTestRound(t, database, "Wild Card", 1)

	fetched, err := store.GetRound(context.Background(), round.ID.String())
	require.NoError(t, err)
	assert.Equal(t, round.ID, fetched.ID)
	assert.Equal(t, "Wild Card", fetched.Name)
	assert.Equal(t, 1, fetched.SortOrder)
	assert.False(t, fetched.IsActive)
}

func TestGetRoundsOrdersBySortOrder(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	store := NewRoundStore(database)
	createTestRound(t, database, "Super Bowl", 4)
	createTestRound(t, database, "Wild Card", 1)
	createTestRound(t, database, "Divisional", 2)

	rounds, err := store.GetRounds(context.Background())
	require.NoError(t, err)
	require.Len(t, rounds, 3)
	assert.Equal(t, "Wild Card", rounds[0].Name)
	assert.Equal(t, "Divisional", rounds[1].Name)
	assert.Equal(t, "Super Bowl", rounds[2].Name)
}

func TestSetActiveRoundSwapsAtomically(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	store := NewRoundStore(database)
	first := createTestRound(t, database, "Wild Card", 1)
	second := createTestRound(t, database, "Divisional", 2)

	ctx := context.Background()

	tx, err := database.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, store.SetActiveRoundTx(ctx, tx, first.ID.String()))
	require.NoError(t, tx.Commit())

	tx, err = database.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, store.SetActiveRoundTx(ctx, tx, second.ID.String()))
	require.NoError(t, tx.Commit())

	var activeCount int
	require.NoError(t, database.Get(&activeCount, "SELECT COUNT(*) FROM rounds WHERE is_active = 1"))
	assert.Equal(t, 1, activeCount)

	active, err := store.GetActiveRound(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)
}

func TestSetActiveRoundUnknownID(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	store := NewRoundStore(database)
	ctx := context.Background()

	tx, err := database.BeginTxx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	err = store.SetActiveRoundTx(ctx, tx, uuid.NewString())
	assert.Error(t, err)
}

func TestGetActiveRoundEmptyState(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	active, err := NewRoundStore(database).GetActiveRound(context.Background())
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestGetRoundsWithPicks(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	store := NewRoundStore(database)
	round := createTestRound(t, database, "Wild Card", 1)
	game := createTestGame(t, database, round.ID)
	participant := createTestParticipant(t, database, "Vicente")

	pickStore := NewPickStore(database)
	now := time.Now().UTC()
	err := pickStore.UpsertPick(context.Background(), &league.Pick{
		ID:            uuid.New(),
		ParticipantID: participant.ID,
		GameID:        game.ID,
		PickWinner:    league.WinnerHome,
		PickMargin:    league.M10,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)

	rounds, err := store.GetRoundsWithPicks(context.Background())
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	require.Len(t, rounds[0].Games, 1)
	require.Len(t, rounds[0].Games[0].Picks, 1)

	pick := rounds[0].Games[0].Picks[0]
	assert.Equal(t, participant.ID, pick.ParticipantID)
	assert.Equal(t, "Vicente", pick.ParticipantName)
	assert.Equal(t, league.WinnerHome, pick.PickWinner)
	assert.Equal(t, league.M10, pick.PickMargin)
}
