package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/middleware"
	"github.com/vicentesantos13/playoffs-challenge/internal/store"
)

type PickService struct {
	db    *sqlx.DB
	games *store.GameStore
	picks *store.PickStore

	// Overridable for tests.
	now func() time.Time
}

func NewPickService(db *sqlx.DB, games *store.GameStore, picks *store.PickStore) *PickService {
	return &PickService{db: db, games: games, picks: picks, now: time.Now}
}

// UpsertPick records or replaces the session participant's pick for a game.
// At most one pick exists per (participant, game); resubmitting overwrites
// winner and margin. Rejected once the lock time has passed or the game is
// FINAL.
func (s *PickService) UpsertPick(ctx context.Context, gameID uuid.UUID, winner league.Winner, margin league.MarginBucket) error {
	participant := middleware.GetSessionParticipant(ctx)
	if participant == nil {
		return ErrForbidden
	}

	if _, err := league.ParseWinner(string(winner)); err != nil {
		return validationf("invalid winner: %v", err)
	}
	if _, err := league.ParseMarginBucket(string(margin)); err != nil {
		return validationf("invalid margin: %v", err)
	}

	game, err := s.games.GetGame(ctx, gameID.String())
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}
	if game.Status == league.GameFinal || game.Locked(s.now()) {
		return ErrLocked
	}

	now := s.now().UTC()
	pick := &league.Pick{
		ID:            uuid.New(),
		ParticipantID: participant.ID,
		GameID:        gameID,
		PickWinner:    winner,
		PickMargin:    margin,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return s.picks.UpsertPick(ctx, pick)
}

// PicksForParticipant returns the session participant's picks keyed by game
// id, for pre-filling the pick form.
func (s *PickService) PicksForParticipant(ctx context.Context) (map[uuid.UUID]league.Pick, error) {
	participant := middleware.GetSessionParticipant(ctx)
	if participant == nil {
		return nil, ErrForbidden
	}

	picks, err := s.picks.GetPicksForParticipant(ctx, participant.ID)
	if err != nil {
		return nil, err
	}

	byGame := make(map[uuid.UUID]league.Pick, len(picks))
	for _, p := range picks {
		byGame[p.GameID] = p
	}
	return byGame, nil
}
