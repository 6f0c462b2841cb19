package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vicentesantos13/playoffs-challenge/internal/leaderboard"
	"github.com/vicentesantos13/playoffs-challenge/internal/store"
)

// LeaderboardService exposes the two aggregation modes side by side. They
// are deliberately separate operations: Totals trusts the points persisted
// at finalization time, Standings re-derives everything from raw scores.
type LeaderboardService struct {
	db     *sqlx.DB
	rounds *store.RoundStore
	picks  *store.PickStore
}

func NewLeaderboardService(db *sqlx.DB, rounds *store.RoundStore, picks *store.PickStore) *LeaderboardService {
	return &LeaderboardService{db: db, rounds: rounds, picks: picks}
}

// Totals is the trust-the-cache fast path: one SQL aggregation over the
// persisted points column, optionally filtered to a single round. Only
// appropriate when persisted points are known to be consistent with current
// game scores.
func (s *LeaderboardService) Totals(ctx context.Context, roundID *uuid.UUID) ([]leaderboard.Row, error) {
	return s.picks.SumPoints(ctx, roundID)
}

// Standings is the authoritative recompute: it loads every round with its
// games and picks and re-derives all points through the scorer, so the
// result is consistent with current scores even if finalization logic has
// changed since points were cached.
func (s *LeaderboardService) Standings(ctx context.Context) (leaderboard.Standings, error) {
	rounds, err := s.rounds.GetRoundsWithPicks(ctx)
	if err != nil {
		return leaderboard.Standings{}, err
	}
	return leaderboard.Compute(rounds)
}
