package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vicentesantos13/playoffs-challenge/internal/leaderboard"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
)

type PickStore struct {
	db *sqlx.DB
}

const (
	upsertPickQuery = `
		INSERT INTO picks (id, participant_id, game_id, pick_winner, pick_margin, created_at, updated_at)
		VALUES (:id, :participant_id, :game_id, :pick_winner, :pick_margin, :created_at, :updated_at)
		ON CONFLICT (participant_id, game_id) DO UPDATE SET
		pick_winner = excluded.pick_winner,
		pick_margin = excluded.pick_margin,
		updated_at = excluded.updated_at
	`
	picksForGameQuery = `
		SELECT picks.*, participants.name AS participant_name, participants.is_pro AS participant_is_pro
		FROM picks
		JOIN participants ON participants.id = picks.participant_id
		WHERE picks.game_id = ?
		ORDER BY participants.name ASC
	`
	picksForParticipantQuery = `
		SELECT * FROM picks WHERE participant_id = ?
	`
	updatePickScoreQuery = `
		UPDATE picks SET
		winner_correct = :winner_correct,
		margin_correct = :margin_correct,
		points = :points
		WHERE id = :id
	`
	sumPointsQuery = `
		SELECT participants.id AS participant_id, participants.name, participants.is_pro,
		       COALESCE(SUM(picks.points), 0) AS points
		FROM participants
		LEFT JOIN picks ON picks.participant_id = participants.id
		GROUP BY participants.id
		ORDER BY points DESC, participants.name ASC
	`
	sumPointsByRoundQuery = `
		SELECT participants.id AS participant_id, participants.name, participants.is_pro,
		       COALESCE(SUM(picks.points), 0) AS points
		FROM participants
		LEFT JOIN picks ON picks.participant_id = participants.id
			AND picks.game_id IN (SELECT id FROM games WHERE round_id = ?)
		GROUP BY participants.id
		ORDER BY points DESC, participants.name ASC
	`
)

func NewPickStore(db *sqlx.DB) *PickStore {
	return &PickStore{db: db}
}

func (s *PickStore) UpsertPick(ctx context.Context, pick *league.Pick) error {
	_, err := s.db.NamedExecContext(ctx, upsertPickQuery, pick)
	return err
}

func (s *PickStore) GetPicksForGame(ctx context.Context, gameID string) ([]league.Pick, error) {
	var picks []league.Pick
	err := s.db.SelectContext(ctx, &picks, picksForGameQuery, gameID)
	return picks, err
}

func (s *PickStore) GetPicksForGameTx(ctx context.Context, tx *sqlx.Tx, gameID string) ([]league.Pick, error) {
	var picks []league.Pick
	err := tx.SelectContext(ctx, &picks, "SELECT * FROM picks WHERE game_id = ?", gameID)
	return picks, err
}

func (s *PickStore) GetPicksForParticipant(ctx context.Context, participantID uuid.UUID) ([]league.Pick, error) {
	var picks []league.Pick
	err := s.db.SelectContext(ctx, &picks, picksForParticipantQuery, participantID)
	return picks, err
}

func (s *PickStore) UpdatePickScoreTx(ctx context.Context, tx *sqlx.Tx, pick *league.Pick) error {
	_, err := tx.NamedExecContext(ctx, updatePickScoreQuery, pick)
	return err
}

// sumRow mirrors leaderboard.Row with db tags for the aggregate queries.
type sumRow struct {
	ParticipantID uuid.UUID `db:"participant_id"`
	Name          string    `db:"name"`
	IsPro         bool      `db:"is_pro"`
	Points        int       `db:"points"`
}

// SumPoints is the trust-the-cache leaderboard path: it sums the persisted
// points column, optionally filtered to one round, without rescoring
// anything. Participants with no picks show up with zero points.
// Callers wanting authoritative totals recompute through
// leaderboard.Compute instead.
func (s *PickStore) SumPoints(ctx context.Context, roundID *uuid.UUID) ([]leaderboard.Row, error) {
	var raw []sumRow
	var err error
	if roundID != nil {
		err = s.db.SelectContext(ctx, &raw, sumPointsByRoundQuery, *roundID)
	} else {
		err = s.db.SelectContext(ctx, &raw, sumPointsQuery)
	}
	if err != nil {
		return nil, err
	}

	rows := make([]leaderboard.Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, leaderboard.Row{
			ParticipantID: r.ParticipantID,
			Name:          r.Name,
			IsPro:         r.IsPro,
			Points:        r.Points,
		})
	}
	return rows, nil
}
