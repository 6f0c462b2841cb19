package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
)

type RoundStore struct {
	db *sqlx.DB
}

func NewRoundStore(db *sqlx.DB) *RoundStore {
	return &RoundStore{db: db}
}

func (s *RoundStore) CreateRound(ctx context.Context, round *league.Round) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO rounds (id, name, sort_order, is_active)
		VALUES (:id, :name, :sort_order, :is_active)`, round)
	return err
}

func (s *RoundStore) GetRound(ctx context.Context, id string) (*league.Round, error) {
	var round league.Round
	err := s.db.GetContext(ctx, &round, "SELECT * FROM rounds WHERE id = ?", id)
	return &round, err
}

// GetRounds returns every round ordered by sort_order, each with its games
// ordered by start time.
func (s *RoundStore) GetRounds(ctx context.Context) ([]league.Round, error) {
	var rounds []league.Round
	err := s.db.SelectContext(ctx, &rounds, "SELECT * FROM rounds ORDER BY sort_order ASC")
	if err != nil {
		return nil, err
	}

	for i := range rounds {
		var games []league.Game
		err := s.db.SelectContext(ctx, &games,
			"SELECT * FROM games WHERE round_id = ? ORDER BY start_at ASC", rounds[i].ID)
		if err != nil {
			return nil, err
		}
		rounds[i].Games = games
	}
	return rounds, nil
}

// GetActiveRound returns the single active round with its games, or nil when
// no round is active. Absence is an empty state, not an error.
func (s *RoundStore) GetActiveRound(ctx context.Context) (*league.Round, error) {
	var round league.Round
	err := s.db.GetContext(ctx, &round, "SELECT * FROM rounds WHERE is_active = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	err = s.db.SelectContext(ctx, &round.Games,
		"SELECT * FROM games WHERE round_id = ? ORDER BY start_at ASC", round.ID)
	if err != nil {
		return nil, err
	}
	return &round, nil
}

// SetActiveRoundTx deactivates every round and activates the given one
// inside the caller's transaction, so there is no window with zero or two
// active rounds. Returns sql.ErrNoRows when the round does not exist.
func (s *RoundStore) SetActiveRoundTx(ctx context.Context, tx *sqlx.Tx, roundID string) error {
	if _, err := tx.ExecContext(ctx, "UPDATE rounds SET is_active = 0"); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, "UPDATE rounds SET is_active = 1 WHERE id = ?", roundID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetRoundsWithPicks loads the full tree the leaderboard recompute walks:
// rounds in sort order, games per round, picks per game with the owning
// participant's display fields joined in.
func (s *RoundStore) GetRoundsWithPicks(ctx context.Context) ([]league.Round, error) {
	rounds, err := s.GetRounds(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rounds {
		for j := range rounds[i].Games {
			var picks []league.Pick
			err := s.db.SelectContext(ctx, &picks, `
				SELECT picks.*, participants.name AS participant_name, participants.is_pro AS participant_is_pro
				FROM picks
				JOIN participants ON participants.id = picks.participant_id
				WHERE picks.game_id = ?
				ORDER BY picks.created_at ASC`, rounds[i].Games[j].ID)
			if err != nil {
				return nil, err
			}
			rounds[i].Games[j].Picks = picks
		}
	}
	return rounds, nil
}
