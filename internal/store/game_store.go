package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
)

type GameStore struct {
	db *sqlx.DB
}

func NewGameStore(db *sqlx.DB) *GameStore {
	return &GameStore{db: db}
}

func (s *GameStore) CreateGame(ctx context.Context, game *league.Game) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO games (id, round_id, home_team, away_team, start_at, lock_at, status)
		VALUES (:id, :round_id, :home_team, :away_team, :start_at, :lock_at, :status)`, game)
	return err
}

func (s *GameStore) GetGame(ctx context.Context, id string) (*league.Game, error) {
	var game league.Game
	err := s.db.GetContext(ctx, &game, "SELECT * FROM games WHERE id = ?", id)
	return &game, err
}

func (s *GameStore) GetGameTx(ctx context.Context, tx *sqlx.Tx, id string) (*league.Game, error) {
	var game league.Game
	err := tx.GetContext(ctx, &game, "SELECT * FROM games WHERE id = ?", id)
	return &game, err
}

func (s *GameStore) UpdateGame(ctx context.Context, game *league.Game) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE games SET
		round_id = :round_id,
		home_team = :home_team,
		away_team = :away_team,
		start_at = :start_at,
		lock_at = :lock_at
		WHERE id = :id`, game)
	return err
}

// FinalizeGameTx records the final score and flips the game to FINAL. The
// caller rescoring the game's picks must run in the same transaction.
func (s *GameStore) FinalizeGameTx(ctx context.Context, tx *sqlx.Tx, game *league.Game) error {
	_, err := tx.NamedExecContext(ctx, `UPDATE games SET
		home_score = :home_score,
		away_score = :away_score,
		status = :status
		WHERE id = :id`, game)
	return err
}

// DeleteGameTx removes the game and its picks as one unit.
func (s *GameStore) DeleteGameTx(ctx context.Context, tx *sqlx.Tx, gameID string) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM picks WHERE game_id = ?", gameID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, "DELETE FROM games WHERE id = ?", gameID)
	return err
}
