package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
)

type TeamStore struct {
	db *sqlx.DB
}

func NewTeamStore(db *sqlx.DB) *TeamStore {
	return &TeamStore{db: db}
}

func (s *TeamStore) GetTeams(ctx context.Context) ([]league.Team, error) {
	var teams []league.Team
	err := s.db.SelectContext(ctx, &teams, "SELECT * FROM teams ORDER BY name ASC")
	return teams, err
}
