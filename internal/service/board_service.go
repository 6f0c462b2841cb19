package service

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/store"
)

// BoardService serves the read-only pages: the active round with its games
// and everyone's picks.
type BoardService struct {
	db     *sqlx.DB
	rounds *store.RoundStore
	picks  *store.PickStore
}

func NewBoardService(db *sqlx.DB, rounds *store.RoundStore, picks *store.PickStore) *BoardService {
	return &BoardService{db: db, rounds: rounds, picks: picks}
}

// ActiveRound returns the active round with its games (no picks), or nil
// when no round is active.
func (s *BoardService) ActiveRound(ctx context.Context) (*league.Round, error) {
	return s.rounds.GetActiveRound(ctx)
}

// ActiveBoard returns the active round with every game's picks attached,
// participant names included, for the results board. Nil when no round is
// active.
func (s *BoardService) ActiveBoard(ctx context.Context) (*league.Round, error) {
	round, err := s.rounds.GetActiveRound(ctx)
	if err != nil || round == nil {
		return round, err
	}

	for i := range round.Games {
		picks, err := s.picks.GetPicksForGame(ctx, round.Games[i].ID.String())
		if err != nil {
			return nil, err
		}
		round.Games[i].Picks = picks
	}
	return round, nil
}
