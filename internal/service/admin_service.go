package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/middleware"
	"github.com/vicentesantos13/playoffs-challenge/internal/scoring"
	"github.com/vicentesantos13/playoffs-challenge/internal/store"
)

// AdminService holds every round/game/participant mutation. All of them
// require an admin session.
type AdminService struct {
	db           *sqlx.DB
	rounds       *store.RoundStore
	games        *store.GameStore
	picks        *store.PickStore
	participants *store.ParticipantStore
}

func NewAdminService(db *sqlx.DB, rounds *store.RoundStore, games *store.GameStore, picks *store.PickStore, participants *store.ParticipantStore) *AdminService {
	return &AdminService{
		db:           db,
		rounds:       rounds,
		games:        games,
		picks:        picks,
		participants: participants,
	}
}

func requireAdmin(ctx context.Context) error {
	participant := middleware.GetSessionParticipant(ctx)
	if participant == nil || !participant.IsAdmin {
		return ErrForbidden
	}
	return nil
}

func (s *AdminService) CreateRound(ctx context.Context, name string, order int) (uuid.UUID, error) {
	if err := requireAdmin(ctx); err != nil {
		return uuid.Nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, validationf("round name is required")
	}

	round := &league.Round{
		ID:        uuid.New(),
		Name:      name,
		SortOrder: order,
	}
	if err := s.rounds.CreateRound(ctx, round); err != nil {
		return uuid.Nil, err
	}
	return round.ID, nil
}

// SetActiveRound makes exactly one round active. The deactivate-all plus
// activate-one runs in a single transaction so readers never observe zero or
// two active rounds.
func (s *AdminService) SetActiveRound(ctx context.Context, roundID uuid.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.rounds.SetActiveRoundTx(ctx, tx, roundID.String()); err != nil {
		return fmt.Errorf("failed to set active round: %w", err)
	}
	return tx.Commit()
}

type GameInput struct {
	RoundID  uuid.UUID
	HomeTeam string
	AwayTeam string
	StartAt  time.Time
	LockAt   time.Time
}

func validateTeams(home, away string) (string, string, error) {
	home = strings.TrimSpace(home)
	away = strings.TrimSpace(away)
	if home == "" || away == "" {
		return "", "", validationf("both teams are required")
	}
	if home == away {
		return "", "", validationf("teams must be different")
	}
	return home, away, nil
}

func (s *AdminService) CreateGame(ctx context.Context, input GameInput) (uuid.UUID, error) {
	if err := requireAdmin(ctx); err != nil {
		return uuid.Nil, err
	}

	home, away, err := validateTeams(input.HomeTeam, input.AwayTeam)
	if err != nil {
		return uuid.Nil, err
	}
	if input.StartAt.IsZero() || input.LockAt.IsZero() {
		return uuid.Nil, validationf("start and lock times are required")
	}
	if input.LockAt.After(input.StartAt) {
		return uuid.Nil, validationf("lock time cannot be after kickoff")
	}
	if _, err := s.rounds.GetRound(ctx, input.RoundID.String()); err != nil {
		return uuid.Nil, fmt.Errorf("failed to get round: %w", err)
	}

	game := &league.Game{
		ID:       uuid.New(),
		RoundID:  input.RoundID,
		HomeTeam: home,
		AwayTeam: away,
		StartAt:  input.StartAt,
		LockAt:   input.LockAt,
		Status:   league.GameScheduled,
	}
	if err := s.games.CreateGame(ctx, game); err != nil {
		return uuid.Nil, err
	}
	return game.ID, nil
}

// UpdateGame rewrites a scheduled game's teams and kickoff. The lock time is
// reset to the kickoff: picks close when the game starts. FINAL games are
// immutable.
func (s *AdminService) UpdateGame(ctx context.Context, gameID uuid.UUID, input GameInput) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	home, away, err := validateTeams(input.HomeTeam, input.AwayTeam)
	if err != nil {
		return err
	}
	if input.StartAt.IsZero() {
		return validationf("start time is required")
	}

	game, err := s.games.GetGame(ctx, gameID.String())
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}
	if game.Status == league.GameFinal {
		return validationf("cannot edit a FINAL game")
	}

	game.RoundID = input.RoundID
	game.HomeTeam = home
	game.AwayTeam = away
	game.StartAt = input.StartAt
	game.LockAt = input.StartAt

	return s.games.UpdateGame(ctx, game)
}

func (s *AdminService) DeleteGame(ctx context.Context, gameID uuid.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	game, err := s.games.GetGame(ctx, gameID.String())
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}
	if game.Status == league.GameFinal {
		return validationf("cannot delete a FINAL game")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.games.DeleteGameTx(ctx, tx, gameID.String()); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return tx.Commit()
}

// FinalizeGame records the final score and rescores every pick of the game
// in one transaction: either the game is FINAL with every pick's cached
// points matching the score, or nothing changed. This is the only writer of
// the cached winner_correct/margin_correct/points columns.
func (s *AdminService) FinalizeGame(ctx context.Context, gameID uuid.UUID, homeScore, awayScore int) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if homeScore < 0 || awayScore < 0 {
		return validationf("scores cannot be negative")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	game, err := s.games.GetGameTx(ctx, tx, gameID.String())
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	round, err := s.rounds.GetRound(ctx, game.RoundID.String())
	if err != nil {
		return fmt.Errorf("failed to get round: %w", err)
	}

	game.HomeScore = &homeScore
	game.AwayScore = &awayScore
	game.Status = league.GameFinal

	if err := s.games.FinalizeGameTx(ctx, tx, game); err != nil {
		return fmt.Errorf("failed to finalize game: %w", err)
	}

	picks, err := s.picks.GetPicksForGameTx(ctx, tx, gameID.String())
	if err != nil {
		return fmt.Errorf("failed to get picks: %w", err)
	}

	for i := range picks {
		res, err := scoring.Score(picks[i], homeScore, awayScore, round.Name)
		if err != nil {
			return fmt.Errorf("failed to score pick: %w", err)
		}

		picks[i].WinnerCorrect = res.WinnerCorrect
		picks[i].MarginCorrect = res.MarginCorrect
		picks[i].Points = res.Points

		if err := s.picks.UpdatePickScoreTx(ctx, tx, &picks[i]); err != nil {
			return fmt.Errorf("failed to update pick: %w", err)
		}
	}

	return tx.Commit()
}

func (s *AdminService) Participants(ctx context.Context) ([]league.Participant, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.participants.ListParticipants(ctx)
}

func (s *AdminService) UpdateParticipantFlags(ctx context.Context, participantID uuid.UUID, isAdmin, isPro *bool) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	participant, err := s.participants.GetParticipant(ctx, participantID)
	if err != nil {
		return fmt.Errorf("failed to get participant: %w", err)
	}

	if isAdmin != nil {
		participant.IsAdmin = *isAdmin
	}
	if isPro != nil {
		participant.IsPro = *isPro
	}
	return s.participants.UpdateParticipantFlags(ctx, participant)
}
