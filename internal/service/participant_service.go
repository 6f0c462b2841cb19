package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/markbates/goth"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/store"
	"github.com/vicentesantos13/playoffs-challenge/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type ParticipantService struct {
	db    *sqlx.DB
	store *store.ParticipantStore
}

func NewParticipantService(db *sqlx.DB, store *store.ParticipantStore) *ParticipantService {
	return &ParticipantService{db: db, store: store}
}

// SignIn authenticates by name+PIN, creating the participant on first
// sign-in. A wrong PIN for an existing name is a validation error, not a
// hint about which part was wrong.
func (s *ParticipantService) SignIn(ctx context.Context, name, pin string) (*league.Participant, error) {
	name = strings.TrimSpace(name)
	pin = strings.TrimSpace(pin)
	if name == "" {
		return nil, validationf("name is required")
	}
	if len(pin) < 4 {
		return nil, validationf("PIN must be at least 4 characters")
	}

	existing, err := s.store.GetParticipantByName(ctx, name)
	if err == nil {
		if existing.PinHash == nil ||
			bcrypt.CompareHashAndPassword([]byte(*existing.PinHash), []byte(pin)) != nil {
			return nil, validationf("incorrect PIN")
		}
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	participant := &league.Participant{
		ID:      uuid.New(),
		Name:    name,
		PinHash: utils.Ptr(string(hash)),
	}
	if err := s.store.CreateParticipant(ctx, participant); err != nil {
		return nil, err
	}
	return participant, nil
}

// FindOrCreateByProvider backs the OAuth callback: an existing provider
// identity signs straight in, anything else becomes a new participant
// without a PIN.
func (s *ParticipantService) FindOrCreateByProvider(ctx context.Context, gothUser goth.User) (*league.Participant, error) {
	participant, err := s.store.GetParticipantByProvider(ctx, gothUser.Provider, gothUser.UserID)
	if err == nil {
		return participant, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		name := strings.TrimSpace(gothUser.NickName)
		if name == "" {
			name = strings.TrimSpace(gothUser.Name)
		}
		newParticipant := &league.Participant{
			ID:         uuid.New(),
			Name:       name,
			Provider:   &gothUser.Provider,
			ProviderID: &gothUser.UserID,
		}
		err := s.store.CreateParticipant(ctx, newParticipant)
		return newParticipant, err
	}

	return nil, err
}
