package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
)

type ParticipantStore struct {
	db *sqlx.DB
}

const (
	getParticipantQuery       = "SELECT * FROM participants WHERE id = ?"
	getParticipantByNameQuery = "SELECT * FROM participants WHERE name = ?"
	listParticipantsQuery     = "SELECT * FROM participants ORDER BY name ASC"

	getParticipantByProviderQuery = `
		SELECT * FROM participants
		WHERE provider = ?
		AND provider_id = ?
	`
	createParticipantQuery = `
		INSERT INTO participants (id, name, pin_hash, is_admin, is_pro, provider, provider_id) VALUES
		(:id, :name, :pin_hash, :is_admin, :is_pro, :provider, :provider_id)
	`
	updateParticipantFlagsQuery = `
		UPDATE participants SET
		is_admin = :is_admin,
		is_pro = :is_pro
		WHERE id = :id
	`
)

func NewParticipantStore(db *sqlx.DB) *ParticipantStore {
	return &ParticipantStore{db: db}
}

func (s *ParticipantStore) GetParticipant(ctx context.Context, id interface{}) (*league.Participant, error) {
	var p league.Participant
	err := s.db.GetContext(ctx, &p, getParticipantQuery, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ParticipantStore) GetParticipantByName(ctx context.Context, name string) (*league.Participant, error) {
	var p league.Participant
	err := s.db.GetContext(ctx, &p, getParticipantByNameQuery, name)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ParticipantStore) GetParticipantByProvider(ctx context.Context, provider string, providerID string) (*league.Participant, error) {
	var p league.Participant
	err := s.db.GetContext(ctx, &p, getParticipantByProviderQuery, provider, providerID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ParticipantStore) ListParticipants(ctx context.Context) ([]league.Participant, error) {
	var participants []league.Participant
	err := s.db.SelectContext(ctx, &participants, listParticipantsQuery)
	return participants, err
}

func (s *ParticipantStore) CreateParticipant(ctx context.Context, p *league.Participant) error {
	_, err := s.db.NamedExecContext(ctx, createParticipantQuery, p)
	return err
}

func (s *ParticipantStore) UpdateParticipantFlags(ctx context.Context, p *league.Participant) error {
	_, err := s.db.NamedExecContext(ctx, updateParticipantFlagsQuery, p)
	return err
}
