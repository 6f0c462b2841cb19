package service

import (
	"context"
	"testing"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vicentesantos13/playoffs-challenge/internal/store"
)

func TestSignInCreatesOnFirstUse(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	svc := NewParticipantService(database, store.NewParticipantStore(database))
	ctx := context.Background()

	created, err := svc.SignIn(ctx, "  Vicente  ", "1234")
	require.NoError(t, err)
	assert.Equal(t, "Vicente", created.Name)
	assert.False(t, created.IsAdmin)
	require.NotNil(t, created.PinHash)
	assert.NotEqual(t, "1234", *created.PinHash, "PIN is stored hashed")

	again, err := svc.SignIn(ctx, "Vicente", "1234")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}

func TestSignInRejectsWrongPin(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	svc := NewParticipantService(database, store.NewParticipantStore(database))
	ctx := context.Background()

	_, err := svc.SignIn(ctx, "Vicente", "1234")
	require.NoError(t, err)

	var vErr *ValidationError
	_, err = svc.SignIn(ctx, "Vicente", "9999")
	assert.ErrorAs(t, err, &vErr)
}

func TestSignInValidation(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	svc := NewParticipantService(database, store.NewParticipantStore(database))
	ctx := context.Background()

	var vErr *ValidationError
	_, err := svc.SignIn(ctx, "   ", "1234")
	assert.ErrorAs(t, err, &vErr, "blank name")

	_, err = svc.SignIn(ctx, "Vicente", "123")
	assert.ErrorAs(t, err, &vErr, "short PIN")
}

func TestFindOrCreateByProvider(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	svc := NewParticipantService(database, store.NewParticipantStore(database))
	ctx := context.Background()

	gothUser := goth.User{Provider: "discord", UserID: "42", NickName: "vicente"}

	created, err := svc.FindOrCreateByProvider(ctx, gothUser)
	require.NoError(t, err)
	assert.Equal(t, "vicente", created.Name)
	assert.Nil(t, created.PinHash)

	again, err := svc.FindOrCreateByProvider(ctx, gothUser)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}
