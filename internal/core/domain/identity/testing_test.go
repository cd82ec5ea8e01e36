package identity

import (
	"context"
	"testing"
	"time"
	"verimail/internal/core/domain/user"

	"github.com/stretchr/testify/require"
)

func TestFakeRepositoryReturnsNewestIdentity(t *testing.T) {
	assert := require.New(t)
	repo := NewFakeRepository()
	userID := user.ID(1)
	now := time.Now().UTC()

	_, err := repo.Create(context.Background(), CreateInput{
		UserID:    userID,
		Type:      EmailActivate,
		Secret:    ActivationCode("111111"),
		Label:     LabelRegister,
		CreatedAt: now,
	})
	assert.Nil(err)
	newest, err := repo.Create(context.Background(), CreateInput{
		UserID:    userID,
		Type:      EmailActivate,
		Secret:    ActivationCode("222222"),
		Label:     LabelRegister,
		CreatedAt: now.Add(time.Minute),
	})
	assert.Nil(err)

	found, err := repo.GetByUserAndType(context.Background(), userID, EmailActivate)
	assert.Nil(err)
	assert.Equal(newest.ID, found.ID)
	assert.Equal(ActivationCode("222222"), found.Secret)
}

func TestFakeRepositoryNoIdentity(t *testing.T) {
	repo := NewFakeRepository()

	_, err := repo.GetByUserAndType(context.Background(), user.ID(42), EmailActivate)

	require.New(t).ErrorIs(err, ErrIdentityDoesNotExist)
}
