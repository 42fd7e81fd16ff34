package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/service"
)

func newOAuthHandler(store *mockUsers) *OAuthHandler {
	cfg := testConfig()
	cfg.GoogleClientID = "client-id"
	cfg.GoogleClientSecret = "client-secret"
	return NewOAuthHandler(cfg, store, service.NewPublisher("", zap.NewNop()), zap.NewNop())
}

func TestOAuthRegistersNewCustomer(t *testing.T) {
	store := newMockUsers()
	h := newOAuthHandler(store)

	user, isNew, err := h.loginOrRegister(context.Background(), &googleUserinfo{
		Email: "fresh@example.com", Name: "Fresh",
	})
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, model.RoleCustomer, user.RoleID)
	assert.Empty(t, user.Password)
	assert.False(t, user.ID.IsZero())
}

func TestOAuthTouchesExistingAccount(t *testing.T) {
	store := newMockUsers()
	store.byEmail["old@example.com"] = &model.User{
		Email: "old@example.com", Name: "Old", RoleID: model.RoleTrainer,
	}
	h := newOAuthHandler(store)

	user, isNew, err := h.loginOrRegister(context.Background(), &googleUserinfo{
		Email: "old@example.com", Name: "Renamed",
	})
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, model.RoleTrainer, user.RoleID)
	assert.Equal(t, "Old", user.Name)
	assert.Equal(t, []string{"old@example.com"}, store.touched)
}

func TestOAuthDisabledWithoutCredentials(t *testing.T) {
	h := NewOAuthHandler(testConfig(), newMockUsers(), service.NewPublisher("", zap.NewNop()), zap.NewNop())
	assert.Nil(t, h.oauth)
}
