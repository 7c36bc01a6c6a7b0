package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
)

func TestCompleteActionCreditsDirectRewardAndAdvancesChallenges(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("c1", models.ActionRecycling, 2, 60, models.StatusActive),
	})
	actions := NewActionService(env.challenges, env.reward)

	tx, err := actions.CompleteAction(ctx, models.ActionRecycling, models.CompletedActionDetail{Amount: 3})
	require.NoError(t, err)
	assert.Equal(t, 10, tx.Amount)
	assert.Equal(t, models.CategoryRecycling, tx.Category)

	c := env.challenge(t, "c1")
	assert.Equal(t, 1, c.CurrentCount)
	require.Len(t, c.CompletedActions, 1)
	// Missing id and timestamp are filled in before the fan-out.
	assert.NotEmpty(t, c.CompletedActions[0].ID)
	assert.False(t, c.CompletedActions[0].Timestamp.IsZero())

	// Second action completes the challenge: direct reward + challenge reward.
	_, err = actions.CompleteAction(ctx, models.ActionRecycling, models.CompletedActionDetail{Amount: 2})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, env.challenge(t, "c1").Status)

	balance, err := env.points.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10+10+60, balance)

	transactions, err := env.points.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, transactions, 3)
}

func TestCompleteActionRejectsUnknownActionType(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	actions := NewActionService(env.challenges, env.reward)

	_, err := actions.CompleteAction(ctx, "jetski", models.CompletedActionDetail{})
	require.Error(t, err)

	balance, err := env.points.Balance(ctx)
	require.NoError(t, err)
	assert.Zero(t, balance)
}
