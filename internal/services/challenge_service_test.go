package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/repository"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/storage"
)

type testEnv struct {
	store      *storage.MemoryStore
	challenges *ChallengeService
	reward     *RewardService
	points     *PointsService
}

func newTestEnv(t *testing.T, challenges []models.Challenge) *testEnv {
	t.Helper()

	store := storage.NewMemoryStore()
	data, err := json.Marshal(challenges)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), storage.KeyChallenges, data))

	ledgerRepo := repository.NewLedgerRepository(store)
	reward := NewRewardService(ledgerRepo)
	service := NewChallengeService(repository.NewChallengeRepository(store), reward)

	return &testEnv{
		store:      store,
		challenges: service,
		reward:     reward,
		points:     NewPointsService(ledgerRepo),
	}
}

func (e *testEnv) challenge(t *testing.T, id string) models.Challenge {
	t.Helper()

	challenge, err := e.challenges.GetChallenge(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, challenge)
	return *challenge
}

func fixtureChallenge(id string, actionType models.ActionType, target, reward int, status models.ChallengeStatus) models.Challenge {
	c := models.Challenge{
		ID:          id,
		Title:       id,
		ActionType:  actionType,
		TargetCount: target,
		Reward:      reward,
		Deadline:    time.Now().Add(7 * 24 * time.Hour),
		Status:      status,
	}
	if status == models.StatusActive {
		now := time.Now()
		c.StartedAt = &now
	}
	return c
}

func detail() models.CompletedActionDetail {
	return models.CompletedActionDetail{ID: uuid.NewString(), Timestamp: time.Now()}
}

func TestStartActivatesInactiveChallenge(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("c1", models.ActionCycling, 5, 50, models.StatusInactive),
	})

	require.NoError(t, env.challenges.Start(ctx, "c1"))

	c := env.challenge(t, "c1")
	assert.Equal(t, models.StatusActive, c.Status)
	require.NotNil(t, c.StartedAt)
}

func TestStartIsNoopInWrongState(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("c1", models.ActionCycling, 5, 50, models.StatusActive),
	})

	started := *env.challenge(t, "c1").StartedAt
	require.NoError(t, env.challenges.Start(ctx, "c1"))

	c := env.challenge(t, "c1")
	assert.Equal(t, models.StatusActive, c.Status)
	assert.True(t, c.StartedAt.Equal(started))
}

func TestStartUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("c1", models.ActionCycling, 5, 50, models.StatusInactive),
	})

	require.NoError(t, env.challenges.Start(ctx, "nope"))

	c := env.challenge(t, "c1")
	assert.Equal(t, models.StatusInactive, c.Status)
}

func TestCancelResetsProgressFully(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("c1", models.ActionRecycling, 10, 60, models.StatusActive),
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, env.challenges.RecordAction(ctx, models.ActionRecycling, detail()))
	}
	require.Equal(t, 3, env.challenge(t, "c1").CurrentCount)

	require.NoError(t, env.challenges.Cancel(ctx, "c1"))

	c := env.challenge(t, "c1")
	assert.Equal(t, models.StatusInactive, c.Status)
	assert.Nil(t, c.StartedAt)
	assert.Zero(t, c.CurrentCount)
	assert.Empty(t, c.CompletedActions)
}

func TestCancelIsNoopWhenNotActive(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("c1", models.ActionQuiz, 3, 40, models.StatusInactive),
	})

	require.NoError(t, env.challenges.Cancel(ctx, "c1"))
	assert.Equal(t, models.StatusInactive, env.challenge(t, "c1").Status)
}

func TestRecordActionFansOutToAllMatchingActiveChallenges(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("a", models.ActionRecycling, 10, 60, models.StatusActive),
		fixtureChallenge("b", models.ActionRecycling, 5, 30, models.StatusActive),
		fixtureChallenge("c", models.ActionRecycling, 5, 30, models.StatusInactive),
		fixtureChallenge("d", models.ActionCycling, 5, 50, models.StatusActive),
	})

	require.NoError(t, env.challenges.RecordAction(ctx, models.ActionRecycling, detail()))

	assert.Equal(t, 1, env.challenge(t, "a").CurrentCount)
	assert.Equal(t, 1, env.challenge(t, "b").CurrentCount)
	assert.Zero(t, env.challenge(t, "c").CurrentCount)
	assert.Zero(t, env.challenge(t, "d").CurrentCount)
}

func TestRecordActionKeepsCountAndLogInSync(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("c1", models.ActionReusableCup, 7, 35, models.StatusActive),
	})

	for i := 0; i < 4; i++ {
		require.NoError(t, env.challenges.RecordAction(ctx, models.ActionReusableCup, detail()))

		c := env.challenge(t, "c1")
		assert.Equal(t, len(c.CompletedActions), c.CurrentCount)
		assert.LessOrEqual(t, c.CurrentCount, c.TargetCount)
	}
}

func TestCompletionIssuesRewardExactlyOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("c1", models.ActionQuiz, 1, 50, models.StatusActive),
	})

	require.NoError(t, env.challenges.RecordAction(ctx, models.ActionQuiz, detail()))

	c := env.challenge(t, "c1")
	assert.Equal(t, models.StatusCompleted, c.Status)
	require.NotNil(t, c.CompletedAt)

	balance, err := env.points.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, balance)

	// A later matching action must not touch the completed challenge or the balance.
	require.NoError(t, env.challenges.RecordAction(ctx, models.ActionQuiz, detail()))

	c = env.challenge(t, "c1")
	assert.Equal(t, 1, c.CurrentCount)
	assert.Len(t, c.CompletedActions, 1)

	balance, err = env.points.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, balance)
}

func TestCompletedIsTerminal(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("c1", models.ActionEvent, 1, 25, models.StatusActive),
	})

	require.NoError(t, env.challenges.RecordAction(ctx, models.ActionEvent, detail()))
	require.Equal(t, models.StatusCompleted, env.challenge(t, "c1").Status)

	// Neither start nor cancel moves a completed challenge.
	require.NoError(t, env.challenges.Start(ctx, "c1"))
	assert.Equal(t, models.StatusCompleted, env.challenge(t, "c1").Status)

	require.NoError(t, env.challenges.Cancel(ctx, "c1"))
	c := env.challenge(t, "c1")
	assert.Equal(t, models.StatusCompleted, c.Status)
	assert.Len(t, c.CompletedActions, 1)
}

func TestChallengeLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("c1", models.ActionCycling, 5, 50, models.StatusInactive),
	})

	require.NoError(t, env.challenges.Start(ctx, "c1"))
	require.Equal(t, models.StatusActive, env.challenge(t, "c1").Status)

	for i := 0; i < 4; i++ {
		require.NoError(t, env.challenges.RecordAction(ctx, models.ActionCycling, detail()))
	}

	c := env.challenge(t, "c1")
	assert.Equal(t, 4, c.CurrentCount)
	assert.Equal(t, models.StatusActive, c.Status)

	balance, err := env.points.Balance(ctx)
	require.NoError(t, err)
	assert.Zero(t, balance)

	require.NoError(t, env.challenges.RecordAction(ctx, models.ActionCycling, detail()))

	c = env.challenge(t, "c1")
	assert.Equal(t, 5, c.CurrentCount)
	assert.Equal(t, models.StatusCompleted, c.Status)

	balance, err = env.points.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, balance)

	transactions, err := env.points.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, models.CategoryChallenge, transactions[0].Category)
	assert.Equal(t, models.TransactionEarned, transactions[0].Type)
	assert.Equal(t, 50, transactions[0].Amount)
}

func TestRecordActionWithoutMatchIsNoop(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, []models.Challenge{
		fixtureChallenge("c1", models.ActionCycling, 5, 50, models.StatusInactive),
	})

	require.NoError(t, env.challenges.RecordAction(ctx, models.ActionCycling, detail()))

	assert.Zero(t, env.challenge(t, "c1").CurrentCount)

	balance, err := env.points.Balance(ctx)
	require.NoError(t, err)
	assert.Zero(t, balance)
}
