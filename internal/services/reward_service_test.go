package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/repository"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/storage"
)

func newRewardEnv() (*RewardService, *PointsService) {
	repo := repository.NewLedgerRepository(storage.NewMemoryStore())
	return NewRewardService(repo), NewPointsService(repo)
}

func TestIssueCreditsBalanceAndAppendsLedgerEntry(t *testing.T) {
	ctx := context.Background()
	reward, points := newRewardEnv()

	tx, err := reward.Issue(ctx, 25, "Event besucht", models.CategoryEvent)
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.False(t, tx.Timestamp.IsZero())
	assert.Equal(t, models.TransactionEarned, tx.Type)

	balance, err := points.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, balance)

	transactions, err := points.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, 25, transactions[0].Amount)
	assert.Equal(t, models.CategoryEvent, transactions[0].Category)
}

func TestIssueRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	reward, _ := newRewardEnv()

	_, err := reward.Issue(ctx, 0, "x", models.CategoryQuiz)
	assert.Error(t, err)

	_, err = reward.Issue(ctx, -10, "x", models.CategoryQuiz)
	assert.Error(t, err)

	_, err = reward.Issue(ctx, 10, "x", "shopping-spree")
	assert.Error(t, err)
}

func TestSpendDebitsBalance(t *testing.T) {
	ctx := context.Background()
	reward, points := newRewardEnv()

	_, err := reward.Issue(ctx, 100, "Quiz abgeschlossen", models.CategoryQuiz)
	require.NoError(t, err)

	tx, err := reward.Spend(ctx, 40, "Gratis Kaffee", models.CategoryReward)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionSpent, tx.Type)

	balance, err := points.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, balance)
}

func TestSpendRejectsOverdraft(t *testing.T) {
	ctx := context.Background()
	reward, points := newRewardEnv()

	_, err := reward.Issue(ctx, 30, "Recycelt", models.CategoryRecycling)
	require.NoError(t, err)

	_, err = reward.Spend(ctx, 31, "Gratis Kaffee", models.CategoryReward)
	require.Error(t, err)

	// The failed spend must leave no trace.
	balance, err := points.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, balance)

	transactions, err := points.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestRecordCarriesDescription(t *testing.T) {
	ctx := context.Background()
	reward, points := newRewardEnv()

	_, err := reward.Record(ctx, models.TransactionEarned, 15, "Buch getauscht", models.CategoryBookExchange, "Hardcover Roman")
	require.NoError(t, err)

	transactions, err := points.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Hardcover Roman", transactions[0].Description)
}
