package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/storage"
	"github.com/vanessawarbeck/Ecocoins-sub000/pkg/logger"
)

// LedgerRepository persists the points ledger and the coin balance. The two
// live under separate keys; the reward service serializes writes to both.
type LedgerRepository struct {
	store storage.Store
}

// NewLedgerRepository creates a new instance of LedgerRepository.
func NewLedgerRepository(store storage.Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// Transactions returns all persisted ledger entries in insertion order.
// Missing data means an empty ledger. A corrupt blob is logged and treated
// as empty; the next append overwrites it.
func (r *LedgerRepository) Transactions(ctx context.Context) ([]models.PointsTransaction, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeyTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %v", err)
	}
	if !ok {
		return nil, nil
	}

	var transactions []models.PointsTransaction
	if err := json.Unmarshal(raw, &transactions); err != nil {
		logger.Log.WithError(err).WithField("size", len(raw)).Warn("Discarding corrupt transaction record")
		return nil, nil
	}
	return transactions, nil
}

// SaveTransactions overwrites the persisted ledger.
func (r *LedgerRepository) SaveTransactions(ctx context.Context, transactions []models.PointsTransaction) error {
	data, err := json.Marshal(transactions)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to encode transactions")
		return fmt.Errorf("failed to encode transactions: %v", err)
	}

	if err := r.store.Set(ctx, storage.KeyTransactions, data); err != nil {
		return fmt.Errorf("failed to save transactions: %v", err)
	}
	return nil
}

// Balance returns the current coin balance. Missing or corrupt data counts
// as zero, created implicitly at first write.
func (r *LedgerRepository) Balance(ctx context.Context) (int, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeyBalance)
	if err != nil {
		return 0, fmt.Errorf("failed to load balance: %v", err)
	}
	if !ok {
		return 0, nil
	}

	balance, err := strconv.Atoi(string(raw))
	if err != nil {
		logger.Log.WithError(err).Warn("Discarding corrupt balance record")
		return 0, nil
	}
	return balance, nil
}

// SaveBalance overwrites the persisted balance.
func (r *LedgerRepository) SaveBalance(ctx context.Context, balance int) error {
	if err := r.store.Set(ctx, storage.KeyBalance, []byte(strconv.Itoa(balance))); err != nil {
		return fmt.Errorf("failed to save balance: %v", err)
	}
	return nil
}
