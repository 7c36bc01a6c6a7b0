package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/repository"
	"github.com/vanessawarbeck/Ecocoins-sub000/pkg/logger"
)

// RewardService is the single reward path: every coin credit and debit goes
// through it, so the balance and the ledger cannot drift apart between call
// sites. Ledger and balance writes happen inside one critical section, the
// ledger entry first, so a failure between the two writes can only
// under-count the balance and never mint unledgered coins.
type RewardService struct {
	repo *repository.LedgerRepository
	mu   sync.Mutex
}

// NewRewardService creates a new instance of RewardService.
func NewRewardService(repo *repository.LedgerRepository) *RewardService {
	return &RewardService{repo: repo}
}

// Issue credits the balance by amount and appends an "earned" ledger entry.
func (s *RewardService) Issue(ctx context.Context, amount int, action string, category models.TransactionCategory) (*models.PointsTransaction, error) {
	return s.apply(ctx, models.TransactionEarned, amount, action, category, "")
}

// Spend debits the balance by amount and appends a "spent" ledger entry.
// Overdrafts are rejected; the balance never goes negative.
func (s *RewardService) Spend(ctx context.Context, amount int, action string, category models.TransactionCategory) (*models.PointsTransaction, error) {
	return s.apply(ctx, models.TransactionSpent, amount, action, category, "")
}

// Record appends a caller-supplied transaction. ID and timestamp are always
// assigned here, never taken from the caller.
func (s *RewardService) Record(ctx context.Context, txType models.TransactionType, amount int, action string, category models.TransactionCategory, description string) (*models.PointsTransaction, error) {
	return s.apply(ctx, txType, amount, action, category, description)
}

func (s *RewardService) apply(ctx context.Context, txType models.TransactionType, amount int, action string, category models.TransactionCategory, description string) (*models.PointsTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("transaction amount must be positive, got %d", amount)
	}
	if !txType.Valid() {
		return nil, fmt.Errorf("unknown transaction type %q", txType)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("unknown transaction category %q", category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err := s.repo.Balance(ctx)
	if err != nil {
		return nil, err
	}
	if txType == models.TransactionSpent && balance < amount {
		logger.Log.WithFields(logrus.Fields{
			"balance": balance,
			"amount":  amount,
		}).Warn("Rejected overdraft")
		return nil, fmt.Errorf("insufficient balance: have %d, need %d", balance, amount)
	}

	transactions, err := s.repo.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	tx := models.PointsTransaction{
		ID:          uuid.NewString(),
		Type:        txType,
		Amount:      amount,
		Action:      action,
		Category:    category,
		Timestamp:   time.Now(),
		Description: description,
	}

	if err := s.repo.SaveTransactions(ctx, append(transactions, tx)); err != nil {
		return nil, err
	}

	if txType == models.TransactionEarned {
		balance += amount
	} else {
		balance -= amount
	}
	if err := s.repo.SaveBalance(ctx, balance); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"transaction_id": tx.ID,
		"type":           tx.Type,
		"amount":         tx.Amount,
		"category":       tx.Category,
		"balance":        balance,
	}).Info("Ledger entry recorded")

	return &tx, nil
}
