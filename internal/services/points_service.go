package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/repository"
	"github.com/vanessawarbeck/Ecocoins-sub000/pkg/logger"
)

// PointsService is the read side of the ledger. Everything here is derived
// from the persisted transactions; the balance itself is owned by the
// reward service.
type PointsService struct {
	repo *repository.LedgerRepository
}

// NewPointsService creates a new instance of PointsService.
func NewPointsService(repo *repository.LedgerRepository) *PointsService {
	return &PointsService{repo: repo}
}

// Transactions returns all ledger entries, newest first.
func (s *PointsService) Transactions(ctx context.Context) ([]models.PointsTransaction, error) {
	transactions, err := s.repo.Transactions(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch transactions")
		return nil, fmt.Errorf("failed to fetch transactions: %v", err)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.After(transactions[j].Timestamp)
	})
	return transactions, nil
}

// Totals sums the earned and spent amounts across the whole ledger.
func (s *PointsService) Totals(ctx context.Context) (models.PointsTotals, error) {
	transactions, err := s.repo.Transactions(ctx)
	if err != nil {
		return models.PointsTotals{}, fmt.Errorf("failed to compute totals: %v", err)
	}

	var totals models.PointsTotals
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionEarned:
			totals.Earned += tx.Amount
		case models.TransactionSpent:
			totals.Spent += tx.Amount
		}
	}
	return totals, nil
}

// Balance returns the stored coin balance.
func (s *PointsService) Balance(ctx context.Context) (int, error) {
	balance, err := s.repo.Balance(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch balance: %v", err)
	}
	return balance, nil
}
