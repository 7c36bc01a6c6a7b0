package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/services"
)

// PointsHandler handles HTTP requests related to the points ledger and the
// coin balance.
type PointsHandler struct {
	Reward *services.RewardService
	Ledger *services.PointsService
}

// NewPointsHandler creates a new instance of PointsHandler.
func NewPointsHandler(reward *services.RewardService, ledger *services.PointsService) *PointsHandler {
	return &PointsHandler{Reward: reward, Ledger: ledger}
}

// GetTransactionsHandler returns all ledger entries, newest first.
func (h *PointsHandler) GetTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.Ledger.Transactions(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch transactions")
		http.Error(w, "Failed to fetch transactions", http.StatusInternalServerError)
		return
	}
	if transactions == nil {
		transactions = []models.PointsTransaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transactions)
}

// GetSummaryHandler returns the balance together with the derived totals.
func (h *PointsHandler) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Ledger.Balance(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch balance")
		http.Error(w, "Failed to fetch balance", http.StatusInternalServerError)
		return
	}

	totals, err := h.Ledger.Totals(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to compute totals")
		http.Error(w, "Failed to compute totals", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{
		"balance": balance,
		"earned":  totals.Earned,
		"spent":   totals.Spent,
	})
}

// AddTransactionHandler appends a ledger entry. Type and category are
// validated against their closed sets here, at the call site; id and
// timestamp are assigned server-side.
func (h *PointsHandler) AddTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type        models.TransactionType     `json:"type"`
		Amount      int                        `json:"amount"`
		Action      string                     `json:"action"`
		Category    models.TransactionCategory `json:"category"`
		Description string                     `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Warn("Invalid transaction payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if !req.Type.Valid() {
		http.Error(w, "Unknown transaction type", http.StatusBadRequest)
		return
	}
	if !req.Category.Valid() {
		http.Error(w, "Unknown transaction category", http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}

	tx, err := h.Reward.Record(r.Context(), req.Type, req.Amount, req.Action, req.Category, req.Description)
	if err != nil {
		logrus.WithError(err).Error("Failed to record transaction")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tx)
}

// RedeemHandler spends coins on a shop reward. Overdrafts are rejected.
func (h *PointsHandler) RedeemHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount int    `json:"amount"`
		Item   string `json:"item"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Warn("Invalid redeem payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Amount <= 0 {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}

	tx, err := h.Reward.Spend(r.Context(), req.Amount, req.Item, models.CategoryReward)
	if err != nil {
		logrus.WithError(err).WithField("amount", req.Amount).Warn("Redemption rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logrus.WithFields(logrus.Fields{
		"amount": req.Amount,
		"item":   req.Item,
	}).Info("Reward redeemed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tx)
}
