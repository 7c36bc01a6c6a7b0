package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/services"
)

// ActionHandler handles the eco-action completion flow.
type ActionHandler struct {
	Service *services.ActionService
}

// NewActionHandler creates a new instance of ActionHandler.
func NewActionHandler(service *services.ActionService) *ActionHandler {
	return &ActionHandler{Service: service}
}

// CompleteActionHandler records one finished eco action: the direct coin
// reward plus the fan-out to every matching active challenge.
func (h *ActionHandler) CompleteActionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActionType models.ActionType            `json:"actionType"`
		Detail     models.CompletedActionDetail `json:"detail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Warn("Invalid action payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if !req.ActionType.Valid() {
		logrus.WithField("actionType", req.ActionType).Warn("Unknown action type")
		http.Error(w, "Unknown action type", http.StatusBadRequest)
		return
	}

	tx, err := h.Service.CompleteAction(r.Context(), req.ActionType, req.Detail)
	if err != nil {
		logrus.WithError(err).Error("Failed to complete action")
		http.Error(w, "Failed to complete action", http.StatusInternalServerError)
		return
	}

	logrus.WithFields(logrus.Fields{
		"actionType": req.ActionType,
		"coins":      tx.Amount,
	}).Info("Action successfully completed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tx)
}
