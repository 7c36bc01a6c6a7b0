package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/services"
	"github.com/vanessawarbeck/Ecocoins-sub000/pkg/deadline"
)

// ChallengeHandler handles HTTP requests related to challenges.
type ChallengeHandler struct {
	Service *services.ChallengeService
}

// NewChallengeHandler creates a new instance of ChallengeHandler.
func NewChallengeHandler(service *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{Service: service}
}

// GetChallengesHandler returns the full challenge collection.
func (h *ChallengeHandler) GetChallengesHandler(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.Service.GetChallenges(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch challenges")
		http.Error(w, "Failed to fetch challenges", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(challenges)
}

// StartChallengeHandler activates a challenge. Starting a challenge in the
// wrong state is a no-op and still returns 204.
func (h *ChallengeHandler) StartChallengeHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	if err := h.Service.Start(r.Context(), challengeID); err != nil {
		logrus.WithError(err).WithField("challengeID", challengeID).Error("Failed to start challenge")
		http.Error(w, "Failed to start challenge", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CancelChallengeHandler deactivates a challenge and resets its progress.
func (h *ChallengeHandler) CancelChallengeHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	if err := h.Service.Cancel(r.Context(), challengeID); err != nil {
		logrus.WithError(err).WithField("challengeID", challengeID).Error("Failed to cancel challenge")
		http.Error(w, "Failed to cancel challenge", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TimeRemainingHandler returns the localized countdown string for a
// challenge deadline. Locale comes from the query string and defaults to
// German.
func (h *ChallengeHandler) TimeRemainingHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	locale := r.URL.Query().Get("locale")
	if locale != "en" && locale != "de" {
		locale = "de"
	}

	challenge, err := h.Service.GetChallenge(r.Context(), challengeID)
	if err != nil {
		logrus.WithError(err).WithField("challengeID", challengeID).Error("Failed to fetch challenge")
		http.Error(w, "Failed to fetch challenge", http.StatusInternalServerError)
		return
	}
	if challenge == nil {
		http.Error(w, "Challenge not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"timeRemaining": deadline.TimeRemaining(challenge.Deadline, locale),
	})
}
