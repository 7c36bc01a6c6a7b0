package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
	"github.com/vanessawarbeck/Ecocoins-sub000/pkg/logger"
)

// actionRewards maps each eco action to its direct coin reward, credited
// immediately when the action is finished, independent of any challenge.
var actionRewards = map[models.ActionType]int{
	models.ActionCycling:            15,
	models.ActionRecycling:          10,
	models.ActionReusableCup:        5,
	models.ActionQuiz:               20,
	models.ActionEvent:              25,
	models.ActionBookExchange:       15,
	models.ActionEventParticipation: 25,
}

// actionLabels are the human-readable ledger labels per action.
var actionLabels = map[models.ActionType]string{
	models.ActionCycling:            "Fahrrad gefahren",
	models.ActionRecycling:          "Recycelt",
	models.ActionReusableCup:        "Mehrwegbecher genutzt",
	models.ActionQuiz:               "Quiz abgeschlossen",
	models.ActionEvent:              "Event besucht",
	models.ActionBookExchange:       "Buch getauscht",
	models.ActionEventParticipation: "An Event teilgenommen",
}

// ActionService is the eco-action completion flow: one finished action
// credits its direct reward and then advances every matching active
// challenge.
type ActionService struct {
	challenges *ChallengeService
	reward     *RewardService
}

// NewActionService creates a new instance of ActionService.
func NewActionService(challenges *ChallengeService, reward *RewardService) *ActionService {
	return &ActionService{challenges: challenges, reward: reward}
}

// CompleteAction records one finished eco action. The direct reward is
// issued first, then the action fans out to the active challenges. A
// challenge completing during the fan-out earns its own reward on top.
func (s *ActionService) CompleteAction(ctx context.Context, actionType models.ActionType, detail models.CompletedActionDetail) (*models.PointsTransaction, error) {
	if !actionType.Valid() {
		return nil, fmt.Errorf("unknown action type %q", actionType)
	}

	if detail.ID == "" {
		detail.ID = uuid.NewString()
	}
	if detail.Timestamp.IsZero() {
		detail.Timestamp = time.Now()
	}

	tx, err := s.reward.Issue(ctx, actionRewards[actionType], actionLabels[actionType], models.TransactionCategory(actionType))
	if err != nil {
		return nil, fmt.Errorf("failed to credit action reward: %v", err)
	}

	if err := s.challenges.RecordAction(ctx, actionType, detail); err != nil {
		logger.Log.WithError(err).WithField("action_type", actionType).Error("Failed to advance challenges after action")
		return tx, err
	}

	logger.Log.WithFields(logrus.Fields{
		"action_type": actionType,
		"detail_id":   detail.ID,
		"coins":       tx.Amount,
	}).Info("Eco action completed")

	return tx, nil
}
