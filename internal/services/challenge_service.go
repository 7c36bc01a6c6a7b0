package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/repository"
	"github.com/vanessawarbeck/Ecocoins-sub000/pkg/logger"
)

// ChallengeService is the challenge state machine. Every public operation is
// one load-mutate-save cycle over the whole collection, serialized by a
// mutex so overlapping calls cannot lose each other's updates.
//
// Operations on an unknown id or in the wrong state return without mutating
// anything. The deadline field is advisory: an expired active challenge is
// never auto-cancelled here.
type ChallengeService struct {
	repo   *repository.ChallengeRepository
	reward *RewardService
	mu     sync.Mutex
}

// NewChallengeService creates a new instance of ChallengeService.
func NewChallengeService(repo *repository.ChallengeRepository, reward *RewardService) *ChallengeService {
	return &ChallengeService{repo: repo, reward: reward}
}

// GetChallenges returns the full, migrated challenge collection.
func (s *ChallengeService) GetChallenges(ctx context.Context) ([]models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenges, err := s.repo.Load(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to load challenges")
		return nil, fmt.Errorf("failed to fetch challenges: %v", err)
	}
	return challenges, nil
}

// GetChallenge returns a single challenge by id, or nil when it does not exist.
func (s *ChallengeService) GetChallenge(ctx context.Context, id string) (*models.Challenge, error) {
	challenges, err := s.GetChallenges(ctx)
	if err != nil {
		return nil, err
	}
	for i := range challenges {
		if challenges[i].ID == id {
			return &challenges[i], nil
		}
	}
	return nil, nil
}

// Start activates an inactive challenge and stamps StartedAt. Starting a
// challenge that is already active or completed is a no-op.
func (s *ChallengeService) Start(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenges, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to start challenge: %v", err)
	}

	for i := range challenges {
		challenge := &challenges[i]
		if challenge.ID != id {
			continue
		}
		if challenge.Status != models.StatusInactive {
			logger.Log.WithFields(logrus.Fields{
				"challenge_id": id,
				"status":       challenge.Status,
			}).Info("Ignoring start on non-inactive challenge")
			return nil
		}

		now := time.Now()
		challenge.Status = models.StatusActive
		challenge.StartedAt = &now

		if err := s.repo.Save(ctx, challenges); err != nil {
			return fmt.Errorf("failed to start challenge: %v", err)
		}
		logger.Log.WithField("challenge_id", id).Info("Challenge started")
		return nil
	}

	logger.Log.WithField("challenge_id", id).Warn("Ignoring start on unknown challenge")
	return nil
}

// Cancel deactivates an active challenge and resets its progress to zero:
// StartedAt is cleared and the whole action log is dropped. Resuming later
// starts over from scratch. Cancelling a challenge that is not active is a
// no-op.
func (s *ChallengeService) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenges, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel challenge: %v", err)
	}

	for i := range challenges {
		challenge := &challenges[i]
		if challenge.ID != id {
			continue
		}
		if challenge.Status != models.StatusActive {
			logger.Log.WithFields(logrus.Fields{
				"challenge_id": id,
				"status":       challenge.Status,
			}).Info("Ignoring cancel on non-active challenge")
			return nil
		}

		challenge.Status = models.StatusInactive
		challenge.StartedAt = nil
		challenge.CurrentCount = 0
		challenge.CompletedActions = nil

		if err := s.repo.Save(ctx, challenges); err != nil {
			return fmt.Errorf("failed to cancel challenge: %v", err)
		}
		logger.Log.WithField("challenge_id", id).Info("Challenge cancelled, progress reset")
		return nil
	}

	logger.Log.WithField("challenge_id", id).Warn("Ignoring cancel on unknown challenge")
	return nil
}

// RecordAction fans one completed user action out to every active challenge
// with a matching action type. Each match gets the detail appended to its
// log; a challenge reaching its target transitions to completed and earns
// its reward exactly once. The status guard makes the reward single-shot: a
// challenge passes through the active-to-completed edge only one time, and
// further matching actions skip it because it is no longer active.
//
// All mutations are applied in memory and persisted with a single save.
// Rewards are issued only after that save succeeds.
func (s *ChallengeService) RecordAction(ctx context.Context, actionType models.ActionType, detail models.CompletedActionDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenges, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to record action: %v", err)
	}

	var completed []models.Challenge
	changed := false

	for i := range challenges {
		challenge := &challenges[i]
		if challenge.Status != models.StatusActive || challenge.ActionType != actionType {
			continue
		}

		challenge.CompletedActions = append(challenge.CompletedActions, detail)
		challenge.CurrentCount = len(challenge.CompletedActions)
		changed = true

		if challenge.CurrentCount >= challenge.TargetCount {
			now := time.Now()
			challenge.Status = models.StatusCompleted
			challenge.CompletedAt = &now
			completed = append(completed, *challenge)
		}
	}

	if !changed {
		logger.Log.WithField("action_type", actionType).Debug("No active challenge matched action")
		return nil
	}

	if err := s.repo.Save(ctx, challenges); err != nil {
		return fmt.Errorf("failed to record action: %v", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"action_type": actionType,
		"detail_id":   detail.ID,
		"completed":   len(completed),
	}).Info("Action recorded against active challenges")

	for _, challenge := range completed {
		if _, err := s.reward.Issue(ctx, challenge.Reward, challenge.Title, models.CategoryChallenge); err != nil {
			logger.Log.WithError(err).WithField("challenge_id", challenge.ID).Error("Failed to issue challenge reward")
			return fmt.Errorf("failed to issue reward for challenge %q: %v", challenge.ID, err)
		}
		logger.Log.WithFields(logrus.Fields{
			"challenge_id": challenge.ID,
			"reward":       challenge.Reward,
		}).Info("Challenge completed, reward issued")
	}

	return nil
}
