package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/services"
)

// DeadlineScanner reports on challenge deadlines. Deadlines are advisory:
// the engine never auto-cancels an expired challenge, this job only makes
// the expiry visible in the logs.
type DeadlineScanner struct {
	ChallengeService *services.ChallengeService
}

// NewDeadlineScanner creates a new instance of DeadlineScanner.
func NewDeadlineScanner(challengeService *services.ChallengeService) *DeadlineScanner {
	return &DeadlineScanner{ChallengeService: challengeService}
}

// RunScan logs every active challenge that is due within 24 hours or
// already expired.
func (d *DeadlineScanner) RunScan(ctx context.Context) error {
	challenges, err := d.ChallengeService.GetChallenges(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch challenges: %v", err)
	}

	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)

	dueSoon := 0
	expired := 0
	for _, challenge := range challenges {
		if challenge.Status != models.StatusActive {
			continue
		}

		if challenge.Deadline.Before(now) {
			expired++
			logrus.WithFields(logrus.Fields{
				"challenge_id": challenge.ID,
				"deadline":     challenge.Deadline.Format(time.RFC3339),
			}).Warn("Active challenge past its deadline")
			continue
		}

		if challenge.Deadline.Before(tomorrow) {
			dueSoon++
			logrus.WithFields(logrus.Fields{
				"challenge_id": challenge.ID,
				"deadline":     challenge.Deadline.Format(time.RFC3339),
			}).Info("Active challenge due within 24h")
		}
	}

	logrus.WithFields(logrus.Fields{
		"due_soon": dueSoon,
		"expired":  expired,
	}).Info("Deadline scan completed")
	return nil
}
