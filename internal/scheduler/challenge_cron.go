package cron

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/jobs"
)

func StartChallengeCronJobs(scanner *jobs.DeadlineScanner) {
	c := cron.New()

	// Deadline visibility
	c.AddFunc("@hourly", func() {
		err := scanner.RunScan(context.Background())
		if err != nil {
			logrus.WithError(err).Error("Deadline scan failed")
		}
	})

	c.Start()
}
