package repository

import (
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
)

// retiredChallengeIDs lists challenge definitions removed from the product.
// Old installations may still carry them in their persisted data.
var retiredChallengeIDs = map[string]bool{
	"plastic-free-week": true,
}

// retiredActionTypes lists action types that no longer exist.
var retiredActionTypes = map[models.ActionType]bool{
	"car-free-day": true,
}

// localizedCopy holds the English strings for challenges persisted by app
// versions that only shipped German copy.
type localizedCopy struct {
	Title       string
	Description string
	Difficulty  string
}

var englishCopy = map[string]localizedCopy{
	"bike-week":         {Title: "Bike Week", Description: "Ride your bike to campus five times", Difficulty: "Medium"},
	"recycling-routine": {Title: "Recycling Routine", Description: "Recycle ten times at the collection points", Difficulty: "Hard"},
	"cup-streak":        {Title: "Reusable Cup Streak", Description: "Use your reusable cup seven times", Difficulty: "Easy"},
	"quiz-master":       {Title: "Quiz Master", Description: "Complete three sustainability quizzes", Difficulty: "Easy"},
	"book-circle":       {Title: "Book Circle", Description: "Exchange two books at the book exchange", Difficulty: "Easy"},
	"event-explorer":    {Title: "Event Explorer", Description: "Take part in two sustainability events", Difficulty: "Medium"},
}

// MigrateChallenges normalizes persisted challenge records: retired
// definitions are dropped and missing English fields are backfilled from the
// static table. Records with no table match pass through unchanged. The
// function is pure and idempotent, so it is safe to run on every read.
func MigrateChallenges(challenges []models.Challenge) []models.Challenge {
	migrated := make([]models.Challenge, 0, len(challenges))

	for _, challenge := range challenges {
		if retiredChallengeIDs[challenge.ID] || retiredActionTypes[challenge.ActionType] {
			continue
		}

		if english, ok := englishCopy[challenge.ID]; ok {
			if challenge.TitleEn == "" {
				challenge.TitleEn = english.Title
			}
			if challenge.DescriptionEn == "" {
				challenge.DescriptionEn = english.Description
			}
			if challenge.DifficultyEn == "" {
				challenge.DifficultyEn = english.Difficulty
			}
		}

		migrated = append(migrated, challenge)
	}

	return migrated
}
