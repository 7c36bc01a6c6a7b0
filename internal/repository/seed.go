package repository

import (
	"time"

	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
)

// DefaultChallenges returns the hard-coded seed set used when no challenge
// data has been persisted yet. IDs are stable and never reused.
func DefaultChallenges() []models.Challenge {
	now := time.Now()

	return []models.Challenge{
		{
			ID:            "bike-week",
			Title:         "Fahrrad-Woche",
			TitleEn:       "Bike Week",
			Description:   "Fahre fünfmal mit dem Fahrrad zur Uni",
			DescriptionEn: "Ride your bike to campus five times",
			ActionType:    models.ActionCycling,
			TargetCount:   5,
			Reward:        50,
			Deadline:      now.Add(14 * 24 * time.Hour),
			Difficulty:    "Mittel",
			DifficultyEn:  "Medium",
			Status:        models.StatusInactive,
		},
		{
			ID:            "recycling-routine",
			Title:         "Recycling-Routine",
			TitleEn:       "Recycling Routine",
			Description:   "Recycle zehnmal an den Sammelstellen",
			DescriptionEn: "Recycle ten times at the collection points",
			ActionType:    models.ActionRecycling,
			TargetCount:   10,
			Reward:        60,
			Deadline:      now.Add(21 * 24 * time.Hour),
			Difficulty:    "Schwer",
			DifficultyEn:  "Hard",
			Status:        models.StatusInactive,
		},
		{
			ID:            "cup-streak",
			Title:         "Mehrwegbecher-Serie",
			TitleEn:       "Reusable Cup Streak",
			Description:   "Nutze siebenmal deinen Mehrwegbecher",
			DescriptionEn: "Use your reusable cup seven times",
			ActionType:    models.ActionReusableCup,
			TargetCount:   7,
			Reward:        35,
			Deadline:      now.Add(10 * 24 * time.Hour),
			Difficulty:    "Leicht",
			DifficultyEn:  "Easy",
			Status:        models.StatusInactive,
		},
		{
			ID:            "quiz-master",
			Title:         "Quiz-Meister",
			TitleEn:       "Quiz Master",
			Description:   "Beantworte drei Nachhaltigkeits-Quizze",
			DescriptionEn: "Complete three sustainability quizzes",
			ActionType:    models.ActionQuiz,
			TargetCount:   3,
			Reward:        40,
			Deadline:      now.Add(7 * 24 * time.Hour),
			Difficulty:    "Leicht",
			DifficultyEn:  "Easy",
			Status:        models.StatusInactive,
		},
		{
			ID:            "book-circle",
			Title:         "Bücher-Kreislauf",
			TitleEn:       "Book Circle",
			Description:   "Tausche zwei Bücher im Bücherschrank",
			DescriptionEn: "Exchange two books at the book exchange",
			ActionType:    models.ActionBookExchange,
			TargetCount:   2,
			Reward:        30,
			Deadline:      now.Add(30 * 24 * time.Hour),
			Difficulty:    "Leicht",
			DifficultyEn:  "Easy",
			Status:        models.StatusInactive,
		},
		{
			ID:            "event-explorer",
			Title:         "Event-Entdecker",
			TitleEn:       "Event Explorer",
			Description:   "Nimm an zwei Nachhaltigkeits-Events teil",
			DescriptionEn: "Take part in two sustainability events",
			ActionType:    models.ActionEventParticipation,
			TargetCount:   2,
			Reward:        45,
			Deadline:      now.Add(30 * 24 * time.Hour),
			Difficulty:    "Mittel",
			DifficultyEn:  "Medium",
			Status:        models.StatusInactive,
		},
	}
}
