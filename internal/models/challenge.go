package models

import (
	"time"
)

// ActionType is the closed set of real-world eco actions that can advance a challenge.
type ActionType string

const (
	ActionCycling            ActionType = "cycling"
	ActionRecycling          ActionType = "recycling"
	ActionReusableCup        ActionType = "reusable-cup"
	ActionQuiz               ActionType = "quiz"
	ActionEvent              ActionType = "event"
	ActionBookExchange       ActionType = "book-exchange"
	ActionEventParticipation ActionType = "event-participation"
)

// AllowedActionTypes is used to validate incoming action types at the handler level.
var AllowedActionTypes = map[ActionType]bool{
	ActionCycling:            true,
	ActionRecycling:          true,
	ActionReusableCup:        true,
	ActionQuiz:               true,
	ActionEvent:              true,
	ActionBookExchange:       true,
	ActionEventParticipation: true,
}

// Valid reports whether the action type belongs to the closed set.
func (a ActionType) Valid() bool {
	return AllowedActionTypes[a]
}

// ChallengeStatus is the lifecycle state of a challenge.
// Transitions: inactive -> active -> completed, plus active -> inactive on cancel.
// completed is terminal.
type ChallengeStatus string

const (
	StatusInactive  ChallengeStatus = "inactive"
	StatusActive    ChallengeStatus = "active"
	StatusCompleted ChallengeStatus = "completed"
)

// CompletedActionDetail is one recorded user action. It is immutable once
// appended to a challenge; only cancel clears the whole log.
type CompletedActionDetail struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Duration  int       `json:"duration,omitempty"` // minutes
	Distance  float64   `json:"distance,omitempty"` // kilometers
	Amount    int       `json:"amount,omitempty"`
	Score     int       `json:"score,omitempty"`
	Location  string    `json:"location,omitempty"`
}

// Challenge is a multi-step goal tied to one action type, with a target
// count, deadline and coin reward. German strings are the primary copy,
// the *En fields carry the English translation.
type Challenge struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	TitleEn       string     `json:"titleEn"`
	Description   string     `json:"description"`
	DescriptionEn string     `json:"descriptionEn"`
	ActionType    ActionType `json:"actionType"`
	TargetCount   int        `json:"targetCount"`
	CurrentCount  int        `json:"currentCount"`
	Reward        int        `json:"reward"`
	Deadline      time.Time  `json:"deadline"`
	Difficulty    string     `json:"difficulty"`
	DifficultyEn  string     `json:"difficultyEn"`

	Status      ChallengeStatus `json:"status"`
	StartedAt   *time.Time      `json:"startedAt,omitempty"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`

	// CompletedActions is the append-only evidence log backing CurrentCount.
	CompletedActions []CompletedActionDetail `json:"completedActions"`
}
