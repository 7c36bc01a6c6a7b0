package models

import (
	"time"
)

// TransactionType tells whether a ledger entry earned or spent coins.
type TransactionType string

const (
	TransactionEarned TransactionType = "earned"
	TransactionSpent  TransactionType = "spent"
)

// Valid reports whether the transaction type is one of the two known values.
func (t TransactionType) Valid() bool {
	return t == TransactionEarned || t == TransactionSpent
}

// TransactionCategory is the closed set of sources a ledger entry can come
// from: one of the eco action types, a completed challenge, or a reward
// redemption in the shop.
type TransactionCategory string

const (
	CategoryCycling            TransactionCategory = "cycling"
	CategoryRecycling          TransactionCategory = "recycling"
	CategoryReusableCup        TransactionCategory = "reusable-cup"
	CategoryQuiz               TransactionCategory = "quiz"
	CategoryEvent              TransactionCategory = "event"
	CategoryBookExchange       TransactionCategory = "book-exchange"
	CategoryEventParticipation TransactionCategory = "event-participation"
	CategoryChallenge          TransactionCategory = "challenge"
	CategoryReward             TransactionCategory = "reward"
)

// AllowedCategories is used to validate categories at the call site instead
// of writing arbitrary strings into the ledger.
var AllowedCategories = map[TransactionCategory]bool{
	CategoryCycling:            true,
	CategoryRecycling:          true,
	CategoryReusableCup:        true,
	CategoryQuiz:               true,
	CategoryEvent:              true,
	CategoryBookExchange:       true,
	CategoryEventParticipation: true,
	CategoryChallenge:          true,
	CategoryReward:             true,
}

// Valid reports whether the category belongs to the closed set.
func (c TransactionCategory) Valid() bool {
	return AllowedCategories[c]
}

// PointsTransaction is one append-only ledger entry. Entries are never
// mutated or deleted once written.
type PointsTransaction struct {
	ID          string              `json:"id"`
	Type        TransactionType     `json:"type"`
	Amount      int                 `json:"amount"`
	Action      string              `json:"action"`
	Category    TransactionCategory `json:"category"`
	Timestamp   time.Time           `json:"timestamp"`
	Description string              `json:"description,omitempty"`
}

// PointsTotals are the derived earned/spent sums over the ledger.
type PointsTotals struct {
	Earned int `json:"earned"`
	Spent  int `json:"spent"`
}
