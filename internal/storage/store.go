package storage

import (
	"context"
)

// Keys of the persisted records. The whole application state lives in three
// JSON blobs under these keys.
const (
	KeyChallenges   = "challenges"
	KeyTransactions = "transactions"
	KeyBalance      = "balance"
)

// Store is the single persistence primitive: raw JSON blobs addressed by a
// fixed key. Everything above it (repositories, services) goes through this
// port, so the engine is testable without a real backend.
type Store interface {
	// Get returns the blob stored under key. The second return value is
	// false when no record exists, which is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set unconditionally overwrites the blob stored under key.
	Set(ctx context.Context, key string, data []byte) error
}
