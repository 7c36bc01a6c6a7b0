package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vanessawarbeck/Ecocoins-sub000/internal/models"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/storage"
	"github.com/vanessawarbeck/Ecocoins-sub000/pkg/logger"
)

// ChallengeRepository handles typed load/save of the challenge collection
// through the blob store. There is no partial-update API: callers load,
// mutate in memory and save the whole collection.
type ChallengeRepository struct {
	store storage.Store
}

// NewChallengeRepository creates a new instance of ChallengeRepository.
func NewChallengeRepository(store storage.Store) *ChallengeRepository {
	return &ChallengeRepository{store: store}
}

// Load returns the challenge collection. When no data exists the default
// seed set is persisted and returned. Every read passes through
// MigrateChallenges and writes the migrated form back, so stale records
// heal themselves. A corrupt blob is logged and replaced by the seed set.
func (r *ChallengeRepository) Load(ctx context.Context) ([]models.Challenge, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeyChallenges)
	if err != nil {
		return nil, fmt.Errorf("failed to load challenges: %v", err)
	}

	if !ok {
		seed := DefaultChallenges()
		if err := r.Save(ctx, seed); err != nil {
			return nil, err
		}
		logger.Log.WithField("count", len(seed)).Info("Seeded default challenges")
		return seed, nil
	}

	var challenges []models.Challenge
	if err := json.Unmarshal(raw, &challenges); err != nil {
		logger.Log.WithError(err).WithField("size", len(raw)).Warn("Discarding corrupt challenge record, falling back to defaults")
		seed := DefaultChallenges()
		if err := r.Save(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	migrated := MigrateChallenges(challenges)
	if err := r.Save(ctx, migrated); err != nil {
		return nil, err
	}

	return migrated, nil
}

// Save unconditionally overwrites the persisted collection.
func (r *ChallengeRepository) Save(ctx context.Context, challenges []models.Challenge) error {
	data, err := json.Marshal(challenges)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to encode challenges")
		return fmt.Errorf("failed to encode challenges: %v", err)
	}

	if err := r.store.Set(ctx, storage.KeyChallenges, data); err != nil {
		return fmt.Errorf("failed to save challenges: %v", err)
	}
	return nil
}
