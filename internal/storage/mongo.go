package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vanessawarbeck/Ecocoins-sub000/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// record is the shape of one key/value document in the records collection.
type record struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore persists the JSON blobs in a single MongoDB collection keyed by _id.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a new instance of MongoStore.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: db.Collection("records"),
	}
}

// Get fetches the blob stored under key.
func (s *MongoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec record
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		logger.Log.WithError(err).WithField("key", key).Error("Failed to fetch record")
		return nil, false, fmt.Errorf("failed to fetch record %q: %v", key, err)
	}
	return rec.Data, true, nil
}

// Set overwrites the blob stored under key, creating the record if needed.
func (s *MongoStore) Set(ctx context.Context, key string, data []byte) error {
	rec := record{Key: key, Data: data, UpdatedAt: time.Now()}

	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, rec, opts)
	if err != nil {
		logger.Log.WithError(err).WithField("key", key).Error("Failed to write record")
		return fmt.Errorf("failed to write record %q: %v", key, err)
	}
	return nil
}
