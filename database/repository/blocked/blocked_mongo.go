package blockedRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no blocked slot matches the given id.
var ErrNotFound = errors.New("blocked slot not found")

// MongoBlockedRepo implements BlockedRepository using MongoDB.
type MongoBlockedRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedRepo creates a new instance of BlockedRepository using MongoDB.
func NewMongoBlockedRepo(db *mongo.Database) BlockedRepository {
	repo := &MongoBlockedRepo{coll: db.Collection("blocked_slots")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create blocked slot indexes: %v\n", err)
	}
	return repo
}

func (r *MongoBlockedRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// InsertMany persists a batch of blocked slot documents.
func (r *MongoBlockedRepo) InsertMany(ctx context.Context, blocks []models.BlockedSlot) error {
	if len(blocks) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(blocks))
	for _, b := range blocks {
		docs = append(docs, b)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error creating blocked slots: %w", err)
	}
	return nil
}

// ListByDate retrieves all blocked slots for a given date.
func (r *MongoBlockedRepo) ListByDate(ctx context.Context, date string) ([]models.BlockedSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("error fetching blocked slots: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedSlot
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding blocked slots: %w", err)
	}
	return blocks, nil
}

// List retrieves all blocked slots.
func (r *MongoBlockedRepo) List(ctx context.Context) ([]models.BlockedSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching blocked slots: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedSlot
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding blocked slots: %w", err)
	}
	return blocks, nil
}

// Delete removes a blocked slot by id.
func (r *MongoBlockedRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error removing blocked slot with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
