package customerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no customer matches the given key.
var ErrNotFound = errors.New("customer not found")

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo creates a new instance of CustomerRepository using MongoDB.
func NewMongoCustomerRepo(db *mongo.Database) CustomerRepository {
	repo := &MongoCustomerRepo{coll: db.Collection("customers")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create customer indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// UpsertByPhone atomically creates or refreshes the customer aggregate for a
// phone number in a single FindOneAndUpdate, so concurrent bookings by the
// same customer cannot produce duplicate records.
func (r *MongoCustomerRepo) UpsertByPhone(ctx context.Context, phone, fullName, email, visitDate string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"full_name":  fullName,
		"last_visit": visitDate,
	}
	if email != "" {
		set["email"] = email
	}
	update := bson.M{
		"$set": set,
		"$inc": bson.M{"total_appointments": 1},
		"$setOnInsert": bson.M{
			"id":    uuid.New().String(),
			"phone": phone,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var customer models.Customer
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"phone": phone}, update, opts).Decode(&customer)
	if err != nil {
		return nil, fmt.Errorf("error upserting customer %s: %w", phone, err)
	}
	return &customer, nil
}

// GetByPhone retrieves a customer by phone number.
func (r *MongoCustomerRepo) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&customer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer with phone %s: %w", phone, err)
	}
	return &customer, nil
}

// List returns all customers sorted by most recent visit first.
func (r *MongoCustomerRepo) List(ctx context.Context) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "last_visit", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("error decoding customers: %w", err)
	}
	return customers, nil
}

// Count returns the total number of customer records.
func (r *MongoCustomerRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting customers: %w", err)
	}
	return count, nil
}

// Update applies an explicit field-level patch and returns the updated record.
func (r *MongoCustomerRepo) Update(ctx context.Context, id string, patch models.CustomerPatch) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{}
	if patch.FullName != "" {
		set["full_name"] = patch.FullName
	}
	if patch.Email != "" {
		set["email"] = patch.Email
	}
	if len(set) == 0 {
		return r.getByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var customer models.Customer
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating customer %s: %w", id, err)
	}
	return &customer, nil
}

func (r *MongoCustomerRepo) getByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, err)
	}
	return &customer, nil
}

// Delete removes a customer record. Administrative override only.
func (r *MongoCustomerRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting customer %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
