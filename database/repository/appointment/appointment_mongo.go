package appointmentRepo

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

var (
	// ErrNotFound is returned when no appointment matches the given id.
	ErrNotFound = errors.New("appointment not found")
	// ErrDuplicateSlot is returned when the unique slot index rejects an
	// insert: another active appointment already starts at the exact same
	// date and time. This is the store-level guarantee that at most one
	// non-cancelled booking commits per slot start under concurrent writes.
	ErrDuplicateSlot = errors.New("slot already booked")
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	repo := &MongoAppointmentRepo{coll: db.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates the id index and the partial unique slot index. The
// partial filter restricts uniqueness to active statuses so a cancelled or
// no-show appointment frees its exact start time for rebooking.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": models.ActiveStatuses},
				})},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert persists a new appointment document.
func (r *MongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// ListByDate returns appointments filtered by optional date and status.
func (r *MongoAppointmentRepo) ListByDate(ctx context.Context, date, status string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// BookedIntervals returns the slot projections of active appointments on the
// given date.
func (r *MongoAppointmentRepo) BookedIntervals(ctx context.Context, date string) ([]models.BookedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date":   date,
		"status": bson.M{"$in": models.ActiveStatuses},
	}
	opts := options.Find().SetProjection(bson.M{"time": 1, "duration_minutes": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching booked intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var intervals []models.BookedInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, fmt.Errorf("error decoding booked intervals: %w", err)
	}
	return intervals, nil
}

// UpdateStatus overwrites the status field and returns the updated document.
// Any status in the enumerated set may replace any other; validation of the
// value happens at the boundary.
func (r *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var appt models.Appointment
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&appt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating appointment %s: %w", id, err)
	}
	return &appt, nil
}

// Delete removes an appointment document. Administrative override only.
func (r *MongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting appointment %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByDateStatus counts appointments matching a date and status.
func (r *MongoAppointmentRepo) CountByDateStatus(ctx context.Context, date, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"date": date, "status": status})
	if err != nil {
		return 0, fmt.Errorf("error counting appointments: %w", err)
	}
	return count, nil
}

// ListMonthByStatus returns appointments in a YYYY-MM month with a status.
func (r *MongoAppointmentRepo) ListMonthByStatus(ctx context.Context, month, status string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date":   bson.M{"$regex": "^" + month},
		"status": status,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching month appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding month appointments: %w", err)
	}
	return appts, nil
}
