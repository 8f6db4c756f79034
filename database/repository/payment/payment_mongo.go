package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo(client *mongo.Client, dbName string) PaymentRepository {
	coll := client.Database(dbName).Collection("payments")
	repo := &MongoPaymentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payment indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "transaction_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_reference", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new payment document.
func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByID retrieves a payment by its unique ID.
func (r *MongoPaymentRepo) GetByID(id string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("payment %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch payment with id %s: %w", id, err)
	}
	return &payment, nil
}

// GetByTransactionID retrieves a payment by its gateway transaction reference.
func (r *MongoPaymentRepo) GetByTransactionID(txRef string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"transaction_id": txRef}).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("payment with transaction %s: %w", txRef, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch payment with transaction %s: %w", txRef, err)
	}
	return &payment, nil
}

// CompleteIfPending transitions Pending -> Completed atomically.
func (r *MongoPaymentRepo) CompleteIfPending(txRef string) (bool, error) {
	return r.transitionIfPending(txRef, models.PaymentCompleted)
}

// FailIfPending transitions Pending -> Failed atomically.
func (r *MongoPaymentRepo) FailIfPending(txRef string) (bool, error) {
	return r.transitionIfPending(txRef, models.PaymentFailed)
}

func (r *MongoPaymentRepo) transitionIfPending(txRef, status string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"transaction_id": txRef, "status": models.PaymentPending}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to transition payment %s to %s: %w", txRef, status, err)
	}
	return result.ModifiedCount > 0, nil
}

// MarkConfirmationSent conditionally sets the confirmation marker.
func (r *MongoPaymentRepo) MarkConfirmationSent(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "confirmation_sent": bson.M{"$ne": true}}
	update := bson.M{"$set": bson.M{"confirmation_sent": true}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to mark payment %s confirmed: %w", id, err)
	}
	return result.ModifiedCount > 0, nil
}
