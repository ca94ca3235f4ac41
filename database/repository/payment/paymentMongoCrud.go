package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cazpay/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new payment document. Missing id and timestamps are filled in.
func (r *MongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = now
	}
	payment.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// SetSessionID stores the checkout session id on a payment.
func (r *MongoPaymentRepo) SetSessionID(ctx context.Context, id, sessionID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"stripeSessionId": sessionID,
		"updatedAt":       time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set session id on payment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// GetByID retrieves a payment by its id.
func (r *MongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetBySessionID retrieves a payment by its checkout session id.
func (r *MongoPaymentRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"stripeSessionId": sessionID})
}

func (r *MongoPaymentRepo) findOne(ctx context.Context, filter bson.M) (*models.Payment, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, filter).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	return &payment, nil
}

// GetAll retrieves all payments sorted by createdAt descending.
func (r *MongoPaymentRepo) GetAll(ctx context.Context) ([]models.Payment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	payments := make([]models.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// MarkPaid transitions a pending payment to paid with a single conditional update.
func (r *MongoPaymentRepo) MarkPaid(ctx context.Context, id, sessionID, paymentIntentID string, at time.Time) (bool, error) {
	set := bson.M{
		"status":    models.PaymentStatusPaid,
		"paidAt":    at,
		"updatedAt": at,
	}
	if sessionID != "" {
		set["stripeSessionId"] = sessionID
	}
	if paymentIntentID != "" {
		set["stripePaymentIntentId"] = paymentIntentID
	}
	return r.transition(ctx, id, set)
}

// MarkFailed transitions a pending payment to failed.
func (r *MongoPaymentRepo) MarkFailed(ctx context.Context, id, reason string, at time.Time) (bool, error) {
	return r.transition(ctx, id, bson.M{
		"status":        models.PaymentStatusFailed,
		"failureReason": reason,
		"failedAt":      at,
		"updatedAt":     at,
	})
}

func (r *MongoPaymentRepo) transition(ctx context.Context, id string, set bson.M) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": id, "status": models.PaymentStatusPending}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to update payment %s: %w", id, err)
	}
	if res.MatchedCount == 1 {
		return true, nil
	}

	// Nothing matched the pending filter: distinguish "already settled" from "missing".
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to look up payment %s: %w", id, err)
	}
	if n == 0 {
		return false, ErrPaymentNotFound
	}
	return false, nil
}
