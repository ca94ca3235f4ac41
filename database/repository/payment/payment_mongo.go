package paymentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const collectionName = "payments"

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a PaymentRepository backed by db.payments.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	repo := &MongoPaymentRepo{coll: db.Collection(collectionName)}

	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("payment indexes not created", zap.Error(err))
	}
	return repo
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}
