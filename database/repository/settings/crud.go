package settingsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cazpay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo returns a SettingsRepository backed by db.settings.
func NewMongoSettingsRepo(db *mongo.Database) SettingsRepository {
	return &mongoSettingsRepo{coll: db.Collection("settings")}
}

// GetPrice returns the pricing document.
func (r *mongoSettingsRepo) GetPrice(ctx context.Context) (*models.PriceSetting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var setting models.PriceSetting
	err := r.coll.FindOne(ctx, bson.M{"_id": models.PricingSettingsID}).Decode(&setting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to fetch pricing setting: %w", err)
	}
	return &setting, nil
}

// UpsertPrice writes the pricing document, creating it when absent.
func (r *mongoSettingsRepo) UpsertPrice(ctx context.Context, amount int64, currency string) (*models.PriceSetting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"amount":    amount,
		"currency":  currency,
		"updatedAt": now,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": models.PricingSettingsID}, update, opts); err != nil {
		return nil, fmt.Errorf("failed to update pricing setting: %w", err)
	}
	return &models.PriceSetting{
		ID:        models.PricingSettingsID,
		Amount:    amount,
		Currency:  currency,
		UpdatedAt: now,
	}, nil
}
