package settingsRepo

import (
	"context"
	"errors"

	"cazpay/models"
)

// ErrSettingNotFound is returned when the settings document does not exist yet.
var ErrSettingNotFound = errors.New("setting not found")

// SettingsRepository reads and writes the single-document settings collection.
type SettingsRepository interface {
	GetPrice(ctx context.Context) (*models.PriceSetting, error)
	UpsertPrice(ctx context.Context, amount int64, currency string) (*models.PriceSetting, error)
}
