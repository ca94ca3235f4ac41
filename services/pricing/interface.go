package pricing

import (
	"context"
	"errors"

	settingsRepo "cazpay/database/repository/settings"
	"cazpay/models"
)

// DefaultPricePerDay is used until an admin stores a price: £14.00.
const DefaultPricePerDay int64 = 1400

// ErrInvalidPrice is returned for negative amounts.
var ErrInvalidPrice = errors.New("invalid amount")

// PricingService resolves and updates the per-day charge.
type PricingService interface {
	// GetPrice returns the current price. On a storage error it returns the default
	// price together with the error.
	GetPrice(ctx context.Context) (models.PriceSetting, error)
	// SetPrice stores amount and returns the effective price; zero resets to the default.
	SetPrice(ctx context.Context, amount int64) (models.PriceSetting, error)
}

// DefaultPricingService reads through the cache to the settings collection.
type DefaultPricingService struct {
	Repo         settingsRepo.SettingsRepository
	Cache        PriceCache
	DefaultPrice int64
}

// NewPricingService wires the service; a zero defaultPrice means DefaultPricePerDay.
// cache may be nil.
func NewPricingService(repo settingsRepo.SettingsRepository, cache PriceCache, defaultPrice int64) *DefaultPricingService {
	if defaultPrice <= 0 {
		defaultPrice = DefaultPricePerDay
	}
	return &DefaultPricingService{
		Repo:         repo,
		Cache:        cache,
		DefaultPrice: defaultPrice,
	}
}
