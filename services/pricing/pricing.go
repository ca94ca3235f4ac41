package pricing

import (
	"context"
	"errors"
	"fmt"

	settingsRepo "cazpay/database/repository/settings"
	"cazpay/models"

	"go.uber.org/zap"
)

func (s *DefaultPricingService) defaultSetting() models.PriceSetting {
	return models.PriceSetting{
		ID:       models.PricingSettingsID,
		Amount:   s.DefaultPrice,
		Currency: models.Currency,
	}
}

// GetPrice returns the stored price, falling back to the default when none is stored.
func (s *DefaultPricingService) GetPrice(ctx context.Context) (models.PriceSetting, error) {
	if s.Cache != nil {
		cached, ok, err := s.Cache.Get(ctx)
		if err != nil {
			zap.L().Warn("price cache read failed", zap.Error(err))
		} else if ok {
			return *cached, nil
		}
	}

	setting, err := s.Repo.GetPrice(ctx)
	switch {
	case errors.Is(err, settingsRepo.ErrSettingNotFound):
		return s.defaultSetting(), nil
	case err != nil:
		return s.defaultSetting(), fmt.Errorf("failed to load price: %w", err)
	}

	// A zero amount is treated like an unset price.
	if setting.Amount == 0 {
		return s.defaultSetting(), nil
	}
	if setting.Currency == "" {
		setting.Currency = models.Currency
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, *setting); err != nil {
			zap.L().Warn("price cache write failed", zap.Error(err))
		}
	}
	return *setting, nil
}

// SetPrice stores a new per-day amount in pence and drops the cached copy. It returns
// the price that will be charged from now on.
func (s *DefaultPricingService) SetPrice(ctx context.Context, amount int64) (models.PriceSetting, error) {
	if amount < 0 {
		return models.PriceSetting{}, ErrInvalidPrice
	}

	setting, err := s.Repo.UpsertPrice(ctx, amount, models.Currency)
	if err != nil {
		return models.PriceSetting{}, fmt.Errorf("failed to store price: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			zap.L().Warn("price cache invalidation failed", zap.Error(err))
		}
	}
	zap.L().Info("price per day updated", zap.Int64("amount", amount))

	// A stored zero is read back as the default, so report what will be charged.
	if setting.Amount == 0 {
		effective := s.defaultSetting()
		effective.UpdatedAt = setting.UpdatedAt
		return effective, nil
	}
	return *setting, nil
}
