package main

import (
	"context"
	"fmt"
	"time"

	"cazpay/config"
	"cazpay/database"
	paymentRepo "cazpay/database/repository/payment"
	settingsRepo "cazpay/database/repository/settings"
	"cazpay/services/pricing"
	"cazpay/utils"

	"go.uber.org/zap"
)

// env holds the connections a command needs.
type env struct {
	payments paymentRepo.PaymentRepository
	pricing  pricing.PricingService
}

func connect() (*env, func(), error) {
	config.LoadConfig()
	utils.GetLogger()

	if err := database.InitDB(); err != nil {
		return nil, nil, err
	}

	// The price cache is optional here: without Redis, the server's copy expires on its own.
	var cache pricing.PriceCache
	if err := utils.InitCache(); err != nil {
		zap.L().Warn("redis unavailable, price cache will not be invalidated", zap.Error(err))
	} else {
		cache = pricing.NewRedisPriceCache(utils.GetCacheClient(), 10*time.Minute)
	}

	db := database.Database()
	e := &env{
		payments: paymentRepo.NewMongoPaymentRepo(db),
		pricing:  pricing.NewPricingService(settingsRepo.NewMongoSettingsRepo(db), cache, config.AppConfig.DefaultPricePerDay),
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Close(ctx); err != nil {
			fmt.Printf("warning: mongo disconnect: %v\n", err)
		}
	}
	return e, cleanup, nil
}
