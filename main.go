// File: cazpay/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cazpay/config"
	"cazpay/cron"
	"cazpay/database"
	paymentRepo "cazpay/database/repository/payment"
	settingsRepo "cazpay/database/repository/settings"
	"cazpay/handlers"
	"cazpay/middleware"
	"cazpay/routes"
	"cazpay/services/admin"
	"cazpay/services/checkout"
	"cazpay/services/pricing"
	"cazpay/services/tasks"
	"cazpay/templates"
	"cazpay/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if err := database.InitDB(); err != nil {
		logger.Fatal("main: database unavailable", zap.Error(err))
	}
	if err := utils.InitCache(); err != nil {
		logger.Fatal("main: cache unavailable", zap.Error(err))
	}

	cfg := config.AppConfig
	if cfg.StripeKey == "" || cfg.StripeWebhookSecret == "" {
		logger.Warn("main: stripe keys are not configured; checkout and webhooks will fail")
	}
	stripe.Key = cfg.StripeKey

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.SetHTMLTemplate(templates.Load())

	// repositories.
	db := database.Database()
	payments := paymentRepo.NewMongoPaymentRepo(db)
	settings := settingsRepo.NewMongoSettingsRepo(db)

	// background queue.
	redisOpts := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
	queueClient := asynq.NewClient(redisOpts)
	defer queueClient.Close()

	// services.
	pricingService := pricing.NewPricingService(
		settings,
		pricing.NewRedisPriceCache(utils.GetCacheClient(), 10*time.Minute),
		cfg.DefaultPricePerDay,
	)

	checkoutService := &checkout.DefaultCheckoutService{
		Payments:   payments,
		Pricing:    pricingService,
		Gateway:    checkout.NewStripeGateway(cfg.StripeWebhookSecret),
		Dedupe:     checkout.NewRedisDeduper(utils.GetCacheClient(), 72*time.Hour),
		Scheduler:  tasks.NewAsynqScheduler(queueClient),
		BaseURL:    cfg.BaseURL,
		SessionTTL: time.Duration(cfg.CheckoutExpiryMinutes) * time.Minute,
	}

	sessionSecret := cfg.SessionSecret
	if sessionSecret == "" {
		if config.IsProduction() {
			logger.Fatal("main: SESSION_SECRET must be set in production")
		}
		sessionSecret = "dev-session-secret"
		logger.Warn("main: SESSION_SECRET not set, using a development secret")
	}
	authenticator, err := admin.NewAuthenticator(cfg.AdminPassword, cfg.AdminPasswordHash, sessionSecret)
	if err != nil {
		logger.Fatal("main: admin authenticator", zap.Error(err))
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		logger.Warn("main: no admin password configured; admin login is disabled")
	}
	adminService := admin.NewAdminService(payments, authenticator)

	worker, err := cron.StartPaymentWorker(redisOpts, cfg.WorkerConcurrency, checkoutService)
	if err != nil {
		logger.Fatal("main: payment worker", zap.Error(err))
	}

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, utils.GetCacheClient(), database.MongoClient)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	webhookHandler := handlers.NewWebhookHandler(checkoutService)
	settingsHandler := handlers.NewSettingsHandler(pricingService)
	adminHandler := handlers.NewAdminHandler(adminService, config.IsProduction())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminSessions: adminService,
		RateLimit:     middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin),

		// Checkout endpoints.
		CreateCheckoutSession: checkoutHandler.CreateCheckoutSession,
		GetCheckoutOptions:    checkoutHandler.GetOptions,
		GetSessionSummary:     checkoutHandler.GetSessionSummary,
		SuccessPage:           checkoutHandler.SuccessPage,

		// Webhook endpoints.
		StripeWebhook: webhookHandler.StripeWebhook,

		// Settings endpoints.
		GetPrice:    settingsHandler.GetPrice,
		UpdatePrice: settingsHandler.UpdatePrice,

		// Admin endpoints.
		AdminLogin:         adminHandler.Login,
		AdminLogout:        adminHandler.Logout,
		AdminListOrders:    adminHandler.ListOrders,
		AdminDashboardData: adminHandler.DashboardData,
		AdminDashboardPage: adminHandler.DashboardPage,

		Health: handlers.HealthHandler,
	}

	routes.RegisterRoutes(router, handlerBundle, cfg.AllowedOrigins)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.Close(ctx); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
