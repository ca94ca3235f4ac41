package routes

import (
	"time"

	"cazpay/handlers"
	"cazpay/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// limited returns the rate limiting middleware, if any, for browser-facing routes.
func limited(hb *handlers.HandlerBundle) []gin.HandlerFunc {
	if hb.RateLimit == nil {
		return nil
	}
	return []gin.HandlerFunc{hb.RateLimit}
}

// RegisterCheckoutRoutes registers the public payment form endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api", limited(hb)...)
	{
		api.POST("/create-checkout-session", hb.CreateCheckoutSession)
		api.GET("/options", hb.GetCheckoutOptions)
		api.GET("/checkout/session/:sessionID", hb.GetSessionSummary)
	}
	r.Group("/", limited(hb)...).GET("/success", hb.SuccessPage)
}

// RegisterWebhookRoutes registers provider callbacks. They carry their own signature
// and are not subject to rate limits or admin checks.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/stripe/webhook", hb.StripeWebhook)
}

// RegisterSettingsRoutes registers the price-per-day endpoints. Reading is public,
// writing requires an admin session.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	settings := r.Group("/api/settings", limited(hb)...)
	{
		settings.GET("/price", hb.GetPrice)
		settings.POST("/price", middleware.AdminSessionMiddleware(hb.AdminSessions), hb.UpdatePrice)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/admin", limited(hb)...)
	{
		adminGroup.POST("/login", hb.AdminLogin)
		adminGroup.POST("/logout", hb.AdminLogout)
		adminGroup.GET("/dashboard", hb.AdminDashboardPage)
		adminGroup.GET("/api/orders", middleware.AdminSessionMiddleware(hb.AdminSessions), hb.AdminListOrders)
	}
	r.Group("/api", limited(hb)...).GET("/dashboard", middleware.AdminSessionMiddleware(hb.AdminSessions), hb.AdminDashboardData)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCheckoutRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
