// File: handlers/bundle.go
package handlers

import (
	"cazpay/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Session verification for admin-only routes.
	AdminSessions middleware.SessionVerifier
	// Per-client rate limit for browser-facing routes; nil disables it.
	RateLimit gin.HandlerFunc

	// Checkout endpoints.
	CreateCheckoutSession gin.HandlerFunc
	GetCheckoutOptions    gin.HandlerFunc
	GetSessionSummary     gin.HandlerFunc
	SuccessPage           gin.HandlerFunc

	// Webhook endpoints.
	StripeWebhook gin.HandlerFunc

	// Settings endpoints.
	GetPrice    gin.HandlerFunc
	UpdatePrice gin.HandlerFunc

	// Admin endpoints.
	AdminLogin         gin.HandlerFunc
	AdminLogout        gin.HandlerFunc
	AdminListOrders    gin.HandlerFunc
	AdminDashboardData gin.HandlerFunc
	AdminDashboardPage gin.HandlerFunc

	// Health endpoint.
	Health gin.HandlerFunc
}
