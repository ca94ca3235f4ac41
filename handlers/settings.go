package handlers

import (
	"errors"
	"math"
	"net/http"

	"cazpay/services/pricing"
	"cazpay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler exposes the price-per-day setting.
type SettingsHandler struct {
	Pricing pricing.PricingService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(p pricing.PricingService) *SettingsHandler {
	return &SettingsHandler{Pricing: p}
}

// GetPrice returns {amount, currency}. On a storage error the default price is still
// returned, with status 500.
func (h *SettingsHandler) GetPrice(c *gin.Context) {
	setting, err := h.Pricing.GetPrice(c.Request.Context())
	status := http.StatusOK
	if err != nil {
		getLogger(c).Error("Error fetching price", zap.Error(err))
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"amount": setting.Amount, "currency": setting.Currency})
}

// UpdatePrice stores a new non-negative integer price in pence.
func (h *SettingsHandler) UpdatePrice(c *gin.Context) {
	var input struct {
		Amount *float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Amount == nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid amount", "amount must be a number of pence")
		return
	}
	amount := *input.Amount
	if amount < 0 || amount != math.Trunc(amount) || amount > math.MaxInt32 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid amount", "amount must be a non-negative whole number of pence")
		return
	}

	setting, err := h.Pricing.SetPrice(c.Request.Context(), int64(amount))
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidPrice) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid amount", "")
			return
		}
		getLogger(c).Error("Error updating price", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update price", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "amount": setting.Amount})
}
