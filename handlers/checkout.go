package handlers

import (
	"errors"
	"net/http"

	"cazpay/models"
	"cazpay/services/checkout"
	"cazpay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler serves the payment form's server endpoints.
type CheckoutHandler struct {
	Service checkout.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(svc checkout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Service: svc}
}

// CreateCheckoutSession stores a pending payment and returns the hosted checkout URL.
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if verr, ok := checkout.AsValidationError(err); ok {
			utils.JSONError(c, http.StatusBadRequest, verr.Message, verr.Field)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.Service.CreateCheckout(c.Request.Context(), req)
	if err != nil {
		if verr, ok := checkout.AsValidationError(err); ok {
			utils.JSONError(c, http.StatusBadRequest, verr.Message, verr.Field)
			return
		}
		getLogger(c).Error("checkout session creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create checkout session", "")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOptions lists the zones, vehicle types and limits the form may submit.
func (h *CheckoutHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, checkout.Options())
}

// GetSessionSummary returns the success-page view of a checkout session.
func (h *CheckoutHandler) GetSessionSummary(c *gin.Context) {
	summary, err := h.Service.GetSessionSummary(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, checkout.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Checkout session not found", "")
			return
		}
		getLogger(c).Error("checkout session lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve checkout session", "")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SuccessPage renders the post-payment confirmation page for ?session_id=.
func (h *CheckoutHandler) SuccessPage(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.HTML(http.StatusBadRequest, "success.html", gin.H{"Error": "No session_id found in URL."})
		return
	}

	summary, err := h.Service.GetSessionSummary(c.Request.Context(), sessionID)
	if err != nil {
		status := http.StatusInternalServerError
		msg := "We could not load your payment details. Please try again later."
		if errors.Is(err, checkout.ErrSessionNotFound) {
			status = http.StatusNotFound
			msg = "Payment session not found."
		} else {
			getLogger(c).Error("success page session lookup failed", zap.Error(err))
		}
		c.HTML(status, "success.html", gin.H{"Error": msg})
		return
	}
	c.HTML(http.StatusOK, "success.html", gin.H{"Summary": summary})
}
