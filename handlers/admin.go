// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"cazpay/middleware"
	"cazpay/models"
	"cazpay/services/admin"
	"cazpay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the password-gated order dashboard.
type AdminHandler struct {
	Service      admin.AdminService
	SecureCookie bool
}

// NewAdminHandler creates a new AdminHandler. secureCookie marks the session cookie
// Secure, which production deployments behind TLS want.
func NewAdminHandler(svc admin.AdminService, secureCookie bool) *AdminHandler {
	return &AdminHandler{Service: svc, SecureCookie: secureCookie}
}

// Login checks the shared password. Only a correct password sets the session cookie.
func (ah *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Password string `form:"password" json:"password"`
	}
	_ = c.ShouldBind(&input)
	fromForm := isFormRequest(c)

	token, err := ah.Service.Login(input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotConfigured) {
			getLogger(c).Error("admin login attempted but no password is configured")
		} else {
			getLogger(c).Warn("admin login rejected", zap.String("ip", c.ClientIP()))
		}
		if fromForm {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Incorrect password"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Incorrect password"})
		return
	}

	ah.setSessionCookie(c, token, int(admin.SessionTTL.Seconds()))
	if fromForm {
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie.
func (ah *AdminHandler) Logout(c *gin.Context) {
	ah.setSessionCookie(c, "", -1)
	if isFormRequest(c) {
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ah *AdminHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminSessionCookie, value, maxAge, "/", "", ah.SecureCookie, true)
}

// ListOrders returns the filtered, sorted order rows as a JSON array.
func (ah *AdminHandler) ListOrders(c *gin.Context) {
	listing, err := ah.Service.ListOrders(c.Request.Context(), parseOrderQuery(c))
	if err != nil {
		zap.L().Error("Failed to fetch orders", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch orders", "")
		return
	}
	c.JSON(http.StatusOK, listing.Orders)
}

// DashboardData returns every payment, newest first.
func (ah *AdminHandler) DashboardData(c *gin.Context) {
	payments, err := ah.Service.ListPayments(c.Request.Context())
	if err != nil {
		zap.L().Error("Dashboard API Error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch dashboard data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payments})
}

// DashboardPage renders the login form without a session, otherwise the order table.
func (ah *AdminHandler) DashboardPage(c *gin.Context) {
	if !middleware.HasAdminSession(c, ah.Service) {
		c.HTML(http.StatusOK, "login.html", gin.H{})
		return
	}

	listing, err := ah.Service.ListOrders(c.Request.Context(), parseOrderQuery(c))
	if err != nil {
		zap.L().Error("Failed to fetch orders", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	statusFilter := listing.Query.Status
	if statusFilter == "" {
		statusFilter = "all"
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Listing":      listing,
		"Statuses":     []string{"all", models.PaymentStatusPending, models.PaymentStatusPaid, models.PaymentStatusFailed},
		"StatusFilter": statusFilter,
		"Dir":          dirParam(listing.Query.Desc),
		"Columns":      dashboardColumns(listing.Query),
	})
}

// parseOrderQuery reads ?q=&status=&sort=&dir= ; dir defaults to desc.
func parseOrderQuery(c *gin.Context) models.OrderQuery {
	var q models.OrderQuery
	_ = c.ShouldBindQuery(&q)
	q.Desc = !strings.EqualFold(c.Query("dir"), "asc")
	return admin.NormalizeQuery(q)
}

func dirParam(desc bool) string {
	if desc {
		return "desc"
	}
	return "asc"
}

type dashboardColumn struct {
	Label string
	Key   string
	Href  string
	Arrow string
}

// dashboardColumns builds header links: clicking the active column flips direction,
// clicking another column sorts it descending.
func dashboardColumns(q models.OrderQuery) []dashboardColumn {
	cols := []dashboardColumn{
		{Label: "Vehicle", Key: models.OrderSortRegistration},
		{Label: "Zone & Type"},
		{Label: "Customer", Key: models.OrderSortEmail},
		{Label: "Dates", Key: models.OrderSortDateCount},
		{Label: "Amount", Key: models.OrderSortTotal},
		{Label: "Status", Key: models.OrderSortStatus},
		{Label: "Date Created", Key: models.OrderSortCreatedAt},
	}
	for i := range cols {
		if cols[i].Key == "" {
			continue
		}
		dir := "desc"
		if cols[i].Key == q.SortBy {
			if q.Desc {
				dir = "asc"
				cols[i].Arrow = " ▼"
			} else {
				cols[i].Arrow = " ▲"
			}
		}
		v := url.Values{}
		if q.Search != "" {
			v.Set("q", q.Search)
		}
		if q.Status != "" {
			v.Set("status", q.Status)
		}
		v.Set("sort", cols[i].Key)
		v.Set("dir", dir)
		cols[i].Href = "/admin/dashboard?" + v.Encode()
	}
	return cols
}

func isFormRequest(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == gin.MIMEPOSTForm || ct == gin.MIMEMultipartPOSTForm
}
