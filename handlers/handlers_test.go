package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	paymentRepo "cazpay/database/repository/payment"
	"cazpay/middleware"
	"cazpay/models"
	"cazpay/services/admin"
	"cazpay/templates"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeCheckoutService struct {
	CreateCheckoutFunc    func(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResult, error)
	HandleWebhookFunc     func(ctx context.Context, payload []byte, signature string) error
	GetSessionSummaryFunc func(ctx context.Context, sessionID string) (*models.CheckoutSessionSummary, error)
}

func (f *fakeCheckoutService) CreateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	return f.CreateCheckoutFunc(ctx, req)
}

func (f *fakeCheckoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return f.HandleWebhookFunc(ctx, payload, signature)
}

func (f *fakeCheckoutService) GetSessionSummary(ctx context.Context, sessionID string) (*models.CheckoutSessionSummary, error) {
	return f.GetSessionSummaryFunc(ctx, sessionID)
}

func (f *fakeCheckoutService) ExpirePayment(context.Context, string) error { return nil }

type fakePricingService struct {
	amount int64
	err    error
}

func (f *fakePricingService) GetPrice(context.Context) (models.PriceSetting, error) {
	return models.PriceSetting{Amount: f.amount, Currency: models.Currency}, f.err
}

func (f *fakePricingService) SetPrice(_ context.Context, amount int64) (models.PriceSetting, error) {
	f.amount = amount
	return models.PriceSetting{Amount: amount, Currency: models.Currency}, nil
}

const testPassword = "let-me-in"

type testServer struct {
	router   *gin.Engine
	checkout *fakeCheckoutService
	pricing  *fakePricingService
	payments *paymentRepo.MemoryPaymentRepo
	admin    *admin.DefaultAdminService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth, err := admin.NewAuthenticator(testPassword, "", "test-session-secret")
	require.NoError(t, err)

	ts := &testServer{
		checkout: &fakeCheckoutService{},
		pricing:  &fakePricingService{amount: 1400},
		payments: paymentRepo.NewMemoryPaymentRepo(),
	}
	ts.admin = admin.NewAdminService(ts.payments, auth)

	ch := NewCheckoutHandler(ts.checkout)
	wh := NewWebhookHandler(ts.checkout)
	sh := NewSettingsHandler(ts.pricing)
	ah := NewAdminHandler(ts.admin, false)
	requireAdmin := middleware.AdminSessionMiddleware(ts.admin)

	r := gin.New()
	r.SetHTMLTemplate(templates.Load())
	r.POST("/api/create-checkout-session", ch.CreateCheckoutSession)
	r.GET("/api/options", ch.GetOptions)
	r.GET("/api/checkout/session/:sessionID", ch.GetSessionSummary)
	r.GET("/success", ch.SuccessPage)
	r.POST("/api/stripe/webhook", wh.StripeWebhook)
	r.GET("/api/settings/price", sh.GetPrice)
	r.POST("/api/settings/price", requireAdmin, sh.UpdatePrice)
	r.POST("/admin/login", ah.Login)
	r.POST("/admin/logout", ah.Logout)
	r.GET("/admin/dashboard", ah.DashboardPage)
	r.GET("/admin/api/orders", requireAdmin, ah.ListOrders)
	r.GET("/api/dashboard", requireAdmin, ah.DashboardData)
	ts.router = r
	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AdminSessionCookie {
			return c
		}
	}
	return nil
}

func (ts *testServer) login(t *testing.T) *http.Cookie {
	t.Helper()
	w := ts.do(jsonRequest(http.MethodPost, "/admin/login", `{"password":"`+testPassword+`"}`))
	require.Equal(t, http.StatusOK, w.Code)
	c := sessionCookie(w)
	require.NotNil(t, c)
	return c
}
