package admin

import (
	"context"
	"errors"
	"time"

	paymentRepo "cazpay/database/repository/payment"
	"cazpay/models"
)

var (
	ErrInvalidPassword    = errors.New("incorrect password")
	ErrAdminNotConfigured = errors.New("admin password not configured")
	ErrInvalidSession     = errors.New("invalid admin session")
)

// SessionTTL is how long an admin session cookie stays valid.
const SessionTTL = 24 * time.Hour

// AdminService backs the password-gated order dashboard.
type AdminService interface {
	ListOrders(ctx context.Context, query models.OrderQuery) (*models.OrderListing, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	Login(password string) (string, error)
	VerifySession(token string) error
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Payments paymentRepo.PaymentRepository
	Auth     *Authenticator
}

// NewAdminService wires an AdminService.
func NewAdminService(payments paymentRepo.PaymentRepository, auth *Authenticator) *DefaultAdminService {
	return &DefaultAdminService{Payments: payments, Auth: auth}
}

// ListPayments returns every payment, newest first.
func (s *DefaultAdminService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return s.Payments.GetAll(ctx)
}

// Login checks the admin password and issues a session token.
func (s *DefaultAdminService) Login(password string) (string, error) {
	if err := s.Auth.CheckPassword(password); err != nil {
		return "", err
	}
	return s.Auth.IssueSession()
}

// VerifySession validates a session token from the admin cookie.
func (s *DefaultAdminService) VerifySession(token string) error {
	return s.Auth.VerifySession(token)
}
