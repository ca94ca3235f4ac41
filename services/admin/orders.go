package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cazpay/models"
	"cazpay/utils"
)

// ListOrders loads every payment and applies the dashboard's search, status filter and
// sort in memory.
func (s *DefaultAdminService) ListOrders(ctx context.Context, query models.OrderQuery) (*models.OrderListing, error) {
	payments, err := s.Payments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return BuildListing(payments, query), nil
}

// BuildListing filters and sorts payments for display.
func BuildListing(payments []models.Payment, query models.OrderQuery) *models.OrderListing {
	query = NormalizeQuery(query)

	filtered := FilterPayments(payments, query.Search, query.Status)
	SortPayments(filtered, query.SortBy, query.Desc)

	listing := &models.OrderListing{
		Orders: make([]models.OrderView, 0, len(filtered)),
		Count:  len(filtered),
		Query:  query,
	}
	for _, p := range filtered {
		listing.Revenue += p.TotalAmount
		listing.Orders = append(listing.Orders, ToOrderView(p))
	}
	listing.RevenueDisplay = utils.FormatGBP(listing.Revenue)
	return listing
}

// NormalizeQuery applies defaults: all statuses, newest first.
func NormalizeQuery(q models.OrderQuery) models.OrderQuery {
	q.Search = strings.TrimSpace(q.Search)
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	if q.Status == "all" {
		q.Status = ""
	}
	switch q.SortBy {
	case models.OrderSortRegistration, models.OrderSortEmail, models.OrderSortDateCount,
		models.OrderSortTotal, models.OrderSortStatus, models.OrderSortCreatedAt:
	default:
		q.SortBy = models.OrderSortCreatedAt
		q.Desc = true
	}
	return q
}

// FilterPayments keeps payments whose registration number, email or zone contains search
// (case-insensitive) and whose status equals status. Empty arguments match everything.
func FilterPayments(payments []models.Payment, search, status string) []models.Payment {
	needle := strings.ToLower(search)
	out := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if status != "" && p.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.RegistrationNumber), needle) &&
			!strings.Contains(strings.ToLower(p.Email), needle) &&
			!strings.Contains(strings.ToLower(p.CleanAirZone), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortPayments orders payments in place by key. Ties keep their incoming order.
func SortPayments(payments []models.Payment, key string, desc bool) {
	less := lessFunc(key)
	sort.SliceStable(payments, func(i, j int) bool {
		if desc {
			return less(payments[j], payments[i])
		}
		return less(payments[i], payments[j])
	})
}

func lessFunc(key string) func(a, b models.Payment) bool {
	switch key {
	case models.OrderSortRegistration:
		return func(a, b models.Payment) bool { return a.RegistrationNumber < b.RegistrationNumber }
	case models.OrderSortEmail:
		return func(a, b models.Payment) bool { return a.Email < b.Email }
	case models.OrderSortDateCount:
		return func(a, b models.Payment) bool { return a.DateCount() < b.DateCount() }
	case models.OrderSortTotal:
		return func(a, b models.Payment) bool { return a.TotalAmount < b.TotalAmount }
	case models.OrderSortStatus:
		return func(a, b models.Payment) bool { return a.Status < b.Status }
	default:
		return func(a, b models.Payment) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}

// ToOrderView serializes a payment for the admin listing.
func ToOrderView(p models.Payment) models.OrderView {
	dates := p.SelectedDates
	if dates == nil {
		dates = []string{}
	}
	return models.OrderView{
		ID:                   p.ID,
		RegistrationNumber:   p.RegistrationNumber,
		RegistrationLocation: p.RegistrationLocation,
		VehicleType:          p.VehicleType,
		CleanAirZone:         p.CleanAirZone,
		SelectedDates:        dates,
		DateCount:            len(dates),
		Email:                p.Email,
		TotalAmount:          p.TotalAmount,
		Total:                utils.PenceToPounds(p.TotalAmount),
		Currency:             p.Currency,
		Status:               p.Status,
		CreatedAt:            p.CreatedAt,
		StripeSessionID:      p.StripeSessionID,
	}
}
