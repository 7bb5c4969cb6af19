package services

import (
	"time"

	"transactions-api/internal/models"
)

// MockTransactions returns the fixed synthetic dataset served whenever the
// live provider cannot be reached. Timestamps are generated relative to
// now so date-window filtering behaves sensibly against mock data.
func MockTransactions() []models.Transaction {
	now := time.Now().UTC()
	stamp := func(age time.Duration) string {
		return now.Add(-age).Format(time.RFC3339)
	}

	return []models.Transaction{
		{
			ID:            "TXN-001",
			Amount:        250.00,
			Currency:      "EUR",
			Status:        models.StatusApproved,
			PaymentMethod: "Credit Card",
			CustomerName:  "Anna Schmidt",
			CustomerEmail: "anna.schmidt@example.com",
			CreatedDate:   stamp(2 * time.Hour),
			Description:   "Order #10021 payment",
			Provider:      "mock",
			Type:          models.TypePayment,
		},
		{
			ID:            "TXN-002",
			Amount:        180.50,
			Currency:      "EUR",
			Status:        models.StatusApproved,
			PaymentMethod: "PayPal",
			CustomerName:  "Luca Moretti",
			CustomerEmail: "luca.moretti@example.com",
			CreatedDate:   stamp(5 * time.Hour),
			Description:   "Order #10022 payment",
			Provider:      "mock",
			Type:          models.TypePayment,
		},
		{
			ID:            "TXN-003",
			Amount:        320.75,
			Currency:      "EUR",
			Status:        models.StatusPending,
			PaymentMethod: "Bank Transfer",
			CustomerName:  "Marie Dubois",
			CustomerEmail: "marie.dubois@example.com",
			CreatedDate:   stamp(24 * time.Hour),
			Description:   "Order #10023 payment",
			Provider:      "mock",
			Type:          models.TypePayment,
		},
		{
			ID:            "TXN-004",
			Amount:        95.00,
			Currency:      "EUR",
			Status:        models.StatusDeclined,
			PaymentMethod: "Credit Card",
			CustomerName:  "Jonas Weber",
			CustomerEmail: "jonas.weber@example.com",
			CreatedDate:   stamp(48 * time.Hour),
			Description:   "Order #10024 payment",
			Provider:      "mock",
			Type:          models.TypePayment,
		},
		{
			ID:            "REF-001",
			Amount:        450.25,
			Currency:      "EUR",
			Status:        models.StatusRefunded,
			PaymentMethod: "Refund",
			CustomerName:  "Sofia Rossi",
			CustomerEmail: "sofia.rossi@example.com",
			CreatedDate:   stamp(72 * time.Hour),
			Description:   "Order #10025 refund",
			Provider:      "mock",
			Type:          models.TypeRefund,
		},
	}
}
