package services

import "transactions-api/internal/models"

// MapStatus maps a provider payment status onto the canonical status set.
// Unknown or empty statuses fall back to PENDING so a single odd record
// never breaks the page. Refund records bypass this mapper entirely and
// are always REFUNDED.
func MapStatus(providerStatus string) models.TransactionStatus {
	switch providerStatus {
	case "APPROVED", "AUTHORIZED":
		return models.StatusApproved
	case "DECLINED", "CANCELED":
		return models.StatusDeclined
	case "REFUNDED", "PARTIALLY_REFUNDED":
		return models.StatusRefunded
	case "PENDING", "PENDING_MERCHANT":
		return models.StatusPending
	default:
		return models.StatusPending
	}
}
