package services

import "transactions-api/internal/models"

// CalculateMetrics reduces a transaction collection into its aggregate
// totals in a single pass. The reduction is pure and order-independent;
// an empty collection yields all zeros.
//
// CANCELLED transactions count toward TotalTransactions but land in no
// amount bucket and do not touch revenue.
func CalculateMetrics(transactions []models.Transaction) models.TransactionMetrics {
	metrics := models.TransactionMetrics{
		TotalTransactions: len(transactions),
	}

	for _, txn := range transactions {
		switch txn.Status {
		case models.StatusApproved:
			metrics.TotalApproved += txn.Amount
			metrics.TotalRevenue += txn.Amount
		case models.StatusPending:
			metrics.TotalPending += txn.Amount
		case models.StatusDeclined:
			metrics.TotalDeclined += txn.Amount
		case models.StatusRefunded:
			metrics.TotalRefunded += txn.Amount
			metrics.TotalRevenue -= txn.Amount
		}
	}

	return metrics
}
