package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"transactions-api/internal/models"
)

func filterFixture() []models.Transaction {
	now := time.Now().UTC()
	return []models.Transaction{
		{
			ID:            "TXN-100",
			Status:        models.StatusApproved,
			CustomerName:  "Anna Schmidt",
			CustomerEmail: "anna.schmidt@example.com",
			Description:   "Order #10021 payment",
			CreatedDate:   now.Add(-2 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:            "TXN-101",
			Status:        models.StatusPending,
			CustomerName:  "Luca Moretti",
			CustomerEmail: "luca@example.com",
			Description:   "Order #10022 payment",
			CreatedDate:   now.AddDate(0, 0, -10).Format(time.RFC3339),
		},
		{
			ID:            "REF-102",
			Status:        models.StatusRefunded,
			CustomerName:  "Marie Dubois",
			CustomerEmail: "marie@example.com",
			Description:   "Order #10023 refund",
			CreatedDate:   now.AddDate(0, 0, -3).Format(time.RFC3339),
		},
	}
}

func TestApplyFiltersIdentity(t *testing.T) {
	transactions := filterFixture()
	result := ApplyFilters(transactions, models.TransactionFilters{})

	require.Equal(t, transactions, result)
	// Fresh slice, not the input.
	require.NotSame(t, &transactions[0], &result[0])
}

func TestApplyFiltersStatusCaseInsensitive(t *testing.T) {
	transactions := filterFixture()

	for _, status := range []string{"APPROVED", "approved", "Approved"} {
		result := ApplyFilters(transactions, models.TransactionFilters{Status: status})
		require.Len(t, result, 1)
		require.Equal(t, "TXN-100", result[0].ID)
	}

	result := ApplyFilters(transactions, models.TransactionFilters{Status: "all"})
	require.Len(t, result, 3)
}

func TestApplyFiltersSearch(t *testing.T) {
	transactions := filterFixture()

	// Name substring, case-insensitive.
	result := ApplyFilters(transactions, models.TransactionFilters{SearchQuery: "moretti"})
	require.Len(t, result, 1)
	require.Equal(t, "TXN-101", result[0].ID)

	// Email substring.
	result = ApplyFilters(transactions, models.TransactionFilters{SearchQuery: "ANNA.SCHMIDT@"})
	require.Len(t, result, 1)
	require.Equal(t, "TXN-100", result[0].ID)

	// Id substring.
	result = ApplyFilters(transactions, models.TransactionFilters{SearchQuery: "ref-"})
	require.Len(t, result, 1)
	require.Equal(t, "REF-102", result[0].ID)

	// Description substring.
	result = ApplyFilters(transactions, models.TransactionFilters{SearchQuery: "#10022"})
	require.Len(t, result, 1)
	require.Equal(t, "TXN-101", result[0].ID)

	// No field matches.
	result = ApplyFilters(transactions, models.TransactionFilters{SearchQuery: "zzz-nothing"})
	require.Empty(t, result)
}

func TestApplyFiltersDateRange(t *testing.T) {
	transactions := filterFixture()

	result := ApplyFilters(transactions, models.TransactionFilters{DateRange: 7})
	require.Len(t, result, 2)
	for _, txn := range result {
		require.NotEqual(t, "TXN-101", txn.ID)
	}

	result = ApplyFilters(transactions, models.TransactionFilters{DateRange: 30})
	require.Len(t, result, 3)
}

func TestApplyFiltersCompose(t *testing.T) {
	transactions := filterFixture()

	result := ApplyFilters(transactions, models.TransactionFilters{
		Status:      "refunded",
		SearchQuery: "marie",
		DateRange:   7,
	})
	require.Len(t, result, 1)
	require.Equal(t, "REF-102", result[0].ID)

	// Same predicates, search misses.
	result = ApplyFilters(transactions, models.TransactionFilters{
		Status:      "refunded",
		SearchQuery: "anna",
		DateRange:   7,
	})
	require.Empty(t, result)
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	transactions := filterFixture()
	snapshot := make([]models.Transaction, len(transactions))
	copy(snapshot, transactions)

	ApplyFilters(transactions, models.TransactionFilters{Status: "approved", SearchQuery: "anna", DateRange: 1})

	require.Equal(t, snapshot, transactions)
}
