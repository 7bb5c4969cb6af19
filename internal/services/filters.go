package services

import (
	"strings"
	"time"

	"transactions-api/internal/models"
)

// statusFilterAll is the sentinel that disables the status predicate.
const statusFilterAll = "all"

// ApplyFilters applies the status, search and date-range predicates as a
// logical AND and returns a fresh slice. The input is never mutated; with
// no active filter the result is a copy of the input.
func ApplyFilters(transactions []models.Transaction, filters models.TransactionFilters) []models.Transaction {
	result := make([]models.Transaction, 0, len(transactions))

	var cutoff time.Time
	if filters.DateRange > 0 {
		cutoff = time.Now().AddDate(0, 0, -filters.DateRange)
	}

	for _, txn := range transactions {
		if !matchesStatus(txn, filters.Status) {
			continue
		}
		if !matchesSearch(txn, filters.SearchQuery) {
			continue
		}
		if !matchesDateRange(txn, cutoff) {
			continue
		}
		result = append(result, txn)
	}

	return result
}

func matchesStatus(txn models.Transaction, status string) bool {
	if status == "" || strings.EqualFold(status, statusFilterAll) {
		return true
	}
	return strings.EqualFold(string(txn.Status), status)
}

// matchesSearch does a case-insensitive substring match across customer
// name, email, id and description. Empty fields simply never match.
func matchesSearch(txn models.Transaction, query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)

	for _, field := range []string{txn.CustomerName, txn.CustomerEmail, txn.ID, txn.Description} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// matchesDateRange keeps transactions created on or after the cutoff.
// Unparsable dates are kept rather than dropped, matching the
// never-lose-a-record posture of the transformer.
func matchesDateRange(txn models.Transaction, cutoff time.Time) bool {
	if cutoff.IsZero() {
		return true
	}
	created, err := time.Parse(time.RFC3339, txn.CreatedDate)
	if err != nil {
		return true
	}
	return !created.Before(cutoff)
}
