package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"transactions-api/internal/models"
	"transactions-api/internal/provider/commerce"
	"transactions-api/pkg/logging"
)

const refreshWindowDays = 7

var (
	// ErrNoOrders marks an order search that came back empty. An empty
	// provider result is treated the same as an unreachable provider.
	ErrNoOrders = errors.New("no recent orders returned")

	// ErrNoTransactions marks orders that carry no payment or refund
	// records at all.
	ErrNoTransactions = errors.New("no transactions returned for recent orders")
)

// ProviderClient is the slice of the commerce API the orchestrator needs.
type ProviderClient interface {
	SearchOrders(ctx context.Context, createdAfter time.Time) ([]commerce.Order, error)
	ListOrderTransactions(ctx context.Context, orderID string) (*commerce.OrderTransactions, error)
}

// TransactionService coordinates fetching live provider data and falling
// back to the synthetic dataset when the provider cannot serve. The
// dashboard must always render something, so no provider failure ever
// reaches the caller as an error.
type TransactionService struct {
	provider         ProviderClient
	cache            *CacheService
	merchantID       string
	fallbackCurrency string
	windowDays       int
}

// Option configures a TransactionService.
type Option func(*TransactionService)

// WithCache attaches a fetch-result cache.
func WithCache(cache *CacheService) Option {
	return func(s *TransactionService) {
		s.cache = cache
	}
}

// WithMerchantID sets the merchant the service fetches for, used to
// partition the cache.
func WithMerchantID(merchantID string) Option {
	return func(s *TransactionService) {
		s.merchantID = merchantID
	}
}

// WithFallbackCurrency overrides the currency assigned to records that
// carry none.
func WithFallbackCurrency(currency string) Option {
	return func(s *TransactionService) {
		s.fallbackCurrency = currency
	}
}

// WithWindowDays overrides the default fetch window.
func WithWindowDays(days int) Option {
	return func(s *TransactionService) {
		if days > 0 {
			s.windowDays = days
		}
	}
}

// NewTransactionService creates a transaction service for one provider
// connection.
func NewTransactionService(provider ProviderClient, opts ...Option) *TransactionService {
	s := &TransactionService{
		provider:   provider,
		merchantID: "default",
		windowDays: 30,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchTransactions retrieves recent orders with their payments and
// refunds, normalized into canonical transactions. Any failure at any
// step yields the synthetic dataset with UsingMockData set instead of an
// error.
func (s *TransactionService) FetchTransactions(ctx context.Context, filters models.TransactionFilters) *models.FetchResult {
	cacheKey := FetchCacheKey(s.merchantID, filters)
	if s.cache != nil {
		if cached, ok := s.cache.GetFetchResult(ctx, cacheKey); ok {
			return cached
		}
	}

	data, err := s.fetchLive(ctx, filters)
	if err != nil {
		logging.Warnf("Provider fetch failed, serving mock transactions: %v", err)
		return &models.FetchResult{Data: MockTransactions(), UsingMockData: true}
	}

	result := &models.FetchResult{Data: data}
	if s.cache != nil {
		s.cache.StoreFetchResult(ctx, cacheKey, result)
	}
	return result
}

// RefreshTransactions is FetchTransactions constrained to the last week.
func (s *TransactionService) RefreshTransactions(ctx context.Context) *models.FetchResult {
	return s.FetchTransactions(ctx, models.TransactionFilters{DateRange: refreshWindowDays})
}

// fetchLive is the happy path: search orders in the window, list the
// payments and refunds per order, transform everything.
func (s *TransactionService) fetchLive(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	windowDays := s.windowDays
	if filters.DateRange > 0 {
		windowDays = filters.DateRange
	}
	createdAfter := time.Now().AddDate(0, 0, -windowDays)

	orders, err := s.provider.SearchOrders(ctx, createdAfter)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}

	transactions := make([]models.Transaction, 0, len(orders))
	seenRecords := 0
	for _, order := range orders {
		listing, err := s.provider.ListOrderTransactions(ctx, order.ID)
		if err != nil {
			return nil, fmt.Errorf("list transactions for order %s: %w", order.ID, err)
		}

		for _, payment := range listing.Payments {
			seenRecords++
			txn := TransformPayment(payment, order, s.fallbackCurrency)
			if !statusWanted(txn.Status, filters.Status) {
				continue
			}
			transactions = append(transactions, txn)
		}
		for _, refund := range listing.Refunds {
			seenRecords++
			txn := TransformRefund(refund, order, s.fallbackCurrency)
			if !statusWanted(txn.Status, filters.Status) {
				continue
			}
			transactions = append(transactions, txn)
		}
	}

	if seenRecords == 0 {
		return nil, ErrNoTransactions
	}

	return transactions, nil
}

// statusWanted implements the optional status pre-filter applied during
// transformation. An empty collection after pre-filtering is a valid
// result, unlike an empty provider response.
func statusWanted(status models.TransactionStatus, wanted string) bool {
	if wanted == "" || strings.EqualFold(wanted, statusFilterAll) {
		return true
	}
	return strings.EqualFold(string(status), wanted)
}
