package api

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"transactions-api/internal/config"
	"transactions-api/internal/middleware"
	"transactions-api/internal/models"
	"transactions-api/internal/provider/commerce"
	"transactions-api/internal/response"
	"transactions-api/internal/services"
	"transactions-api/pkg/logging"

	"github.com/gin-gonic/gin"
)

// TransactionFetcher is the orchestrator surface the handlers consume.
type TransactionFetcher interface {
	FetchTransactions(ctx context.Context, filters models.TransactionFilters) *models.FetchResult
	RefreshTransactions(ctx context.Context) *models.FetchResult
}

// FetcherFactory builds a fetcher for the merchant a request resolved to.
type FetcherFactory func(merchant *models.Merchant) (TransactionFetcher, error)

// TransactionHandler serves the transaction endpoints
type TransactionHandler struct {
	newFetcher FetcherFactory
}

// NewTransactionHandler creates a transaction handler
func NewTransactionHandler(factory FetcherFactory) *TransactionHandler {
	return &TransactionHandler{newFetcher: factory}
}

// DefaultFetcherFactory wires a commerce client and the shared cache for
// the given merchant connection.
func DefaultFetcherFactory(merchant *models.Merchant) (TransactionFetcher, error) {
	baseURL := merchant.APIBaseURL
	if baseURL == "" {
		baseURL = config.AppConfig.CommerceAPIURL
	}

	client, err := commerce.NewClient(baseURL, merchant.APIKey, merchant.SiteID)
	if err != nil {
		return nil, err
	}

	return services.NewTransactionService(
		client,
		services.WithCache(services.NewCacheService()),
		services.WithMerchantID(merchant.MerchantID),
		services.WithFallbackCurrency(merchant.FallbackCurrency),
		services.WithWindowDays(config.AppConfig.DefaultWindowDays),
	), nil
}

// GetTransactions handles GET /api/transactions
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	merchant, ok := merchantFromContext(c)
	if !ok {
		return
	}

	result := h.fetch(c, merchant, func(f TransactionFetcher) *models.FetchResult {
		return f.FetchTransactions(c.Request.Context(), filters)
	})

	metrics := services.CalculateMetrics(result.Data)
	view := services.ApplyFilters(result.Data, filters)
	response.TransactionsJSON(c, view, metrics, result.UsingMockData)
}

// RefreshTransactions handles POST /api/transactions/refresh, fetching
// the last seven days.
func (h *TransactionHandler) RefreshTransactions(c *gin.Context) {
	merchant, ok := merchantFromContext(c)
	if !ok {
		return
	}

	result := h.fetch(c, merchant, func(f TransactionFetcher) *models.FetchResult {
		return f.RefreshTransactions(c.Request.Context())
	})

	metrics := services.CalculateMetrics(result.Data)
	response.TransactionsJSON(c, result.Data, metrics, result.UsingMockData)
}

// fetch runs one orchestrator call. A merchant whose connection cannot
// even be constructed is handled like an unreachable provider: the
// synthetic dataset is served rather than an error.
func (h *TransactionHandler) fetch(c *gin.Context, merchant *models.Merchant, call func(TransactionFetcher) *models.FetchResult) *models.FetchResult {
	fetcher, err := h.newFetcher(merchant)
	if err != nil {
		logging.Warnf("Provider connection unavailable for merchant %s, serving mock transactions: %v", merchant.MerchantID, err)
		return &models.FetchResult{Data: services.MockTransactions(), UsingMockData: true}
	}
	return call(fetcher)
}

func merchantFromContext(c *gin.Context) (*models.Merchant, bool) {
	value, exists := c.Get(middleware.MerchantKey)
	if !exists {
		response.ErrorJSON(c, http.StatusInternalServerError, "Merchant not resolved")
		return nil, false
	}
	merchant, ok := value.(*models.Merchant)
	if !ok {
		response.ErrorJSON(c, http.StatusInternalServerError, "Merchant not resolved")
		return nil, false
	}
	return merchant, true
}

// parseFilters reads status, from, to and limit query parameters. The
// absolute from timestamp is converted to the relative day window the
// pipeline filters on; to is validated but carries no constraint beyond
// the window.
func parseFilters(c *gin.Context) (models.TransactionFilters, bool) {
	filters := models.TransactionFilters{
		Status:      c.Query("status"),
		SearchQuery: c.Query("search"),
	}

	if from := c.Query("from"); from != "" {
		fromTime, err := parseTimestamp(from)
		if err != nil {
			response.ErrorJSON(c, http.StatusBadRequest, "Invalid from timestamp")
			return filters, false
		}
		if age := time.Since(fromTime); age > 0 {
			filters.DateRange = int(math.Ceil(age.Hours() / 24))
		}
	}

	if to := c.Query("to"); to != "" {
		if _, err := parseTimestamp(to); err != nil {
			response.ErrorJSON(c, http.StatusBadRequest, "Invalid to timestamp")
			return filters, false
		}
	}

	if limit := c.Query("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed < 0 {
			response.ErrorJSON(c, http.StatusBadRequest, "Invalid limit")
			return filters, false
		}
		filters.Limit = parsed
	}

	return filters, true
}

func parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
