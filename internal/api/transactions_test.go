package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"transactions-api/internal/middleware"
	"transactions-api/internal/models"
	"transactions-api/internal/response"
	"transactions-api/internal/services"
)

type fakeFetcher struct {
	fetchFn   func(ctx context.Context, filters models.TransactionFilters) *models.FetchResult
	refreshFn func(ctx context.Context) *models.FetchResult
}

func (f *fakeFetcher) FetchTransactions(ctx context.Context, filters models.TransactionFilters) *models.FetchResult {
	return f.fetchFn(ctx, filters)
}

func (f *fakeFetcher) RefreshTransactions(ctx context.Context) *models.FetchResult {
	return f.refreshFn(ctx)
}

func testRouter(factory FetcherFactory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewTransactionHandler(factory)
	group := r.Group("/api/transactions")
	group.Use(func(c *gin.Context) {
		c.Set(middleware.MerchantKey, &models.Merchant{MerchantID: "default", APIKey: "key"})
	})
	group.GET("", handler.GetTransactions)
	group.POST("/refresh", handler.RefreshTransactions)

	return r
}

func mockResultFactory(usingMock bool) FetcherFactory {
	return func(merchant *models.Merchant) (TransactionFetcher, error) {
		return &fakeFetcher{
			fetchFn: func(ctx context.Context, filters models.TransactionFilters) *models.FetchResult {
				return &models.FetchResult{Data: services.MockTransactions(), UsingMockData: usingMock}
			},
			refreshFn: func(ctx context.Context) *models.FetchResult {
				return &models.FetchResult{Data: services.MockTransactions(), UsingMockData: usingMock}
			},
		}, nil
	}
}

func TestGetTransactionsEnvelope(t *testing.T) {
	r := testRouter(mockResultFactory(false))

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload response.TransactionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.True(t, payload.Success)
	require.False(t, payload.UsingMockData)
	require.Len(t, payload.Data, 5)
	require.Equal(t, 430.50, payload.Metrics.TotalApproved)
	require.Equal(t, 320.75, payload.Metrics.TotalPending)
	require.Equal(t, 95.00, payload.Metrics.TotalDeclined)
	require.Equal(t, 450.25, payload.Metrics.TotalRefunded)
	require.Equal(t, -19.75, payload.Metrics.TotalRevenue)
	require.Equal(t, 5, payload.Metrics.TotalTransactions)
}

func TestGetTransactionsStatusFilterShapesView(t *testing.T) {
	var gotFilters models.TransactionFilters
	factory := func(merchant *models.Merchant) (TransactionFetcher, error) {
		return &fakeFetcher{
			fetchFn: func(ctx context.Context, filters models.TransactionFilters) *models.FetchResult {
				gotFilters = filters
				return &models.FetchResult{Data: services.MockTransactions()}
			},
		}, nil
	}
	r := testRouter(factory)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?status=approved", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "approved", gotFilters.Status)

	var payload response.TransactionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	// The view is filtered; the metrics cover the full fetch.
	require.Len(t, payload.Data, 2)
	require.Equal(t, 5, payload.Metrics.TotalTransactions)
}

func TestGetTransactionsInvalidParams(t *testing.T) {
	r := testRouter(mockResultFactory(false))

	for _, target := range []string{
		"/api/transactions?from=not-a-date",
		"/api/transactions?to=13/01/2026",
		"/api/transactions?limit=abc",
		"/api/transactions?limit=-1",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)

		var payload response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		require.False(t, payload.Success)
		require.NotEmpty(t, payload.Error)
	}
}

func TestGetTransactionsFromBecomesDayWindow(t *testing.T) {
	var gotFilters models.TransactionFilters
	factory := func(merchant *models.Merchant) (TransactionFetcher, error) {
		return &fakeFetcher{
			fetchFn: func(ctx context.Context, filters models.TransactionFilters) *models.FetchResult {
				gotFilters = filters
				return &models.FetchResult{Data: nil}
			},
		}, nil
	}
	r := testRouter(factory)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?from=2026-08-23", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Greater(t, gotFilters.DateRange, 0)
}

func TestRefreshTransactions(t *testing.T) {
	refreshed := false
	factory := func(merchant *models.Merchant) (TransactionFetcher, error) {
		return &fakeFetcher{
			refreshFn: func(ctx context.Context) *models.FetchResult {
				refreshed = true
				return &models.FetchResult{Data: services.MockTransactions(), UsingMockData: true}
			},
		}, nil
	}
	r := testRouter(factory)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/refresh", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, refreshed)

	var payload response.TransactionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.True(t, payload.UsingMockData)
	require.Len(t, payload.Data, 5)
}

func TestBrokenConnectionServesMockData(t *testing.T) {
	factory := func(merchant *models.Merchant) (TransactionFetcher, error) {
		return nil, errors.New("commerce API key is required")
	}
	r := testRouter(factory)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload response.TransactionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.True(t, payload.UsingMockData)
	require.Len(t, payload.Data, 5)
}
