package response

import (
	"net/http"

	"transactions-api/internal/models"

	"github.com/gin-gonic/gin"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// TransactionsResponse is the envelope returned by the transaction
// endpoints: the filtered view, the headline metrics and the mock-data
// indicator.
type TransactionsResponse struct {
	Success       bool                      `json:"success"`
	Data          []models.Transaction      `json:"data"`
	Metrics       models.TransactionMetrics `json:"metrics"`
	UsingMockData bool                      `json:"usingMockData"`
}

// Success returns a success response
func Success(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// Error returns an error response
func Error(message string) Response {
	return Response{
		Success: false,
		Error:   message,
	}
}

// SuccessJSON sends a success JSON response
func SuccessJSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Success(data))
}

// ErrorJSON sends an error JSON response
func ErrorJSON(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Error(message))
}

// TransactionsJSON sends the transaction envelope
func TransactionsJSON(c *gin.Context, data []models.Transaction, metrics models.TransactionMetrics, usingMockData bool) {
	c.JSON(http.StatusOK, TransactionsResponse{
		Success:       true,
		Data:          data,
		Metrics:       metrics,
		UsingMockData: usingMockData,
	})
}
