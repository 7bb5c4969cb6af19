package models

// TransactionStatus is the canonical status a transaction may hold,
// independent of the provider's own vocabulary.
type TransactionStatus string

const (
	StatusApproved  TransactionStatus = "APPROVED"
	StatusPending   TransactionStatus = "PENDING"
	StatusDeclined  TransactionStatus = "DECLINED"
	StatusRefunded  TransactionStatus = "REFUNDED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// TransactionType distinguishes payments from refunds
type TransactionType string

const (
	TypePayment TransactionType = "PAYMENT"
	TypeRefund  TransactionType = "REFUND"
)

// Transaction is the canonical shape every provider record is normalized
// into. The rendering layer only ever sees this type.
type Transaction struct {
	ID            string            `json:"id"`
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod string            `json:"paymentMethod"`
	CustomerName  string            `json:"customerName,omitempty"`
	CustomerEmail string            `json:"customerEmail,omitempty"`
	CreatedDate   string            `json:"createdDate"`
	Description   string            `json:"description,omitempty"`

	// Provenance
	Provider              string          `json:"provider,omitempty"`
	ProviderTransactionID string          `json:"providerTransactionId,omitempty"`
	Type                  TransactionType `json:"type,omitempty"`
}

// TransactionMetrics holds the aggregate totals derived from a transaction
// collection. Recomputed on demand, never persisted.
type TransactionMetrics struct {
	TotalApproved     float64 `json:"totalApproved"`
	TotalPending      float64 `json:"totalPending"`
	TotalDeclined     float64 `json:"totalDeclined"`
	TotalRefunded     float64 `json:"totalRefunded"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalTransactions int     `json:"totalTransactions"`
}

// TransactionFilters describes an ephemeral query over a transaction
// collection. Limit and Offset are carried through but not enforced.
type TransactionFilters struct {
	Status      string `json:"status,omitempty"`
	DateRange   int    `json:"dateRange,omitempty"` // days relative to now
	SearchQuery string `json:"searchQuery,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}

// FetchResult is what the fetch orchestrator hands back to callers.
type FetchResult struct {
	Data          []Transaction `json:"data"`
	UsingMockData bool          `json:"usingMockData"`
}
