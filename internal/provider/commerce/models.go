package commerce

// ContactDetails carries the billing contact attached to an order.
type ContactDetails struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// BillingInfo wraps the billing contact block of an order.
type BillingInfo struct {
	ContactDetails *ContactDetails `json:"contactDetails,omitempty"`
}

// BuyerInfo carries the buyer identity attached to an order.
type BuyerInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Order represents an order record as returned by the commerce API.
type Order struct {
	ID          string       `json:"id"`
	Number      string       `json:"number,omitempty"`
	Currency    string       `json:"currency,omitempty"`
	CreatedDate string       `json:"createdDate,omitempty"`
	BillingInfo *BillingInfo `json:"billingInfo,omitempty"`
	BuyerInfo   *BuyerInfo   `json:"buyerInfo,omitempty"`
}

// Payment represents a payment record in its native provider shape.
// Amounts arrive as decimal strings.
type Payment struct {
	ID            string `json:"id,omitempty"`
	Amount        string `json:"amount,omitempty"`
	Currency      string `json:"currency,omitempty"`
	Status        string `json:"status,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	CreatedDate   string `json:"createdDate,omitempty"`
	ProviderRef   string `json:"providerRef,omitempty"`
}

// Refund represents a refund record in its native provider shape.
type Refund struct {
	ID          string `json:"id,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Currency    string `json:"currency,omitempty"`
	CreatedDate string `json:"createdDate,omitempty"`
	Reason      string `json:"reason,omitempty"`
	ProviderRef string `json:"providerRef,omitempty"`
}

// OrderTransactions is the per-order listing of payments and refunds.
type OrderTransactions struct {
	OrderID  string    `json:"orderId"`
	Payments []Payment `json:"payments"`
	Refunds  []Refund  `json:"refunds"`
}

type searchOrdersRequest struct {
	CreatedAfter string `json:"createdAfter,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

type searchOrdersResponse struct {
	Orders []Order `json:"orders"`
}
