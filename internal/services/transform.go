package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"transactions-api/internal/models"
	"transactions-api/internal/provider/commerce"
)

const (
	defaultCurrency      = "EUR"
	defaultCustomerName  = "Customer"
	defaultCustomerEmail = "customer@example.com"
	defaultPaymentMethod = "Unknown"
	providerName         = "commerce"
)

// TransformPayment normalizes one provider payment record, together with
// its parent order, into a canonical Transaction. It never fails: every
// missing or malformed field degrades to a documented default.
func TransformPayment(payment commerce.Payment, order commerce.Order, fallbackCurrency string) models.Transaction {
	return models.Transaction{
		ID:                    fallbackID(payment.ID, "TXN"),
		Amount:                parseAmount(payment.Amount),
		Currency:              resolveCurrency(payment.Currency, order.Currency, fallbackCurrency),
		Status:                MapStatus(payment.Status),
		PaymentMethod:         resolvePaymentMethod(payment.PaymentMethod),
		CustomerName:          resolveCustomerName(order),
		CustomerEmail:         resolveCustomerEmail(order),
		CreatedDate:           resolveCreatedDate(payment.CreatedDate, order.CreatedDate),
		Description:           fmt.Sprintf("Order #%s payment", orderReference(order)),
		Provider:              providerName,
		ProviderTransactionID: payment.ProviderRef,
		Type:                  models.TypePayment,
	}
}

// TransformRefund normalizes one provider refund record. Refunds are
// unconditionally REFUNDED and never pass through the status mapper.
func TransformRefund(refund commerce.Refund, order commerce.Order, fallbackCurrency string) models.Transaction {
	return models.Transaction{
		ID:                    fallbackID(refund.ID, "REF"),
		Amount:                parseAmount(refund.Amount),
		Currency:              resolveCurrency(refund.Currency, order.Currency, fallbackCurrency),
		Status:                models.StatusRefunded,
		PaymentMethod:         "Refund",
		CustomerName:          resolveCustomerName(order),
		CustomerEmail:         resolveCustomerEmail(order),
		CreatedDate:           resolveCreatedDate(refund.CreatedDate, order.CreatedDate),
		Description:           fmt.Sprintf("Order #%s refund", orderReference(order)),
		Provider:              providerName,
		ProviderTransactionID: refund.ProviderRef,
		Type:                  models.TypeRefund,
	}
}

// parseAmount parses the provider's decimal-string amount, treating
// missing or unparsable values as zero.
func parseAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

// resolveCurrency applies the payment, then order, then configured
// fallback resolution chain.
func resolveCurrency(paymentCurrency, orderCurrency, fallback string) string {
	if paymentCurrency != "" {
		return paymentCurrency
	}
	if orderCurrency != "" {
		return orderCurrency
	}
	if fallback != "" {
		return fallback
	}
	return defaultCurrency
}

// resolveCustomerName applies the billing contact → buyer info → generic
// fallback resolution chain.
func resolveCustomerName(order commerce.Order) string {
	if order.BillingInfo != nil && order.BillingInfo.ContactDetails != nil {
		if name := joinName(order.BillingInfo.ContactDetails.FirstName, order.BillingInfo.ContactDetails.LastName); name != "" {
			return name
		}
	}
	if order.BuyerInfo != nil {
		if name := joinName(order.BuyerInfo.FirstName, order.BuyerInfo.LastName); name != "" {
			return name
		}
	}
	return defaultCustomerName
}

func resolveCustomerEmail(order commerce.Order) string {
	if order.BuyerInfo != nil && order.BuyerInfo.Email != "" {
		return order.BuyerInfo.Email
	}
	return defaultCustomerEmail
}

func resolvePaymentMethod(method string) string {
	if method == "" {
		return defaultPaymentMethod
	}
	return method
}

func resolveCreatedDate(recordDate, orderDate string) string {
	if recordDate != "" {
		return recordDate
	}
	if orderDate != "" {
		return orderDate
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// fallbackID keeps the provider id when present, otherwise fabricates a
// timestamp-only id. Collisions within the same millisecond are accepted.
func fallbackID(id, prefix string) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func orderReference(order commerce.Order) string {
	if order.Number != "" {
		return order.Number
	}
	return order.ID
}
