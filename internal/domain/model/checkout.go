package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CheckoutRequest is a processor-neutral order request. Method selects the payload shape.
type CheckoutRequest struct {
	ReferenceID string
	Method      PaymentMethod
	Amount      decimal.Decimal
	Currency    string
	Description string
	BrandName   string

	// Account flow only.
	PayeeEmail string
	ReturnURL  string
	CancelURL  string
}

// Link is a HATEOAS link returned by the processor.
type Link struct {
	Href   string
	Rel    string
	Method string
}

// CreatedOrder is processor acknowledgement of order creation.
type CreatedOrder struct {
	ID     string
	Status string
	Links  []Link
}

// ApprovalURL returns the payer approval link, if any.
func (o *CreatedOrder) ApprovalURL() string {
	for _, l := range o.Links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			return l.Href
		}
	}
	return ""
}

// CapturedOrder is processor capture result. PurchaseUnits and Payer are passed through untouched.
type CapturedOrder struct {
	ID            string
	Status        string
	TransactionID string
	PurchaseUnits json.RawMessage
	Payer         json.RawMessage
}
