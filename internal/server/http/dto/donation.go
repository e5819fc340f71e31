package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DonorInfo describes donor contact details.
type DonorInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// CreateOrderRequest is the payload of create-order and create-card-order.
type CreateOrderRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency" binding:"omitempty,len=3,alpha"`
	Frequency string          `json:"frequency"`
	DonorInfo *DonorInfo      `json:"donorInfo"`
}

// LinkResponse is a processor link passed to the browser.
type LinkResponse struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

// CreateOrderResponse describes a created order. Card orders carry no links.
type CreateOrderResponse struct {
	ID     string         `json:"id"`
	Status string         `json:"status"`
	Links  []LinkResponse `json:"links,omitempty"`
}

// CaptureOrderRequest is the payload of capture-order.
type CaptureOrderRequest struct {
	OrderID string `json:"orderID"`
}

// CaptureOrderResponse passes processor capture details through.
type CaptureOrderResponse struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	PurchaseUnits json.RawMessage `json:"purchase_units,omitempty"`
	Payer         json.RawMessage `json:"payer,omitempty"`
}

// DonationResponse is the public view of a ledger record.
type DonationResponse struct {
	ID                  string     `json:"id"`
	Amount              float64    `json:"amount"`
	Currency            string     `json:"currency"`
	Frequency           string     `json:"frequency"`
	DonorInfo           DonorInfo  `json:"donorInfo"`
	PaymentMethod       string     `json:"paymentMethod"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"createdAt"`
	CapturedAt          *time.Time `json:"capturedAt,omitempty"`
	PaypalTransactionID string     `json:"paypalTransactionId,omitempty"`
	ExclusiveDonor      bool       `json:"exclusiveDonor"`
}

// SummaryResponse aggregates the ledger.
type SummaryResponse struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	TotalAmount float64 `json:"totalAmount"`
	Currency    string  `json:"currency"`
}

// DonationsResponse is the admin listing.
type DonationsResponse struct {
	Donations []DonationResponse `json:"donations"`
	Summary   SummaryResponse    `json:"summary"`
}
