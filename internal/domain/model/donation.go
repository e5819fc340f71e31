package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DonationStatus describes donation lifecycle. Status only moves forward.
type DonationStatus string

const (
	DonationStatusCreated   DonationStatus = "CREATED"
	DonationStatusCompleted DonationStatus = "COMPLETED"
)

// Frequency records donor intent. Recurring billing is not performed.
type Frequency string

const (
	FrequencyOneTime Frequency = "one-time"
	FrequencyMonthly Frequency = "monthly"
)

// ParseFrequency maps free-form input to a known frequency, defaulting to one-time.
func ParseFrequency(raw string) Frequency {
	if strings.EqualFold(strings.TrimSpace(raw), string(FrequencyMonthly)) {
		return FrequencyMonthly
	}
	return FrequencyOneTime
}

// PaymentMethod selects the processor payload shape used at order creation.
type PaymentMethod string

const (
	PaymentMethodAccount PaymentMethod = "paypal-account"
	PaymentMethodCard    PaymentMethod = "card"
)

// DefaultCurrency is used when donor does not specify one.
const DefaultCurrency = "USD"

// zeroDecimalCurrencies have no minor unit at the processor.
var zeroDecimalCurrencies = map[string]struct{}{
	"HUF": {},
	"JPY": {},
	"TWD": {},
}

// CurrencyPlaces returns the fraction digits the processor accepts for an upper-case currency code.
func CurrencyPlaces(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[currency]; ok {
		return 0
	}
	return 2
}

// FitsCurrency reports whether amount is positive and representable in currency without rounding.
func FitsCurrency(amount decimal.Decimal, currency string) bool {
	return amount.IsPositive() && amount.Equal(amount.Truncate(CurrencyPlaces(currency)))
}

// ExclusiveDonorThreshold is the captured amount that qualifies a donor for extra communications.
// Amounts are compared as-is, no currency conversion is performed.
var ExclusiveDonorThreshold = decimal.NewFromInt(50)

// QualifiesForExclusiveBenefits reports whether amount meets the exclusive donor threshold.
func QualifiesForExclusiveBenefits(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(ExclusiveDonorThreshold)
}

// DonorInfo holds donor contact details. Email is mandatory, names are display only.
type DonorInfo struct {
	FirstName string
	LastName  string
	Email     string
}

// DisplayName returns donor first name or "Anonymous".
func (d DonorInfo) DisplayName() string {
	if name := strings.TrimSpace(d.FirstName); name != "" {
		return name
	}
	return "Anonymous"
}

// Donation is the local ledger record of a single donation attempt.
type Donation struct {
	ID                     string
	Amount                 decimal.Decimal
	Currency               string
	Frequency              Frequency
	Donor                  DonorInfo
	PaymentMethod          PaymentMethod
	Status                 DonationStatus
	CreatedAt              time.Time
	CapturedAt             *time.Time
	ProcessorTransactionID string
	ExclusiveDonor         bool
}

// Clone returns a copy that shares no mutable state with d.
func (d Donation) Clone() Donation {
	if d.CapturedAt != nil {
		capturedAt := *d.CapturedAt
		d.CapturedAt = &capturedAt
	}
	return d
}

// Completed reports whether donation has been captured.
func (d Donation) Completed() bool {
	return d.Status == DonationStatusCompleted
}

// DonationSummary aggregates ledger contents.
type DonationSummary struct {
	Count          int
	CompletedCount int
	CompletedTotal decimal.Decimal
	Currency       string
}

// Summarize folds donations into a summary. Only completed amounts are totalled.
func Summarize(donations []Donation) DonationSummary {
	summary := DonationSummary{CompletedTotal: decimal.Zero, Currency: DefaultCurrency}
	for _, d := range donations {
		summary.Count++
		if d.Completed() {
			summary.CompletedCount++
			summary.CompletedTotal = summary.CompletedTotal.Add(d.Amount)
		}
	}
	return summary
}
