package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrMissingDonorInfo = errors.New("donor information required")
	ErrMissingOrderID   = errors.New("order id required")
)

// GatewayError wraps any transport or processor-side failure.
type GatewayError struct {
	// Status is HTTP-like status reported by the processor, or 502 for transport failures.
	Status int
	// Detail is processor diagnostic text. Callers decide whether to expose it.
	Detail string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("payment gateway error (status %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("payment gateway error (status %d)", e.Status)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a failure to reach the processor.
func NewTransportError(err error) *GatewayError {
	return &GatewayError{Status: http.StatusBadGateway, Detail: err.Error(), Err: err}
}

// AsGatewayError extracts GatewayError from err chain.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
