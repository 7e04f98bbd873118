package model

import (
	"errors"
	"time"

	"bookstore-storefront/internal/domains/payment/gateway/vnpay"
)

// State of a payment-return reconciliation.
//
//	verifying → error | failed
//	verifying → waiting → success | failed | timed_out
type State string

const (
	StateVerifying State = "verifying"
	StateWaiting   State = "waiting"
	StateSuccess   State = "success"
	StateFailed    State = "failed"
	StateTimedOut  State = "timed_out"
	StateError     State = "error"
)

func (s State) IsTerminal() bool {
	switch s {
	case StateSuccess, StateFailed, StateTimedOut, StateError:
		return true
	}
	return false
}

var (
	ErrEmptyReturn     = errors.New("payment return carries no parameters")
	ErrOutcomeUnknown  = errors.New("no recorded outcome for this order")
	ErrMissingOrderRef = errors.New("payment return does not reference an order")
)

// ReturnDescriptor is the gateway redirect as interpreted by the backend.
// Untrusted: a success code alone never proves payment.
type ReturnDescriptor struct {
	OrderCode    string `json:"orderCode"`
	ResponseCode string `json:"responseCode"`
	BankCode     string `json:"bankCode"`
}

func (d ReturnDescriptor) GatewaySucceeded() bool {
	return vnpay.IsSuccess(d.ResponseCode)
}

// Outcome is the last known result for an order, kept in the session
// under payment_outcome:{orderCode}
type Outcome struct {
	OrderCode     string    `json:"orderCode"`
	State         State     `json:"state"`
	PaymentStatus string    `json:"paymentStatus,omitempty"`
	Source        string    `json:"source"` // "return_page" or "settle_check"
	RecordedAt    time.Time `json:"recordedAt"`
}

const (
	SourceReturnPage  = "return_page"
	SourceSettleCheck = "settle_check"
)
