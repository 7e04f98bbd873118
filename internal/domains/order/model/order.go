package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents valid payment methods
type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "cod"
	PaymentMethodVNPay        PaymentMethod = "vnpay"
	PaymentMethodMomo         PaymentMethod = "momo"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (pm PaymentMethod) IsOnline() bool {
	return pm == PaymentMethodVNPay || pm == PaymentMethodMomo
}

// PaymentStatus is independent from OrderStatus: an order can be
// CONFIRMED while its payment is still PENDING.
type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "UNPAID"
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusPaid          PaymentStatus = "PAID"
	PaymentStatusFailed        PaymentStatus = "FAILED"
	PaymentStatusCanceled      PaymentStatus = "CANCELED"
	PaymentStatusRefundPending PaymentStatus = "REFUND_PENDING"
	PaymentStatusRefunded      PaymentStatus = "REFUNDED"
)

// UnmarshalJSON accepts the backend's lowercase spelling too
func (ps *PaymentStatus) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*ps = PaymentStatus(strings.ToUpper(s))
	return nil
}

func (ps PaymentStatus) IsPaid() bool {
	return ps == PaymentStatusPaid
}

// IsFailed covers the failure and compensation branches
func (ps PaymentStatus) IsFailed() bool {
	switch ps {
	case PaymentStatusFailed, PaymentStatusCanceled, PaymentStatusRefundPending, PaymentStatusRefunded:
		return true
	}
	return false
}

// IsTerminal reports whether no further settlement is expected
func (ps PaymentStatus) IsTerminal() bool {
	return ps.IsPaid() || ps.IsFailed()
}

// OrderStatus represents order status
type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "PENDING"
	OrderStatusConfirmed       OrderStatus = "CONFIRMED"
	OrderStatusProcessing      OrderStatus = "PROCESSING"
	OrderStatusShipped         OrderStatus = "SHIPPED"
	OrderStatusDelivered       OrderStatus = "DELIVERED"
	OrderStatusCompleted       OrderStatus = "COMPLETED"
	OrderStatusCanceled        OrderStatus = "CANCELED"
	OrderStatusCancelRequested OrderStatus = "CANCEL_REQUESTED"
)

func (os *OrderStatus) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*os = OrderStatus(strings.ToUpper(s))
	return nil
}

func (os OrderStatus) CanCancel() bool {
	return os == OrderStatusPending || os == OrderStatusConfirmed
}

type OrderItem struct {
	BookID    uuid.UUID       `json:"bookId"`
	Title     string          `json:"title"`
	CoverURL  string          `json:"coverUrl,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Order struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Items         []OrderItem     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	ShippingFee   decimal.Decimal `json:"shippingFee"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	// PaymentURL is set on creation for online payment methods
	PaymentURL string    `json:"paymentUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// OrderPage - GET /orders/me
type OrderPage struct {
	Items []Order `json:"items"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
	Total int     `json:"total"`
}
