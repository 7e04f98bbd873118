package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// CREATE ORDER REQUEST
// =====================================================
// The order is built by the backend from the currently selected cart lines.
type CreateOrderRequest struct {
	AddressID     uuid.UUID     `json:"addressId" binding:"required"`
	PaymentMethod PaymentMethod `json:"paymentMethod" binding:"required"`
	PromoCode     *string       `json:"promoCode,omitempty"`
	CustomerNote  *string       `json:"customerNote,omitempty"`
}

func (req CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.AddressID, validation.By(func(v interface{}) error {
			if id, _ := v.(uuid.UUID); id == uuid.Nil {
				return errors.New("is required")
			}
			return nil
		})),
		validation.Field(&req.PaymentMethod, validation.Required, validation.In(
			PaymentMethodCOD,
			PaymentMethodVNPay,
			PaymentMethodMomo,
			PaymentMethodBankTransfer,
		)),
		validation.Field(&req.CustomerNote, validation.NilOrNotEmpty, validation.Length(1, 500)),
	)
}

// =====================================================
// LIST ORDERS REQUEST
// =====================================================
type ListOrdersRequest struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

// Normalize applies paging defaults
func (req *ListOrdersRequest) Normalize() {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Size < 1 || req.Size > 100 {
		req.Size = 10
	}
}
