package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// AddItemRequest - POST /cart/items (also used by buy-now)
type AddItemRequest struct {
	BookID   uuid.UUID `json:"bookId" binding:"required"`
	Quantity int       `json:"quantity" binding:"required"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.By(requiredUUID)),
		validation.Field(&r.Quantity,
			validation.Required.Error("quantity is required"),
			validation.Min(1),
			validation.Max(MaxItemsPerProduct).Error("quantity must not exceed 100"),
		),
	)
}

// UpdateItemRequest - PUT /cart/items/{bookId}; either field may be omitted
type UpdateItemRequest struct {
	Quantity *int  `json:"quantity,omitempty"`
	Selected *bool `json:"selected,omitempty"`
}

func (r UpdateItemRequest) Validate() error {
	if r.Quantity == nil && r.Selected == nil {
		return ErrNothingToUpdate
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity,
			validation.NilOrNotEmpty.Error("quantity must be at least 1"),
			validation.Min(1),
			validation.Max(MaxItemsPerProduct),
		),
	)
}

// SelectAllRequest - PUT /cart/select-all
type SelectAllRequest struct {
	Selected bool `json:"selected"`
}

// CartView is what the storefront returns for cart calls
type CartView struct {
	Cart   *CartSummary `json:"cart"`
	Counts Counts       `json:"counts"`
}

func requiredUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}
