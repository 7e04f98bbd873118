package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type AddressTypeEnum string

const (
	AddressTypeHome   AddressTypeEnum = "home"
	AddressTypeOffice AddressTypeEnum = "office"
	AddressTypeOther  AddressTypeEnum = "other"
)

func (a AddressTypeEnum) IsValid() bool {
	switch a {
	case AddressTypeHome, AddressTypeOffice, AddressTypeOther:
		return true
	}
	return false
}

// Address is a saved shipping address of the current user
type Address struct {
	ID            uuid.UUID       `json:"id"`
	RecipientName string          `json:"recipientName"`
	Phone         string          `json:"phone"`
	Province      string          `json:"province"`
	District      string          `json:"district"`
	Ward          string          `json:"ward"`
	Street        string          `json:"street"`
	AddressType   AddressTypeEnum `json:"addressType,omitempty"`
	IsDefault     bool            `json:"isDefault"`
	Notes         string          `json:"notes,omitempty"`
}

// AddressRequest - POST /addresses
type AddressRequest struct {
	RecipientName string          `json:"recipientName"`
	Phone         string          `json:"phone"`
	Province      string          `json:"province"`
	District      string          `json:"district"`
	Ward          string          `json:"ward"`
	Street        string          `json:"street"`
	AddressType   AddressTypeEnum `json:"addressType,omitempty"`
	IsDefault     bool            `json:"isDefault"`
	Notes         string          `json:"notes,omitempty"`
}

var vnPhone = regexp.MustCompile(`^(\+84|0)[0-9]{9,10}$`)

func (r AddressRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RecipientName, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Phone,
			validation.Required,
			validation.Match(vnPhone).Error("phone must be a Vietnamese mobile number"),
		),
		validation.Field(&r.Province, validation.Required),
		validation.Field(&r.District, validation.Required),
		validation.Field(&r.Ward, validation.Required),
		validation.Field(&r.Street, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.AddressType, validation.When(r.AddressType != "",
			validation.In(AddressTypeHome, AddressTypeOffice, AddressTypeOther),
		)),
		validation.Field(&r.Notes, validation.Length(0, 500)),
	)
}
