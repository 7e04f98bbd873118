package model

import (
	"errors"
	"fmt"
	"strings"

	"bookstore-storefront/pkg/apiclient"
)

var (
	ErrInventoryNotFound = errors.New("This book is not stocked in any warehouse yet. Please try again later.")
	ErrOutOfStock        = errors.New("Not enough copies in stock for the requested quantity.")
	ErrNothingToUpdate   = errors.New("quantity or selected must be provided")
)

// knownErrors maps backend message fragments to user-facing errors
var knownErrors = []struct {
	fragment string
	err      error
}{
	{"Inventory not found", ErrInventoryNotFound},
	{"Out of stock", ErrOutOfStock},
}

// TranslateError rewrites known backend failures; others are returned as is
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	msg := apiclient.Message(err)
	for _, k := range knownErrors {
		if strings.Contains(msg, k.fragment) {
			return fmt.Errorf("%w (%v)", k.err, err)
		}
	}
	return err
}

// UserMessage is the text shown next to the cart control that failed
func UserMessage(err error) string {
	for _, k := range knownErrors {
		if errors.Is(err, k.err) {
			return k.err.Error()
		}
	}
	return apiclient.Message(err)
}

// IsKnown reports whether err was translated
func IsKnown(err error) bool {
	for _, k := range knownErrors {
		if errors.Is(err, k.err) {
			return true
		}
	}
	return false
}
