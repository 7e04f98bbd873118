package model

import (
	"errors"
	"fmt"
	"net/http"

	"bookstore-storefront/pkg/apiclient"
)

// Error codes
const (
	ErrCodeReviewNotFound  = "REV001"
	ErrCodeAlreadyReviewed = "REV002"
	ErrCodeNotEligible     = "REV003"
	ErrCodeCannotEdit      = "REV004"
	ErrCodeCannotDelete    = "REV005"
	ErrCodeUnauthorized    = "REV010"
)

// Errors
var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrAlreadyReviewed  = errors.New("already reviewed this book")
	ErrNotEligible      = errors.New("not eligible to review")
	ErrCannotEdit       = errors.New("cannot edit review after 7 days")
	ErrCannotDelete     = errors.New("cannot delete review after 30 days")
	ErrUnauthorized     = errors.New("unauthorized to perform this action")
	ErrNothingToUpdate  = errors.New("nothing to update")
	ErrInvalidReviewRef = errors.New("invalid review id")
)

// ReviewError custom error type
type ReviewError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReviewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewReviewNotFoundError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeReviewNotFound,
		Message: "Review not found",
		Err:     ErrReviewNotFound,
	}
}

func NewAlreadyReviewedError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeAlreadyReviewed,
		Message: "You have already reviewed this book",
		Err:     ErrAlreadyReviewed,
	}
}

func NewNotEligibleError(reason string) *ReviewError {
	return &ReviewError{
		Code:    ErrCodeNotEligible,
		Message: fmt.Sprintf("Not eligible to review: %s", reason),
		Err:     ErrNotEligible,
	}
}

func NewCannotEditError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeCannotEdit,
		Message: "Cannot edit review after 7 days of creation",
		Err:     ErrCannotEdit,
	}
}

func NewCannotDeleteError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeCannotDelete,
		Message: "Cannot delete review after 30 days of creation",
		Err:     ErrCannotDelete,
	}
}

func NewUnauthorizedError(message string) *ReviewError {
	return &ReviewError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Err:     ErrUnauthorized,
	}
}

// TranslateError maps a backend rejection to a ReviewError.
// Other errors are returned unchanged.
func TranslateError(err error) error {
	switch apiclient.StatusCode(err) {
	case http.StatusNotFound:
		return NewReviewNotFoundError()
	case http.StatusConflict:
		return NewAlreadyReviewedError()
	case http.StatusForbidden:
		return NewNotEligibleError(apiclient.Message(err))
	case http.StatusUnauthorized:
		return NewUnauthorizedError("Please sign in to write a review")
	}
	return err
}
