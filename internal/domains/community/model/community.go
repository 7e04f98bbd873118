package model

import (
	"github.com/google/uuid"

	commentmodel "bookstore-storefront/internal/domains/comment/model"
	reviewmodel "bookstore-storefront/internal/domains/review/model"
)

// Section is one independently loaded part of the book page.
// Exactly one of Data / Error is set.
type Section[T any] struct {
	Data  *T     `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s Section[T]) Failed() bool {
	return s.Error != ""
}

func Loaded[T any](data *T) Section[T] {
	return Section[T]{Data: data}
}

func Failed[T any](msg string) Section[T] {
	return Section[T]{Error: msg}
}

// Page - trang cộng đồng của 1 cuốn sách
type Page struct {
	BookID   uuid.UUID                          `json:"bookId"`
	Reviews  Section[reviewmodel.ReviewPage]    `json:"reviews"`
	Rating   Section[reviewmodel.RatingSummary] `json:"rating"`
	Comments Section[commentmodel.Thread]       `json:"comments"`
}

// PageRequest - GET /books/:book_id/community?page
type PageRequest struct {
	BookID     uuid.UUID `form:"-"`
	ReviewPage int       `form:"page"`
}
