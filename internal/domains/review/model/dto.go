package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateReviewRequest request to create review
type CreateReviewRequest struct {
	BookID  uuid.UUID `json:"bookId" binding:"required"`
	OrderID uuid.UUID `json:"orderId" binding:"required"`
	Rating  int       `json:"rating"`
	Title   *string   `json:"title,omitempty"`
	Content string    `json:"content"`
	Images  []string  `json:"images,omitempty"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.By(requiredUUID)),
		validation.Field(&r.OrderID, validation.By(requiredUUID)),
		validation.Field(&r.Rating, validation.Required, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, MaxTitleLength)),
		validation.Field(&r.Content, validation.Required, validation.RuneLength(MinContentLength, MaxContentLength)),
		validation.Field(&r.Images, validation.Length(0, MaxImages), validation.Each(is.URL)),
	)
}

// UpdateReviewRequest request to update review
type UpdateReviewRequest struct {
	Rating  *int     `json:"rating,omitempty"`
	Title   *string  `json:"title,omitempty"`
	Content *string  `json:"content,omitempty"`
	Images  []string `json:"images,omitempty"`
}

func (r UpdateReviewRequest) Validate() error {
	if r.Rating == nil && r.Title == nil && r.Content == nil && r.Images == nil {
		return ErrNothingToUpdate
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, MaxTitleLength)),
		validation.Field(&r.Content, validation.NilOrNotEmpty, validation.RuneLength(MinContentLength, MaxContentLength)),
		validation.Field(&r.Images, validation.Length(0, MaxImages), validation.Each(is.URL)),
	)
}

// ListReviewsRequest request to list reviews
type ListReviewsRequest struct {
	BookID uuid.UUID `form:"-"`
	Rating *int      `form:"rating"`
	Page   int       `form:"page"`
	Size   int       `form:"size"`
}

func (r *ListReviewsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size < 1 || r.Size > MaxPageSize {
		r.Size = DefaultPageSize
	}
	if r.Rating != nil && (*r.Rating < MinRating || *r.Rating > MaxRating) {
		r.Rating = nil
	}
}

func requiredUUID(value interface{}) error {
	if id, _ := value.(uuid.UUID); id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}
