package model

import (
	"time"

	"github.com/google/uuid"
)

// Review as returned by the backend
type Review struct {
	ID       uuid.UUID `json:"id"`
	BookID   uuid.UUID `json:"bookId"`
	UserID   uuid.UUID `json:"userId"`
	UserName string    `json:"userName"`

	// Content
	Rating  int      `json:"rating"` // 1-5
	Title   *string  `json:"title,omitempty"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`

	IsVerifiedPurchase bool `json:"isVerifiedPurchase"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Set by the storefront for the signed-in author
	Mine      bool `json:"mine"`
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
}

// CanBeEdited checks if review can be edited by its author
func (r *Review) CanBeEdited(now time.Time) bool {
	return now.Sub(r.CreatedAt) < EditWindowDays*24*time.Hour
}

// CanBeDeleted checks if review can be deleted by its author
func (r *Review) CanBeDeleted(now time.Time) bool {
	return now.Sub(r.CreatedAt) < DeleteWindowDays*24*time.Hour
}

// RatingSummary aggregates the ratings of one book
type RatingSummary struct {
	BookID          uuid.UUID   `json:"bookId"`
	TotalReviews    int         `json:"totalReviews"`
	AverageRating   float64     `json:"averageRating"`
	RatingBreakdown map[int]int `json:"ratingBreakdown"` // {5: 100, 4: 50, ...}
}

// Percent returns the share of star ratings, rounded down
func (s *RatingSummary) Percent(star int) int {
	if s.TotalReviews == 0 {
		return 0
	}
	return s.RatingBreakdown[star] * 100 / s.TotalReviews
}

// ReviewPage is one page of a book's reviews
type ReviewPage struct {
	Items []Review `json:"items"`
	Page  int      `json:"page"`
	Size  int      `json:"size"`
	Total int      `json:"total"`
}
