package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one line of the server-held cart
type CartItem struct {
	BookID         uuid.UUID       `json:"bookId"`
	Title          string          `json:"title,omitempty"`
	Slug           string          `json:"slug,omitempty"`
	CoverURL       string          `json:"coverUrl,omitempty"`
	Quantity       int             `json:"quantity"`
	Selected       bool            `json:"selected"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	StockAvailable int             `json:"stockAvailable"`
}

// CartSummary is the full cart snapshot returned by every cart endpoint.
// Aggregates are computed by the backend and only rendered here.
type CartSummary struct {
	Items         []CartItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	ShippingFee   decimal.Decimal `json:"shippingFee"`
	Tax           decimal.Decimal `json:"tax"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	TotalItems    *int            `json:"totalItems,omitempty"`
	UniqueItems   *int            `json:"uniqueItems,omitempty"`
	SelectedCount int             `json:"selectedCount"`

	// Deprecated: older backend builds send these instead of uniqueItems/totalItems
	DistinctItems *int `json:"distinctItems,omitempty"`
	TotalQuantity *int `json:"totalQuantity,omitempty"`
}

// IsEmpty reports whether the summary carries no lines
func (s *CartSummary) IsEmpty() bool {
	return s == nil || len(s.Items) == 0
}

// Item returns the line for bookID
func (s *CartSummary) Item(bookID uuid.UUID) (CartItem, bool) {
	if s == nil {
		return CartItem{}, false
	}
	for _, it := range s.Items {
		if it.BookID == bookID {
			return it, true
		}
	}
	return CartItem{}, false
}

// Counts are the two badge aggregates
type Counts struct {
	UniqueItems int `json:"uniqueItems"`
	TotalItems  int `json:"totalItems"`
}

// CountSource tells which field a count was read from
type CountSource string

const (
	SourceAuthoritative CountSource = "authoritative"
	SourceDeprecated    CountSource = "deprecated"
	SourceDerived       CountSource = "derived"
)

// Counts resolves unique/total: uniqueItems → distinctItems → len(items),
// totalItems → totalQuantity → Σ quantity.
func (s *CartSummary) Counts() (Counts, CountSource, CountSource) {
	var c Counts
	if s == nil {
		return c, SourceDerived, SourceDerived
	}

	uniqueSrc := SourceAuthoritative
	switch {
	case s.UniqueItems != nil:
		c.UniqueItems = *s.UniqueItems
	case s.DistinctItems != nil:
		c.UniqueItems = *s.DistinctItems
		uniqueSrc = SourceDeprecated
	default:
		c.UniqueItems = len(s.Items)
		uniqueSrc = SourceDerived
	}

	totalSrc := SourceAuthoritative
	switch {
	case s.TotalItems != nil:
		c.TotalItems = *s.TotalItems
	case s.TotalQuantity != nil:
		c.TotalItems = *s.TotalQuantity
		totalSrc = SourceDeprecated
	default:
		for _, it := range s.Items {
			c.TotalItems += it.Quantity
		}
		totalSrc = SourceDerived
	}

	return c, uniqueSrc, totalSrc
}

// Badge is the cached header badge of a session
type Badge struct {
	Count int       `json:"count"`
	SetAt time.Time `json:"setAt"`
}

// RecentlySet reports whether the badge was written less than window ago
func (b Badge) RecentlySet(now time.Time, window time.Duration) bool {
	return !b.SetAt.IsZero() && now.Sub(b.SetAt) < window
}
