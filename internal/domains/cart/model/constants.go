package model

import "time"

// Cart business constraints
const (
	// MaxItemsPerProduct is the maximum quantity allowed for a single product in cart
	MaxItemsPerProduct = 100

	// BadgeFreshWindow: a badge refresh within this window after a local
	// mutation keeps the locally written count
	BadgeFreshWindow = 900 * time.Millisecond
)
