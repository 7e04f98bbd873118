package model

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyOrderCode  = errors.New("order code is required")
	ErrNothingSelected = errors.New("select at least one item to order")
)
