package model

const (
	// Edit/Delete windows
	EditWindowDays   = 7  // Can edit within 7 days
	DeleteWindowDays = 30 // Can delete within 30 days

	// Content limits
	MinContentLength = 10
	MaxContentLength = 2000
	MaxTitleLength   = 200
	MaxImages        = 5

	// Rating
	MinRating = 1
	MaxRating = 5

	// Paging
	DefaultPageSize = 10
	MaxPageSize     = 50
)
