package apperrors

import "errors"

// ErrInvalidNumber indicates a money or percentage string that is not numeric after sanitizing.
var ErrInvalidNumber = errors.New("invalid number format")

// ErrInvalidDate indicates a date string that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date format")

// ErrInvalidDateRange indicates a date range whose start is after its end.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrInvalidYear indicates a target year that is not a positive integer.
var ErrInvalidYear = errors.New("invalid year")

// ErrInvalidID indicates a record identifier that is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ErrInvalidName indicates an empty investment name.
var ErrInvalidName = errors.New("investment name is required")
