package utils

import "errors"

var (
	ErrTripTypeNotFound    = errors.New("trip type not found")
	ErrPackingItemNotFound = errors.New("packing item not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrRateNotFound        = errors.New("exchange rate not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")
)
