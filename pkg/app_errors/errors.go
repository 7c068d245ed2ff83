package apperrors

import "errors"

var (
	ErrInvalidSeat              = errors.New("invalid seat")
	ErrSeatUnavailable          = errors.New("seat not available")
	ErrInsufficientSeats        = errors.New("not enough available seats")
	ErrInvalidTTL               = errors.New("hold ttl must be positive")
	ErrHoldNotFound             = errors.New("hold not found")
	ErrHoldExpired              = errors.New("hold is expired")
	ErrHoldAlreadyConsumed      = errors.New("hold already converted to a purchase")
	ErrPurchaseNotFound         = errors.New("purchase not found")
	ErrPurchaseAlreadyCancelled = errors.New("purchase already cancelled")
	ErrFlightNotFound           = errors.New("flight not found")
	ErrFlightExists             = errors.New("flight already exists")
	ErrStateCorrupt             = errors.New("state file is corrupt")
	ErrStateWrite               = errors.New("failed to write state file")
	ErrStateLock                = errors.New("failed to lock state file")
	ErrInvalidRequest           = errors.New("invalid request")
)
