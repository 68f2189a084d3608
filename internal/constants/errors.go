package constants

import "errors"

// CLI input errors.
var (
	ErrInvalidURLParam    = errors.New("invalid url param, expected key=value")
	ErrInvalidBurgerID    = errors.New("invalid burger ID")
	ErrInvalidOrderID     = errors.New("invalid order ID")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidOrderTime   = errors.New("invalid order time, expected RFC 3339")
	ErrNothingToUpdate    = errors.New("nothing to update, pass at least one flag")
	ErrUnknownOutput      = errors.New("unknown output format")
)
