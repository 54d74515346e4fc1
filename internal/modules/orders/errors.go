package orders

import "errors"

var (
	ErrUnknownStatus = errors.New("unknown order status")
	ErrConflict      = errors.New("order changed concurrently")
)
