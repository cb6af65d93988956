package settlement

import "errors"

var (
	ErrStatusMismatch  = errors.New("order status mismatch between event and order store")
	ErrUndefinedStatus = errors.New("no settlement action for status")
	ErrOrderNotFound   = errors.New("order not found")
)
