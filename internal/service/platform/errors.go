package platform

import "errors"

var (
	ErrNotAuthorized  = errors.New("not authorized")
	ErrInvalidFeeRate = errors.New("invalid fee rate")
	ErrConfigNotFound = errors.New("platform config not found")
)
