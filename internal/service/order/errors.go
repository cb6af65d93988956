package order

import "errors"

// Доменные ошибки жизненного цикла заказа. Каждая ошибка возвращается
// вызывающему как есть, без повторных попыток внутри сервиса.
var (
	ErrNotAuthorized         = errors.New("not authorized")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidProductID      = errors.New("invalid product id")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrOrderAlreadyExists    = errors.New("order already exists")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInvalidBuyer          = errors.New("invalid buyer")
	ErrInvalidSeller         = errors.New("invalid seller")
	ErrInvalidLocation       = errors.New("invalid delivery location")
	ErrInvalidCurrency       = errors.New("invalid currency")
	ErrInvalidPaymentAmount  = errors.New("invalid payment amount")
	ErrOrderNotPending       = errors.New("order not pending")
	ErrOrderNotShipped       = errors.New("order not shipped")
	ErrMaxOrdersExceeded     = errors.New("max orders exceeded")
)
