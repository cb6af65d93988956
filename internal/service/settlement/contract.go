//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_test
package settlement

import (
	"context"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID int64) (*entities.Order, error)
	MarkSettled(ctx context.Context, orderID int64) error
	ListUnsettled(ctx context.Context, limit int64) ([]entities.Order, error)
}

type (
	ExecuteFn      func(ctx context.Context, orderID int64) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
