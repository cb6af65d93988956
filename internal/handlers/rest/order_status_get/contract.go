//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_get_test
package order_status_get

import (
	"context"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	"github.com/tunderatti-ops/FarmDirect/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetOrderStatus(ctx context.Context, orderID int64) (entities.OrderStatusType, error)
}
