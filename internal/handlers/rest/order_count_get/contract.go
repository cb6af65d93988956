//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_count_get_test
package order_count_get

import (
	"context"

	"github.com/tunderatti-ops/FarmDirect/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetOrderCount(ctx context.Context) (int64, error)
}
