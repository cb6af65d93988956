package order_status_changed

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
	ProcessOrderStatusChange(ctx context.Context, event entities.OrderStatusChanged) (*entities.Order, error)
}
