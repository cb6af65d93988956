package settlement_handle

import (
	"context"
	"fmt"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	"github.com/tunderatti-ops/FarmDirect/internal/service/settlement"
)

// Escrow - операции расчетного сервиса над удержанными средствами заказа.
type Escrow interface {
	Release(ctx context.Context, orderID int64) error
	Refund(ctx context.Context, orderID int64) error
}

type StatusHandlerFactory struct {
	escrow Escrow
}

func NewStatusHandlerFactory(escrow Escrow) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		escrow: escrow,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (settlement.ExecuteFn, error) {
	switch status {
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		// pending и shipped расчетов не требуют
		return nil, fmt.Errorf("%w: %s", settlement.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, orderID int64) error {
	if err := f.escrow.Release(ctx, orderID); err != nil {
		return fmt.Errorf("release escrow for delivered order %d: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID int64) error {
	if err := f.escrow.Refund(ctx, orderID); err != nil {
		return fmt.Errorf("refund escrow for cancelled order %d: %w", orderID, err)
	}
	return nil
}
