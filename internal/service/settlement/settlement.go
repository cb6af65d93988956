package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	orderservice "github.com/tunderatti-ops/FarmDirect/internal/service/order"
)

// Service обрабатывает события переходов статуса и запускает расчеты по
// эскроу: выплату продавцу после доставки и возврат покупателю при отмене.
type Service struct {
	repository    OrderRepository
	statusFactory HandlerFactory
}

func New(repository OrderRepository, statusFactory HandlerFactory) *Service {
	return &Service{
		repository:    repository,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessOrderStatusChange(ctx context.Context, event entities.OrderStatusChanged) (*entities.Order, error) {
	// Верификация через хранилище заказов: событие могло устареть.
	currentOrder, err := s.repository.GetByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrOrderNotFound, event.OrderID)
		}
		return nil, fmt.Errorf("get order from store: %w", err)
	}

	if currentOrder.Status != event.Status {
		return currentOrder, fmt.Errorf("%w: event %s, order %s",
			ErrStatusMismatch, event.Status, currentOrder.Status)
	}

	executeFn, err := s.statusFactory.GetHandler(currentOrder.Status)
	if err != nil {
		// Статусы без расчетной логики просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return currentOrder, nil
		}
		return currentOrder, err
	}

	if err := executeFn(ctx, currentOrder.ID); err != nil {
		return nil, err
	}

	if err := s.repository.MarkSettled(ctx, currentOrder.ID); err != nil {
		return nil, fmt.Errorf("mark order %d settled: %w", currentOrder.ID, err)
	}

	return currentOrder, nil
}

// ReconcileUnsettled добирает заказы, событие перехода которых потерялось,
// и прогоняет по ним те же расчеты, что и обработчик событий. Помеченные
// settled заказы в выборку не попадают, повторный проход безопасен.
func (s *Service) ReconcileUnsettled(ctx context.Context, limit int64) error {
	orders, err := s.repository.ListUnsettled(ctx, limit)
	if err != nil {
		return fmt.Errorf("list unsettled orders: %w", err)
	}

	for _, currentOrder := range orders {
		executeFn, err := s.statusFactory.GetHandler(currentOrder.Status)
		if err != nil {
			if errors.Is(err, ErrUndefinedStatus) {
				continue
			}
			return err
		}

		if err := executeFn(ctx, currentOrder.ID); err != nil {
			return fmt.Errorf("settle order %d: %w", currentOrder.ID, err)
		}

		if err := s.repository.MarkSettled(ctx, currentOrder.ID); err != nil {
			return fmt.Errorf("mark order %d settled: %w", currentOrder.ID, err)
		}
	}

	return nil
}
