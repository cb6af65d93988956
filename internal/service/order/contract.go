//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, orderID int64) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, orderID int64) (*entities.Order, error)
	UpdateStatus(ctx context.Context, statusModify entities.OrderStatusModify) (*entities.Order, error)
	UpsertLatestUpdate(ctx context.Context, update entities.OrderUpdate) error
	GetLatestUpdate(ctx context.Context, orderID int64) (*entities.OrderUpdate, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type ConfigRepository interface {
	Get(ctx context.Context) (*entities.PlatformConfig, error)
	GetForUpdate(ctx context.Context) (*entities.PlatformConfig, error)
	AllocateOrderID(ctx context.Context) (int64, error)
}

// Escrow - внешний платежный коллаборатор. Любая ошибка перевода означает
// отказ всей операции, сервис сам ничего не ретраит.
type Escrow interface {
	Transfer(ctx context.Context, amount int64, from, to entities.Principal) error
}

// Chain - источник текущей высоты блока, сервис не владеет часами.
type Chain interface {
	CurrentHeight(ctx context.Context) (int64, error)
}

// EventPublisher - fire-and-forget публикация событий переходов.
// Реализация сама логирует ошибки доставки.
type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event entities.OrderStatusChanged)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
