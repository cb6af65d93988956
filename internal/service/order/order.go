package order

import (
	"context"
	"fmt"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
)

// feeDenominatorBps - знаменатель ставки комиссии в базисных пунктах.
const feeDenominatorBps = 10000

type Service struct {
	repository Repository
	configRepo ConfigRepository
	escrow     Escrow
	chain      Chain
	publisher  EventPublisher
	txManager  TxManager
}

func New(
	repository Repository,
	configRepo ConfigRepository,
	escrow Escrow,
	chain Chain,
	publisher EventPublisher,
	txManager TxManager,
) *Service {
	return &Service{
		repository: repository,
		configRepo: configRepo,
		escrow:     escrow,
		chain:      chain,
		publisher:  publisher,
		txManager:  txManager,
	}
}

// PlaceOrder размещает заказ от имени caller (покупателя), переводит комиссию
// платформы на кастодиальный счет и возвращает идентификатор нового заказа.
// Заказ не записывается, если перевод комиссии не подтвержден.
func (s *Service) PlaceOrder(ctx context.Context, caller entities.Principal, draft entities.OrderDraft) (int64, error) {
	if caller == "" {
		return 0, ErrInvalidBuyer
	}

	var (
		orderID        int64
		feeAmount      int64
		feeTransferred bool
		custodial      entities.Principal
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cfg, err := s.configRepo.GetForUpdate(ctx)
		if err != nil {
			return fmt.Errorf("get platform config: %w", err)
		}

		if cfg.NextOrderID >= cfg.MaxOrders {
			return ErrMaxOrdersExceeded
		}

		if err := validateDraft(caller, draft); err != nil {
			return err
		}

		totalAmount, err := totalAmountOf(draft.Quantity, draft.PricePerUnit)
		if err != nil {
			return err
		}

		feeAmount, err = feeAmountOf(totalAmount, cfg.PlatformFeeBps)
		if err != nil {
			return err
		}

		height, err := s.chain.CurrentHeight(ctx)
		if err != nil {
			return fmt.Errorf("current block height: %w", err)
		}

		// Комиссия уходит до записи заказа: нет перевода - нет заказа.
		custodial = cfg.EscrowPrincipal
		if err := s.escrow.Transfer(ctx, feeAmount, caller, custodial); err != nil {
			return fmt.Errorf("transfer platform fee: %w", err)
		}
		feeTransferred = true

		id, err := s.configRepo.AllocateOrderID(ctx)
		if err != nil {
			return fmt.Errorf("allocate order id: %w", err)
		}

		newOrder := entities.Order{
			ID:               id,
			ProductID:        draft.ProductID,
			Quantity:         draft.Quantity,
			PricePerUnit:     draft.PricePerUnit,
			TotalAmount:      totalAmount,
			Buyer:            caller,
			Seller:           draft.Seller,
			Status:           entities.OrderPending,
			OrderHeight:      height,
			DeliveryLocation: draft.DeliveryLocation,
			Currency:         draft.Currency,
		}

		if err := s.repository.Create(ctx, newOrder); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		orderID = id
		return nil
	})
	if err != nil {
		// Перевод внешний и откатом транзакции не отменяется,
		// компенсируем возвратом комиссии покупателю.
		if feeTransferred {
			if refundErr := s.escrow.Transfer(ctx, feeAmount, custodial, caller); refundErr != nil {
				return 0, fmt.Errorf("fee refund failed: %w (place order: %w)", refundErr, err)
			}
		}
		return 0, err
	}

	return orderID, nil
}

// ShipOrder переводит заказ pending -> shipped, разрешено только продавцу.
func (s *Service) ShipOrder(ctx context.Context, caller entities.Principal, orderID int64) error {
	if orderID < 0 {
		return ErrInvalidOrderID
	}

	var event entities.OrderStatusChanged

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		currentOrder, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if currentOrder.Seller != caller {
			return ErrNotAuthorized
		}
		if currentOrder.Status != entities.OrderPending {
			return ErrOrderNotPending
		}

		height, err := s.chain.CurrentHeight(ctx)
		if err != nil {
			return fmt.Errorf("current block height: %w", err)
		}

		event, err = s.applyTransition(ctx, entities.OrderStatusModify{
			ID:         orderID,
			Status:     entities.OrderShipped,
			ShipHeight: &height,
		}, height, caller)
		return err
	})
	if err != nil {
		return err
	}

	s.publisher.PublishOrderStatusChanged(ctx, event)
	return nil
}

// ConfirmDelivery переводит заказ shipped -> delivered, разрешено только
// покупателю. Этот переход - сигнал эскроу-коллаборатору на выплату продавцу.
func (s *Service) ConfirmDelivery(ctx context.Context, caller entities.Principal, orderID int64) error {
	if orderID < 0 {
		return ErrInvalidOrderID
	}

	var event entities.OrderStatusChanged

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		currentOrder, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if currentOrder.Buyer != caller {
			return ErrNotAuthorized
		}
		if currentOrder.Status != entities.OrderShipped {
			return ErrOrderNotShipped
		}

		height, err := s.chain.CurrentHeight(ctx)
		if err != nil {
			return fmt.Errorf("current block height: %w", err)
		}

		event, err = s.applyTransition(ctx, entities.OrderStatusModify{
			ID:             orderID,
			Status:         entities.OrderDelivered,
			DeliveryHeight: &height,
		}, height, caller)
		return err
	})
	if err != nil {
		return err
	}

	s.publisher.PublishOrderStatusChanged(ctx, event)
	return nil
}

// CancelOrder переводит заказ pending -> cancelled, разрешено покупателю
// или продавцу. После отгрузки отмена невозможна.
func (s *Service) CancelOrder(ctx context.Context, caller entities.Principal, orderID int64) error {
	if orderID < 0 {
		return ErrInvalidOrderID
	}

	var event entities.OrderStatusChanged

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		currentOrder, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if currentOrder.Buyer != caller && currentOrder.Seller != caller {
			return ErrNotAuthorized
		}
		if currentOrder.Status != entities.OrderPending {
			return ErrOrderNotPending
		}

		height, err := s.chain.CurrentHeight(ctx)
		if err != nil {
			return fmt.Errorf("current block height: %w", err)
		}

		// Высоты отгрузки и доставки у отмененного заказа остаются пустыми.
		event, err = s.applyTransition(ctx, entities.OrderStatusModify{
			ID:     orderID,
			Status: entities.OrderCancelled,
		}, height, caller)
		return err
	})
	if err != nil {
		return err
	}

	s.publisher.PublishOrderStatusChanged(ctx, event)
	return nil
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	if orderID < 0 {
		return nil, ErrInvalidOrderID
	}

	currentOrder, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return currentOrder, nil
}

func (s *Service) GetOrderStatus(ctx context.Context, orderID int64) (entities.OrderStatusType, error) {
	currentOrder, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	return currentOrder.Status, nil
}

// GetOrderUpdate возвращает последнюю запись аудита перехода по заказу.
func (s *Service) GetOrderUpdate(ctx context.Context, orderID int64) (*entities.OrderUpdate, error) {
	if orderID < 0 {
		return nil, ErrInvalidOrderID
	}

	update, err := s.repository.GetLatestUpdate(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order update: %w", err)
	}
	return update, nil
}

// GetOrderCount возвращает счетчик всех созданных заказов, включая отмененные.
func (s *Service) GetOrderCount(ctx context.Context) (int64, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("get platform config: %w", err)
	}
	return cfg.NextOrderID, nil
}

// CountOrdersByStatus используется фоновой задачей метрик.
func (s *Service) CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	return counts, nil
}

func (s *Service) applyTransition(
	ctx context.Context,
	statusModify entities.OrderStatusModify,
	height int64,
	caller entities.Principal,
) (entities.OrderStatusChanged, error) {
	if _, err := s.repository.UpdateStatus(ctx, statusModify); err != nil {
		return entities.OrderStatusChanged{}, fmt.Errorf("update order status: %w", err)
	}

	update := entities.OrderUpdate{
		OrderID:      statusModify.ID,
		UpdateStatus: statusModify.Status,
		UpdateHeight: height,
		Updater:      caller,
	}
	if err := s.repository.UpsertLatestUpdate(ctx, update); err != nil {
		return entities.OrderStatusChanged{}, fmt.Errorf("save order update: %w", err)
	}

	return entities.OrderStatusChanged{
		OrderID: statusModify.ID,
		Status:  statusModify.Status,
		Height:  height,
		Updater: caller,
	}, nil
}
