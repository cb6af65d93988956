package order

import (
	"fmt"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	"github.com/tunderatti-ops/FarmDirect/internal/service/order"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	status := entities.OrderStatusType(o.Status)
	switch status {
	case entities.OrderPending, entities.OrderShipped, entities.OrderDelivered, entities.OrderCancelled:
	default:
		return nil, fmt.Errorf("%w: %q", order.ErrInvalidStatus, o.Status)
	}

	return &entities.Order{
		ID:               o.ID,
		ProductID:        o.ProductID,
		Quantity:         o.Quantity,
		PricePerUnit:     o.PricePerUnit,
		TotalAmount:      o.TotalAmount,
		Buyer:            entities.Principal(o.Buyer),
		Seller:           entities.Principal(o.Seller),
		Status:           status,
		OrderHeight:      o.OrderHeight,
		ShipHeight:       o.ShipHeight,
		DeliveryHeight:   o.DeliveryHeight,
		DeliveryLocation: o.DeliveryLocation,
		Currency:         entities.CurrencyType(o.Currency),
	}, nil
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}
	return &OrderDB{
		ID:               o.ID,
		ProductID:        o.ProductID,
		Quantity:         o.Quantity,
		PricePerUnit:     o.PricePerUnit,
		TotalAmount:      o.TotalAmount,
		Buyer:            o.Buyer.String(),
		Seller:           o.Seller.String(),
		Status:           o.Status.String(),
		OrderHeight:      o.OrderHeight,
		ShipHeight:       o.ShipHeight,
		DeliveryHeight:   o.DeliveryHeight,
		DeliveryLocation: o.DeliveryLocation,
		Currency:         o.Currency.String(),
	}
}

func ToUpdateDomain(u *OrderUpdateDB) *entities.OrderUpdate {
	if u == nil {
		return nil
	}
	return &entities.OrderUpdate{
		OrderID:      u.OrderID,
		UpdateStatus: entities.OrderStatusType(u.UpdateStatus),
		UpdateHeight: u.UpdateHeight,
		Updater:      entities.Principal(u.Updater),
	}
}
