package entities

// Principal - идентификатор участника (Stacks-адрес покупателя, продавца или контракта).
type Principal string

func (p Principal) String() string {
	return string(p)
}

type Order struct {
	ID               int64
	ProductID        int64
	Quantity         int64
	PricePerUnit     int64
	TotalAmount      int64
	Buyer            Principal
	Seller           Principal
	Status           OrderStatusType
	OrderHeight      int64
	ShipHeight       *int64
	DeliveryHeight   *int64
	DeliveryLocation string
	Currency         CurrencyType
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderShipped   OrderStatusType = "shipped"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type CurrencyType string

const (
	CurrencySTX CurrencyType = "STX"
	CurrencyUSD CurrencyType = "USD"
	CurrencyBTC CurrencyType = "BTC"
)

func (c CurrencyType) String() string {
	return string(c)
}

// OrderDraft - входные данные размещения заказа, все остальные поля
// Order вычисляются сервисом (id, суммы, высоты, покупатель).
type OrderDraft struct {
	ProductID        int64
	Quantity         int64
	PricePerUnit     int64
	Seller           Principal
	DeliveryLocation string
	Currency         CurrencyType
}

// OrderStatusModify - частичное обновление заказа при переходе статуса.
type OrderStatusModify struct {
	ID             int64
	Status         OrderStatusType
	ShipHeight     *int64
	DeliveryHeight *int64
}
