package entities

// OrderUpdate - последняя запись аудита перехода статуса.
// Хранится ровно одна запись на заказ, каждая транзиция перезаписывает её.
type OrderUpdate struct {
	OrderID      int64
	UpdateStatus OrderStatusType
	UpdateHeight int64
	Updater      Principal
}

// OrderStatusChanged - событие успешного перехода статуса заказа,
// публикуется после коммита транзакции.
type OrderStatusChanged struct {
	OrderID int64
	Status  OrderStatusType
	Height  int64
	Updater Principal
}
