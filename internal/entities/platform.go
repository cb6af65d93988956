package entities

// PlatformConfig - единственная строка конфигурации маркетплейса.
// NextOrderID одновременно является счетчиком всех когда-либо созданных
// заказов, идентификаторы не переиспользуются.
type PlatformConfig struct {
	NextOrderID             int64
	MaxOrders               int64
	PlatformFeeBps          int64
	EscrowPrincipal         Principal
	SupplyChainPrincipal    Principal
	ProductCatalogPrincipal Principal
}
