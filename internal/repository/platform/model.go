package platform

type PlatformConfigDB struct {
	NextOrderID             int64
	MaxOrders               int64
	PlatformFeeBps          int64
	EscrowPrincipal         string
	SupplyChainPrincipal    string
	ProductCatalogPrincipal string
}
