package platform

import "github.com/tunderatti-ops/FarmDirect/internal/entities"

func ToDomain(c *PlatformConfigDB) *entities.PlatformConfig {
	if c == nil {
		return nil
	}
	return &entities.PlatformConfig{
		NextOrderID:             c.NextOrderID,
		MaxOrders:               c.MaxOrders,
		PlatformFeeBps:          c.PlatformFeeBps,
		EscrowPrincipal:         entities.Principal(c.EscrowPrincipal),
		SupplyChainPrincipal:    entities.Principal(c.SupplyChainPrincipal),
		ProductCatalogPrincipal: entities.Principal(c.ProductCatalogPrincipal),
	}
}
