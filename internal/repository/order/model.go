package order

type OrderDB struct {
	ID               int64
	ProductID        int64
	Quantity         int64
	PricePerUnit     int64
	TotalAmount      int64
	Buyer            string
	Seller           string
	Status           string
	OrderHeight      int64
	ShipHeight       *int64
	DeliveryHeight   *int64
	DeliveryLocation string
	Currency         string
}

type OrderUpdateDB struct {
	OrderID      int64
	UpdateStatus string
	UpdateHeight int64
	Updater      string
}
