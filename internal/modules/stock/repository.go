package stock

import "context"

// WarehouseRepository defines warehouse stock data storage.
type WarehouseRepository interface {
	ListStock(ctx context.Context) ([]*WarehouseStock, error)
	UpdateQuantity(ctx context.Context, id string, kg float64) error
	Count(ctx context.Context) (int, error)
}

// ShopRepository defines ration shop data storage.
type ShopRepository interface {
	// GetShop returns the shop record. The deployment carries a single
	// ration shop row; callers address it by the id this returns.
	GetShop(ctx context.Context) (*Shop, error)
	UpdateStock(ctx context.Context, id string, riceKg, wheatKg float64) error
	Count(ctx context.Context) (int, error)
}
