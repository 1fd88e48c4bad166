package stock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNoShop is returned when no ration shop record exists in the store.
var ErrNoShop = errors.New("ration shop record not found")

// Service defines stock business logic for the warehouse and shop pools.
type Service interface {
	WarehouseLevels(ctx context.Context) ([]*WarehouseStock, error)
	SetWarehouseQuantity(ctx context.Context, id string, kg float64) error
	Shop(ctx context.Context) (*Shop, error)
	SetShopStock(ctx context.Context, id string, riceKg, wheatKg float64) error
	Counts(ctx context.Context) (Counts, error)
}

type service struct {
	warehouseRepo WarehouseRepository
	shopRepo      ShopRepository
}

// NewService creates a new stock service.
func NewService(warehouseRepo WarehouseRepository, shopRepo ShopRepository) Service {
	return &service{warehouseRepo: warehouseRepo, shopRepo: shopRepo}
}

func (s *service) WarehouseLevels(ctx context.Context) ([]*WarehouseStock, error) {
	return s.warehouseRepo.ListStock(ctx)
}

func (s *service) SetWarehouseQuantity(ctx context.Context, id string, kg float64) error {
	if kg < 0 {
		kg = 0
	}
	return s.warehouseRepo.UpdateQuantity(ctx, id, kg)
}

func (s *service) Shop(ctx context.Context) (*Shop, error) {
	shop, err := s.shopRepo.GetShop(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoShop
	}
	if err != nil {
		return nil, fmt.Errorf("could not load ration shop: %w", err)
	}
	return shop, nil
}

func (s *service) SetShopStock(ctx context.Context, id string, riceKg, wheatKg float64) error {
	if riceKg < 0 {
		riceKg = 0
	}
	if wheatKg < 0 {
		wheatKg = 0
	}
	return s.shopRepo.UpdateStock(ctx, id, riceKg, wheatKg)
}

func (s *service) Counts(ctx context.Context) (Counts, error) {
	warehouses, err := s.warehouseRepo.Count(ctx)
	if err != nil {
		return Counts{}, err
	}
	shops, err := s.shopRepo.Count(ctx)
	if err != nil {
		return Counts{}, err
	}
	return Counts{Warehouses: warehouses, Shops: shops}, nil
}
