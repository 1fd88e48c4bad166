package stock

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// ---- Warehouse ----

type warehousePostgres struct{ db *sql.DB }

func NewWarehousePostgresRepository(db *sql.DB) WarehouseRepository { return &warehousePostgres{db: db} }

func (r *warehousePostgres) ListStock(ctx context.Context) ([]*WarehouseStock, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, commodity_type, total_quantity_kg FROM warehouse_stock ORDER BY commodity_type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var stocks []*WarehouseStock
	for rows.Next() {
		s := &WarehouseStock{}
		var kg float64
		if err := rows.Scan(&s.ID, &s.CommodityType, &kg); err != nil {
			return nil, err
		}
		s.TotalQuantity = Kg(kg)
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}

func (r *warehousePostgres) UpdateQuantity(ctx context.Context, id string, kg float64) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE warehouse_stock SET total_quantity_kg=$1 WHERE id=$2`, kg, uid)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("warehouse stock row %s not found", id)
	}
	return nil
}

func (r *warehousePostgres) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM warehouses`).Scan(&n)
	return n, err
}

// ---- Shop ----

type shopPostgres struct{ db *sql.DB }

func NewShopPostgresRepository(db *sql.DB) ShopRepository { return &shopPostgres{db: db} }

func (r *shopPostgres) GetShop(ctx context.Context) (*Shop, error) {
	s := &Shop{}
	var rice, wheat float64
	err := r.db.QueryRowContext(ctx, `
SELECT id, current_stock_rice, current_stock_wheat, created_at
FROM ration_shops ORDER BY created_at ASC LIMIT 1`).
		Scan(&s.ID, &rice, &wheat, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.CurrentRice = Kg(rice)
	s.CurrentWheat = Kg(wheat)
	return s, nil
}

func (r *shopPostgres) UpdateStock(ctx context.Context, id string, riceKg, wheatKg float64) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
UPDATE ration_shops SET current_stock_rice=$1, current_stock_wheat=$2 WHERE id=$3`,
		riceKg, wheatKg, uid)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("ration shop %s not found", id)
	}
	return nil
}

func (r *shopPostgres) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ration_shops`).Scan(&n)
	return n, err
}
