package ops

import (
	"context"
	"time"

	"github.com/Kishansuresh/pds-track/internal/modules/ledger"
	"github.com/Kishansuresh/pds-track/internal/modules/report"
	"github.com/Kishansuresh/pds-track/internal/modules/shipment"
	"github.com/Kishansuresh/pds-track/internal/modules/stock"
)

// The driver consumes the module services through these interfaces so tests
// can substitute mocks. Each is satisfied by the matching module Service.

// StockStore is the warehouse/shop stock surface the driver writes through.
type StockStore interface {
	WarehouseLevels(ctx context.Context) ([]*stock.WarehouseStock, error)
	SetWarehouseQuantity(ctx context.Context, id string, kg float64) error
	Shop(ctx context.Context) (*stock.Shop, error)
	SetShopStock(ctx context.Context, id string, riceKg, wheatKg float64) error
	Counts(ctx context.Context) (stock.Counts, error)
}

// ShipmentStore is the shipment lifecycle surface.
type ShipmentStore interface {
	Dispatch(ctx context.Context, manifest shipment.Manifest) (*shipment.Shipment, error)
	Get(ctx context.Context, id string) (*shipment.Shipment, error)
	Recent(ctx context.Context, limit int) ([]*shipment.Shipment, error)
	Incoming(ctx context.Context) ([]*shipment.Shipment, error)
	MarkDelivered(ctx context.Context, id string, at time.Time) (bool, error)
}

// LedgerStore is the transaction log surface.
type LedgerStore interface {
	RecordSale(ctx context.Context, customer string, amount, riceKg, wheatKg float64) (*ledger.Transaction, error)
	RecordRestock(ctx context.Context, shipmentRef string, riceKg, wheatKg float64) (*ledger.Transaction, error)
	RecordPrebook(ctx context.Context, customer, pickupDate string, riceKg, wheatKg float64) (*ledger.Transaction, error)
	Get(ctx context.Context, id string) (*ledger.Transaction, error)
	Sales(ctx context.Context, limit int) ([]*ledger.Transaction, error)
	PendingReservations(ctx context.Context) ([]*ledger.Transaction, error)
	CustomerReservations(ctx context.Context, customer string) ([]*ledger.Transaction, error)
	MarkReserved(ctx context.Context, id string) (bool, error)
}

// ReportStore is the complaint surface.
type ReportStore interface {
	File(ctx context.Context, name, text, rationID string) (*report.Report, error)
	Recent(ctx context.Context, limit int) ([]*report.Report, error)
	ByComplainant(ctx context.Context, name string) ([]*report.Report, error)
	PendingCount(ctx context.Context) (int, error)
	Resolve(ctx context.Context, id string) (bool, error)
}
