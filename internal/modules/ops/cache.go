package ops

import (
	"sync"

	"github.com/Kishansuresh/pds-track/internal/modules/ledger"
	"github.com/Kishansuresh/pds-track/internal/modules/report"
	"github.com/Kishansuresh/pds-track/internal/modules/shipment"
)

// Collection keys the read-model cache by store collection. Actions
// invalidate the collections they touched and the next refresh re-fetches
// exactly those.
type Collection string

const (
	CollectionStock        Collection = "stock"
	CollectionShipments    Collection = "shipments"
	CollectionSales        Collection = "sales"
	CollectionReservations Collection = "reservations"
	CollectionReports      Collection = "reports"
	CollectionCounts       Collection = "counts"
)

// AllCollections lists every cached collection.
var AllCollections = []Collection{
	CollectionStock, CollectionShipments, CollectionSales,
	CollectionReservations, CollectionReports, CollectionCounts,
}

// StockLevels is the flattened stock view served to dashboards.
type StockLevels struct {
	WarehouseRiceKg  float64 `json:"warehouse_rice_kg"`
	WarehouseWheatKg float64 `json:"warehouse_wheat_kg"`
	ShopRiceKg       float64 `json:"shop_rice_kg"`
	ShopWheatKg      float64 `json:"shop_wheat_kg"`
	ShopCapacityKg   float64 `json:"shop_capacity_kg"`
}

// Counts summarizes the admin overview cards.
type Counts struct {
	Warehouses        int `json:"warehouses"`
	Shops             int `json:"shops"`
	PendingComplaints int `json:"pending_complaints"`
}

// Snapshot is the transient cached copy of every view the dashboards
// render. The remote store stays the sole durable owner; this copy may be
// momentarily stale between an optimistic apply and the next re-fetch.
type Snapshot struct {
	Stock        StockLevels            `json:"stock"`
	Shipments    []*shipment.Shipment   `json:"shipments"`
	Incoming     []*shipment.Shipment   `json:"incoming"`
	Sales        []*ledger.Transaction  `json:"sales"`
	Reservations []*ledger.Transaction  `json:"reservations"`
	Reports      []*report.Report       `json:"reports"`
	Counts       Counts                 `json:"counts"`
	Tracking     shipment.TrackingState `json:"tracking"`
}

// Cache is the explicit read-model cache replacing per-action ad-hoc
// re-fetches. Everything starts stale so the first refresh loads all views.
type Cache struct {
	mu    sync.RWMutex
	snap  Snapshot
	stale map[Collection]bool
}

func NewCache() *Cache {
	c := &Cache{stale: make(map[Collection]bool, len(AllCollections))}
	for _, col := range AllCollections {
		c.stale[col] = true
	}
	return c
}

// Invalidate marks collections for re-fetch on the next refresh.
func (c *Cache) Invalidate(cols ...Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, col := range cols {
		c.stale[col] = true
	}
}

// MarkFresh clears the stale flag once a collection has been re-fetched.
func (c *Cache) MarkFresh(cols ...Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, col := range cols {
		delete(c.stale, col)
	}
}

// Stale returns the collections awaiting a re-fetch, in declaration order.
func (c *Cache) Stale() []Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Collection
	for _, col := range AllCollections {
		if c.stale[col] {
			out = append(out, col)
		}
	}
	return out
}

// Update applies an optimistic or authoritative mutation to the snapshot.
func (c *Cache) Update(mutate func(*Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mutate(&c.snap)
}

// Snapshot returns a copy of the cached views. Slices are shared with the
// cache; callers must not mutate them in place.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}
