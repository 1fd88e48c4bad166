package ops

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Kishansuresh/pds-track/internal/modules/ledger"
	"github.com/Kishansuresh/pds-track/internal/modules/report"
	"github.com/Kishansuresh/pds-track/internal/modules/shipment"
	"github.com/Kishansuresh/pds-track/internal/modules/stock"
)

// Role selects which dashboard surface an action comes from. It is an
// unchecked client-side selector; there is no authentication behind it.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleWarehouse Role = "warehouse"
	RoleDealer    Role = "dealer"
	RoleCitizen   Role = "citizen"
)

// Fixed identities of the citizen portal and its monthly quota.
const (
	DefaultCitizenName = "Rajesh Kumar"
	DefaultRationID    = "RATION-12345"
	QuotaRiceKg        = 30
	QuotaWheatKg       = 10
)

const (
	recentShipmentLimit = 10
	recentSalesLimit    = 20
)

// Driver orchestrates every mutating dashboard action. Each action runs the
// same cycle in strict order: validate against the local stock ledger
// snapshot, apply optimistically to the cached views, persist to the store
// (stock writes first, lifecycle update second, transaction append last),
// then invalidate and re-fetch the touched collections. The re-fetch is the
// sole consistency repair; concurrent actors are reconciled, not locked out.
type Driver struct {
	mu sync.Mutex

	stocks  *stock.Ledger
	cache   *Cache
	tracker *shipment.Tracker

	stockStore StockStore
	shipments  ShipmentStore
	txlog      LedgerStore
	reports    ReportStore

	// Explicit pool addressing resolved from the store on refresh.
	warehouseRows map[stock.Commodity]string
	shopID        string
}

// NewDriver creates the reconciliation driver. Call Refresh once after
// construction to load the initial snapshot.
func NewDriver(stockStore StockStore, shipments ShipmentStore, txlog LedgerStore, reports ReportStore, tracker *shipment.Tracker) *Driver {
	return &Driver{
		stocks:        stock.NewLedger(),
		cache:         NewCache(),
		tracker:       tracker,
		stockStore:    stockStore,
		shipments:     shipments,
		txlog:         txlog,
		reports:       reports,
		warehouseRows: make(map[stock.Commodity]string),
	}
}

// Refresh re-fetches every stale collection from the authoritative store,
// replacing the optimistic local copies. Last full re-read wins.
func (d *Driver) Refresh(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refreshLocked(ctx)
}

// Reload invalidates every collection and re-fetches. View mounts use this so
// writes made outside this process are reconciled, not just the collections
// this driver touched.
func (d *Driver) Reload(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reloadLocked(ctx)
}

func (d *Driver) reloadLocked(ctx context.Context) error {
	d.cache.Invalidate(AllCollections...)
	return d.refreshLocked(ctx)
}

func (d *Driver) refreshLocked(ctx context.Context) error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, col := range d.cache.Stale() {
		switch col {
		case CollectionStock:
			keep(d.refetchStock(ctx))
		case CollectionShipments:
			keep(d.refetchShipments(ctx))
		case CollectionSales:
			keep(d.refetchSales(ctx))
		case CollectionReservations:
			keep(d.refetchReservations(ctx))
		case CollectionReports:
			keep(d.refetchReports(ctx))
		case CollectionCounts:
			keep(d.refetchCounts(ctx))
		}
	}
	d.cache.Update(func(s *Snapshot) { s.Tracking = d.tracker.State() })
	return firstErr
}

func (d *Driver) refetchStock(ctx context.Context) error {
	levels, err := d.stockStore.WarehouseLevels(ctx)
	if err != nil {
		return fmt.Errorf("could not refresh warehouse stock: %w", err)
	}
	for c := range d.warehouseRows {
		delete(d.warehouseRows, c)
	}
	for _, row := range levels {
		d.warehouseRows[row.CommodityType] = row.ID.String()
		d.stocks.Set(stock.PoolWarehouse, row.CommodityType, row.TotalQuantity.Amount)
	}

	shop, err := d.stockStore.Shop(ctx)
	switch {
	case errors.Is(err, stock.ErrNoShop):
		d.shopID = ""
		d.stocks.Set(stock.PoolShop, stock.CommodityRice, 0)
		d.stocks.Set(stock.PoolShop, stock.CommodityWheat, 0)
	case err != nil:
		return fmt.Errorf("could not refresh shop stock: %w", err)
	default:
		d.shopID = shop.ID.String()
		d.stocks.Set(stock.PoolShop, stock.CommodityRice, shop.CurrentRice.Amount)
		d.stocks.Set(stock.PoolShop, stock.CommodityWheat, shop.CurrentWheat.Amount)
	}

	d.cache.Update(func(s *Snapshot) {
		s.Stock = StockLevels{
			WarehouseRiceKg:  d.stocks.Get(stock.PoolWarehouse, stock.CommodityRice),
			WarehouseWheatKg: d.stocks.Get(stock.PoolWarehouse, stock.CommodityWheat),
			ShopRiceKg:       d.stocks.Get(stock.PoolShop, stock.CommodityRice),
			ShopWheatKg:      d.stocks.Get(stock.PoolShop, stock.CommodityWheat),
			ShopCapacityKg:   stock.MaxShopCapacityKg,
		}
	})
	d.cache.MarkFresh(CollectionStock)
	return nil
}

func (d *Driver) refetchShipments(ctx context.Context) error {
	recent, err := d.shipments.Recent(ctx, recentShipmentLimit)
	if err != nil {
		return fmt.Errorf("could not refresh shipments: %w", err)
	}
	incoming, err := d.shipments.Incoming(ctx)
	if err != nil {
		return fmt.Errorf("could not refresh incoming shipments: %w", err)
	}
	d.cache.Update(func(s *Snapshot) {
		s.Shipments = recent
		s.Incoming = incoming
	})
	d.cache.MarkFresh(CollectionShipments)
	return nil
}

func (d *Driver) refetchSales(ctx context.Context) error {
	sales, err := d.txlog.Sales(ctx, recentSalesLimit)
	if err != nil {
		return fmt.Errorf("could not refresh sales: %w", err)
	}
	d.cache.Update(func(s *Snapshot) { s.Sales = sales })
	d.cache.MarkFresh(CollectionSales)
	return nil
}

func (d *Driver) refetchReservations(ctx context.Context) error {
	pending, err := d.txlog.PendingReservations(ctx)
	if err != nil {
		return fmt.Errorf("could not refresh reservations: %w", err)
	}
	d.cache.Update(func(s *Snapshot) { s.Reservations = pending })
	d.cache.MarkFresh(CollectionReservations)
	return nil
}

func (d *Driver) refetchReports(ctx context.Context) error {
	reports, err := d.reports.Recent(ctx, recentShipmentLimit)
	if err != nil {
		return fmt.Errorf("could not refresh reports: %w", err)
	}
	d.cache.Update(func(s *Snapshot) { s.Reports = reports })
	d.cache.MarkFresh(CollectionReports)
	return nil
}

func (d *Driver) refetchCounts(ctx context.Context) error {
	counts, err := d.stockStore.Counts(ctx)
	if err != nil {
		return fmt.Errorf("could not refresh counts: %w", err)
	}
	pending, err := d.reports.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("could not refresh complaint count: %w", err)
	}
	d.cache.Update(func(s *Snapshot) {
		s.Counts = Counts{
			Warehouses:        counts.Warehouses,
			Shops:             counts.Shops,
			PendingComplaints: pending,
		}
	})
	d.cache.MarkFresh(CollectionCounts)
	return nil
}

// Snapshot returns the current cached views without touching the store.
func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cache.Update(func(s *Snapshot) { s.Tracking = d.tracker.State() })
	return d.cache.Snapshot()
}

// resync invalidates the touched collections, re-fetches them and folds a
// pending persistence failure into the result. Committed writes are never
// rolled back; the refreshed snapshot already shows the true store state.
func (d *Driver) resync(ctx context.Context, perr error, cols ...Collection) (Snapshot, error) {
	d.cache.Invalidate(cols...)
	if err := d.refreshLocked(ctx); err != nil && perr == nil {
		perr = err
	}
	return d.cache.Snapshot(), perr
}

func clampKg(kg float64) float64 {
	if kg < 0 || kg != kg { // negative or NaN input coerces to 0
		return 0
	}
	return kg
}

func shipmentRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// DispatchShipment deducts the requested quantities from the warehouse pool
// and creates an in-transit shipment carrying the manifest. Insufficiency of
// either commodity rejects the whole dispatch with zero mutations.
func (d *Driver) DispatchShipment(ctx context.Context, riceKg, wheatKg float64) (Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	riceKg, wheatKg = clampKg(riceKg), clampKg(wheatKg)
	demand := map[stock.Commodity]float64{
		stock.CommodityRice:  riceKg,
		stock.CommodityWheat: wheatKg,
	}

	// 1. Validate against the local ledger snapshot.
	if err := d.stocks.CheckDeduct(stock.PoolWarehouse, demand); err != nil {
		return d.cache.Snapshot(), &ValidationError{Reason: err.Error()}
	}

	// 2. Optimistic local apply.
	d.stocks.Adjust(stock.PoolWarehouse, stock.CommodityRice, -riceKg)
	d.stocks.Adjust(stock.PoolWarehouse, stock.CommodityWheat, -wheatKg)
	d.cache.Update(func(s *Snapshot) {
		s.Stock.WarehouseRiceKg = d.stocks.Get(stock.PoolWarehouse, stock.CommodityRice)
		s.Stock.WarehouseWheatKg = d.stocks.Get(stock.PoolWarehouse, stock.CommodityWheat)
	})

	// 3. Persist: stock decrements first, shipment insert second.
	var perr error
	for c, kg := range demand {
		rowID, ok := d.warehouseRows[c]
		if !ok || kg <= 0 {
			continue
		}
		if err := d.stockStore.SetWarehouseQuantity(ctx, rowID, d.stocks.Get(stock.PoolWarehouse, c)); err != nil && perr == nil {
			perr = &PersistenceError{Op: "warehouse stock update", Err: err}
		}
	}
	if _, err := d.shipments.Dispatch(ctx, shipment.ManifestFor(riceKg, wheatKg)); err != nil && perr == nil {
		perr = &PersistenceError{Op: "shipment insert", Err: err}
	}

	// 4. Re-synchronize.
	return d.resync(ctx, perr, CollectionStock, CollectionShipments)
}

// AcceptShipment is the dealer's delivery acceptance: the shipment becomes
// delivered, shop stock is credited and a restock payment is appended. A
// shipment already delivered is a no-op so the transition cannot
// double-credit stock.
func (d *Driver) AcceptShipment(ctx context.Context, shipmentID string) (Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	shp, err := d.shipments.Get(ctx, shipmentID)
	if err != nil {
		return d.cache.Snapshot(), &NotFoundError{Resource: "shipment"}
	}
	if shp.Status == shipment.StatusDelivered {
		return d.cache.Snapshot(), nil
	}
	if d.shopID == "" {
		return d.cache.Snapshot(), &NotFoundError{Resource: "ration shop record"}
	}

	incoming := map[stock.Commodity]float64{
		stock.CommodityRice:  shp.Items.Kg(stock.CommodityRice),
		stock.CommodityWheat: shp.Items.Kg(stock.CommodityWheat),
	}

	// 1. Validate the combined post-acceptance load against shop capacity.
	if err := d.stocks.CheckAccept(stock.PoolShop, incoming); err != nil {
		return d.cache.Snapshot(), &ValidationError{Reason: err.Error()}
	}

	// 2. Optimistic local apply.
	d.stocks.Adjust(stock.PoolShop, stock.CommodityRice, incoming[stock.CommodityRice])
	d.stocks.Adjust(stock.PoolShop, stock.CommodityWheat, incoming[stock.CommodityWheat])
	d.applyDeliveredLocked(shipmentID)
	d.cache.Update(func(s *Snapshot) {
		s.Stock.ShopRiceKg = d.stocks.Get(stock.PoolShop, stock.CommodityRice)
		s.Stock.ShopWheatKg = d.stocks.Get(stock.PoolShop, stock.CommodityWheat)
	})

	// 3. Persist: stock first, lifecycle second, transaction last. The
	// restock payment is only written once the delivery transition actually
	// happened, so a racing acceptance cannot append it twice.
	var perr error
	if err := d.stockStore.SetShopStock(ctx, d.shopID,
		d.stocks.Get(stock.PoolShop, stock.CommodityRice),
		d.stocks.Get(stock.PoolShop, stock.CommodityWheat)); err != nil {
		perr = &PersistenceError{Op: "shop stock update", Err: err}
	}
	delivered, err := d.shipments.MarkDelivered(ctx, shipmentID, time.Now().UTC())
	if err != nil && perr == nil {
		perr = &PersistenceError{Op: "shipment delivery update", Err: err}
	}
	if delivered {
		if _, err := d.txlog.RecordRestock(ctx, shipmentRef(shipmentID),
			incoming[stock.CommodityRice], incoming[stock.CommodityWheat]); err != nil && perr == nil {
			perr = &PersistenceError{Op: "restock transaction append", Err: err}
		}
	}

	// 4. Re-synchronize.
	return d.resync(ctx, perr, CollectionStock, CollectionShipments, CollectionSales)
}

// MarkDelivered is the status-only acceptance used by the admin and
// warehouse contexts, which are not the receiving party: no stock effect and
// no transaction.
func (d *Driver) MarkDelivered(ctx context.Context, shipmentID string) (Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.shipments.Get(ctx, shipmentID); err != nil {
		return d.cache.Snapshot(), &NotFoundError{Resource: "shipment"}
	}

	d.applyDeliveredLocked(shipmentID)

	var perr error
	if _, err := d.shipments.MarkDelivered(ctx, shipmentID, time.Now().UTC()); err != nil {
		perr = &PersistenceError{Op: "shipment delivery update", Err: err}
	}
	return d.resync(ctx, perr, CollectionShipments)
}

// applyDeliveredLocked flips the shipment to delivered in the cached lists.
// Snapshots already handed out share the cached pointers, so the flip clones
// the affected shipment instead of mutating it in place.
func (d *Driver) applyDeliveredLocked(shipmentID string) {
	d.cache.Update(func(s *Snapshot) {
		s.Shipments = withDelivered(s.Shipments, shipmentID)
		s.Incoming = withDelivered(s.Incoming, shipmentID)
	})
}

func withDelivered(list []*shipment.Shipment, shipmentID string) []*shipment.Shipment {
	if len(list) == 0 {
		return list
	}
	out := make([]*shipment.Shipment, len(list))
	for i, shp := range list {
		if shp.ID.String() == shipmentID && shp.Status != shipment.StatusDelivered {
			clone := *shp
			clone.Status = shipment.StatusDelivered
			out[i] = &clone
			continue
		}
		out[i] = shp
	}
	return out
}

// RecordSale sells shop stock to a citizen over the counter. Both commodity
// deductions must be covered independently or the whole sale is rejected.
func (d *Driver) RecordSale(ctx context.Context, customer string, amountRupees, riceKg, wheatKg float64) (Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if strings.TrimSpace(customer) == "" {
		return d.cache.Snapshot(), &ValidationError{Reason: "customer name is required"}
	}
	if d.shopID == "" {
		return d.cache.Snapshot(), &NotFoundError{Resource: "ration shop record"}
	}

	riceKg, wheatKg = clampKg(riceKg), clampKg(wheatKg)
	demand := map[stock.Commodity]float64{
		stock.CommodityRice:  riceKg,
		stock.CommodityWheat: wheatKg,
	}
	if err := d.stocks.CheckDeduct(stock.PoolShop, demand); err != nil {
		return d.cache.Snapshot(), &ValidationError{Reason: err.Error()}
	}

	d.stocks.Adjust(stock.PoolShop, stock.CommodityRice, -riceKg)
	d.stocks.Adjust(stock.PoolShop, stock.CommodityWheat, -wheatKg)
	d.cache.Update(func(s *Snapshot) {
		s.Stock.ShopRiceKg = d.stocks.Get(stock.PoolShop, stock.CommodityRice)
		s.Stock.ShopWheatKg = d.stocks.Get(stock.PoolShop, stock.CommodityWheat)
	})

	var perr error
	if err := d.stockStore.SetShopStock(ctx, d.shopID,
		d.stocks.Get(stock.PoolShop, stock.CommodityRice),
		d.stocks.Get(stock.PoolShop, stock.CommodityWheat)); err != nil {
		perr = &PersistenceError{Op: "shop stock update", Err: err}
	}
	if _, err := d.txlog.RecordSale(ctx, customer, amountRupees, riceKg, wheatKg); err != nil && perr == nil {
		perr = &PersistenceError{Op: "sale transaction append", Err: err}
	}

	return d.resync(ctx, perr, CollectionStock, CollectionSales)
}

// ApproveReservation approves a pre-booking: shop stock is held for the
// citizen at approval time and the transaction moves to reserved.
func (d *Driver) ApproveReservation(ctx context.Context, reservationID string) (Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	res, err := d.txlog.Get(ctx, reservationID)
	if err != nil {
		return d.cache.Snapshot(), &NotFoundError{Resource: "reservation"}
	}
	if res.PaymentStatus != ledger.StatusPendingReservation {
		return d.cache.Snapshot(), &ValidationError{Reason: "reservation is not pending approval"}
	}
	if d.shopID == "" {
		return d.cache.Snapshot(), &NotFoundError{Resource: "ration shop record"}
	}

	demand := map[stock.Commodity]float64{
		stock.CommodityRice:  res.Items.RiceKg(),
		stock.CommodityWheat: res.Items.WheatKg(),
	}
	if err := d.stocks.CheckDeduct(stock.PoolShop, demand); err != nil {
		return d.cache.Snapshot(), &ValidationError{Reason: err.Error()}
	}

	d.stocks.Adjust(stock.PoolShop, stock.CommodityRice, -demand[stock.CommodityRice])
	d.stocks.Adjust(stock.PoolShop, stock.CommodityWheat, -demand[stock.CommodityWheat])
	d.cache.Update(func(s *Snapshot) {
		s.Stock.ShopRiceKg = d.stocks.Get(stock.PoolShop, stock.CommodityRice)
		s.Stock.ShopWheatKg = d.stocks.Get(stock.PoolShop, stock.CommodityWheat)
		kept := make([]*ledger.Transaction, 0, len(s.Reservations))
		for _, r := range s.Reservations {
			if r.ID.String() != reservationID {
				kept = append(kept, r)
			}
		}
		s.Reservations = kept
	})

	var perr error
	if err := d.stockStore.SetShopStock(ctx, d.shopID,
		d.stocks.Get(stock.PoolShop, stock.CommodityRice),
		d.stocks.Get(stock.PoolShop, stock.CommodityWheat)); err != nil {
		perr = &PersistenceError{Op: "shop stock update", Err: err}
	}
	if _, err := d.txlog.MarkReserved(ctx, reservationID); err != nil && perr == nil {
		perr = &PersistenceError{Op: "reservation status update", Err: err}
	}

	return d.resync(ctx, perr, CollectionStock, CollectionReservations, CollectionSales)
}

// FileComplaint records a citizen complaint addressed to the authority.
func (d *Driver) FileComplaint(ctx context.Context, name, text string) (Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if strings.TrimSpace(name) == "" || strings.TrimSpace(text) == "" {
		return d.cache.Snapshot(), &ValidationError{Reason: "complainant name and complaint text are required"}
	}

	var perr error
	if _, err := d.reports.File(ctx, name, text, DefaultRationID); err != nil {
		perr = &PersistenceError{Op: "complaint insert", Err: err}
	}
	return d.resync(ctx, perr, CollectionReports, CollectionCounts)
}

// RequestPrebook files the citizen's monthly quota booking for a pickup
// date. No stock is held until the dealer approves.
func (d *Driver) RequestPrebook(ctx context.Context, pickupDate string) (Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if strings.TrimSpace(pickupDate) == "" {
		return d.cache.Snapshot(), &ValidationError{Reason: "pickup date is required"}
	}

	var perr error
	if _, err := d.txlog.RecordPrebook(ctx, DefaultCitizenName, pickupDate, QuotaRiceKg, QuotaWheatKg); err != nil {
		perr = &PersistenceError{Op: "pre-book transaction append", Err: err}
	}
	return d.resync(ctx, perr, CollectionReservations)
}

// ResolveComplaint closes a pending complaint. Resolving twice is a no-op.
func (d *Driver) ResolveComplaint(ctx context.Context, reportID string) (Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cache.Update(func(s *Snapshot) {
		if len(s.Reports) == 0 {
			return
		}
		out := make([]*report.Report, len(s.Reports))
		for i, rep := range s.Reports {
			if rep.ID.String() == reportID && rep.Status != report.StatusResolved {
				clone := *rep
				clone.Status = report.StatusResolved
				out[i] = &clone
				continue
			}
			out[i] = rep
		}
		s.Reports = out
	})

	var perr error
	if _, err := d.reports.Resolve(ctx, reportID); err != nil {
		perr = &PersistenceError{Op: "complaint resolution", Err: err}
	}
	return d.resync(ctx, perr, CollectionReports, CollectionCounts)
}

// StartTracking begins the arrival simulation for an in-transit shipment.
// When the session completes, the arrival callback runs the same delivery
// path a manual action would for the given role: full acceptance for the
// dealer, status-only for admin and warehouse.
func (d *Driver) StartTracking(ctx context.Context, role Role, shipmentID string) (Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	shp, err := d.shipments.Get(ctx, shipmentID)
	if err != nil {
		return d.cache.Snapshot(), &NotFoundError{Resource: "shipment"}
	}
	if shp.Status == shipment.StatusDelivered {
		return d.cache.Snapshot(), &ValidationError{Reason: "shipment has already been delivered"}
	}

	onArrival := func(id string) {
		bg := context.Background()
		var err error
		if role == RoleDealer {
			_, err = d.AcceptShipment(bg, id)
		} else {
			_, err = d.MarkDelivered(bg, id)
		}
		if err != nil {
			log.Printf("tracking arrival for shipment %s: %v", shipmentRef(id), err)
		}
	}
	d.tracker.Start(shipmentID, onArrival)

	d.cache.Update(func(s *Snapshot) { s.Tracking = d.tracker.State() })
	return d.cache.Snapshot(), nil
}

// StopTracking dismisses the tracking view, cancelling both pending timers
// so the arrival callback never fires for the dismissed shipment.
func (d *Driver) StopTracking() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tracker.Stop()
	d.cache.Update(func(s *Snapshot) { s.Tracking = d.tracker.State() })
	return d.cache.Snapshot()
}

// CitizenView assembles the citizen portal data that is keyed to the fixed
// citizen identity rather than cached collections.
type CitizenView struct {
	Name         string                `json:"name"`
	RationID     string                `json:"ration_id"`
	QuotaRiceKg  float64               `json:"quota_rice_kg"`
	QuotaWheatKg float64               `json:"quota_wheat_kg"`
	ShopRiceKg   float64               `json:"shop_rice_kg"`
	ShopWheatKg  float64               `json:"shop_wheat_kg"`
	Reservations []*ledger.Transaction `json:"reservations"`
	Complaints   []*report.Report      `json:"complaints"`
}

// Citizen returns the citizen portal view: quota, local shop status and the
// citizen's own reservations and complaints.
func (d *Driver) Citizen(ctx context.Context) (CitizenView, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.reloadLocked(ctx); err != nil {
		return CitizenView{}, err
	}
	reservations, err := d.txlog.CustomerReservations(ctx, DefaultCitizenName)
	if err != nil {
		return CitizenView{}, fmt.Errorf("could not load reservations: %w", err)
	}
	complaints, err := d.reports.ByComplainant(ctx, DefaultCitizenName)
	if err != nil {
		return CitizenView{}, fmt.Errorf("could not load complaints: %w", err)
	}
	snap := d.cache.Snapshot()
	return CitizenView{
		Name:         DefaultCitizenName,
		RationID:     DefaultRationID,
		QuotaRiceKg:  QuotaRiceKg,
		QuotaWheatKg: QuotaWheatKg,
		ShopRiceKg:   snap.Stock.ShopRiceKg,
		ShopWheatKg:  snap.Stock.ShopWheatKg,
		Reservations: reservations,
		Complaints:   complaints,
	}, nil
}
