package ops_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kishansuresh/pds-track/internal/modules/ledger"
	"github.com/Kishansuresh/pds-track/internal/modules/ops"
	mock_ops "github.com/Kishansuresh/pds-track/internal/modules/ops/mocks"
	"github.com/Kishansuresh/pds-track/internal/modules/report"
	"github.com/Kishansuresh/pds-track/internal/modules/shipment"
	"github.com/Kishansuresh/pds-track/internal/modules/stock"
)

type fixture struct {
	stockStore *mock_ops.MockStockStore
	shipments  *mock_ops.MockShipmentStore
	txlog      *mock_ops.MockLedgerStore
	reports    *mock_ops.MockReportStore

	riceRow  uuid.UUID
	wheatRow uuid.UUID
	shopID   uuid.UUID

	// Served by the mocked list re-fetches; tests may swap them to emulate
	// writes made outside the driver.
	recentShipments []*shipment.Shipment
	recentReports   []*report.Report

	driver *ops.Driver
}

// newFixture wires a driver against mocked stores seeded with the given pool
// levels. The read-side re-fetch calls answer the same seeded state any number
// of times; write expectations are set per test.
func newFixture(t *testing.T, warehouseRice, warehouseWheat, shopRice, shopWheat float64, tracker *shipment.Tracker) *fixture {
	t.Helper()
	return newSeededFixture(t, warehouseRice, warehouseWheat, shopRice, shopWheat, tracker, nil, nil)
}

func newSeededFixture(t *testing.T, warehouseRice, warehouseWheat, shopRice, shopWheat float64,
	tracker *shipment.Tracker, recent []*shipment.Shipment, reports []*report.Report) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		stockStore:      mock_ops.NewMockStockStore(ctrl),
		shipments:       mock_ops.NewMockShipmentStore(ctrl),
		txlog:           mock_ops.NewMockLedgerStore(ctrl),
		reports:         mock_ops.NewMockReportStore(ctrl),
		riceRow:         uuid.New(),
		wheatRow:        uuid.New(),
		shopID:          uuid.New(),
		recentShipments: recent,
		recentReports:   reports,
	}

	f.stockStore.EXPECT().WarehouseLevels(gomock.Any()).Return([]*stock.WarehouseStock{
		{ID: f.riceRow, CommodityType: stock.CommodityRice, TotalQuantity: stock.Kg(warehouseRice)},
		{ID: f.wheatRow, CommodityType: stock.CommodityWheat, TotalQuantity: stock.Kg(warehouseWheat)},
	}, nil).AnyTimes()
	f.stockStore.EXPECT().Shop(gomock.Any()).Return(&stock.Shop{
		ID:           f.shopID,
		CurrentRice:  stock.Kg(shopRice),
		CurrentWheat: stock.Kg(shopWheat),
	}, nil).AnyTimes()
	f.stockStore.EXPECT().Counts(gomock.Any()).Return(stock.Counts{Warehouses: 3, Shops: 1}, nil).AnyTimes()
	f.shipments.EXPECT().Recent(gomock.Any(), 10).DoAndReturn(
		func(context.Context, int) ([]*shipment.Shipment, error) { return f.recentShipments, nil }).AnyTimes()
	f.shipments.EXPECT().Incoming(gomock.Any()).Return(nil, nil).AnyTimes()
	f.txlog.EXPECT().Sales(gomock.Any(), 20).Return(nil, nil).AnyTimes()
	f.txlog.EXPECT().PendingReservations(gomock.Any()).Return(nil, nil).AnyTimes()
	f.reports.EXPECT().Recent(gomock.Any(), 10).DoAndReturn(
		func(context.Context, int) ([]*report.Report, error) { return f.recentReports, nil }).AnyTimes()
	f.reports.EXPECT().PendingCount(gomock.Any()).Return(0, nil).AnyTimes()

	if tracker == nil {
		tracker = shipment.NewTracker(time.Hour, time.Hour)
	}
	f.driver = ops.NewDriver(f.stockStore, f.shipments, f.txlog, f.reports, tracker)
	require.NoError(t, f.driver.Refresh(context.Background()))
	return f
}

func TestDriver_DispatchShipment(t *testing.T) {
	ctx := context.Background()

	t.Run("deducts warehouse stock and creates the shipment", func(t *testing.T) {
		f := newFixture(t, 500, 500, 0, 0, nil)

		f.stockStore.EXPECT().SetWarehouseQuantity(gomock.Any(), f.riceRow.String(), 300.0).Return(nil)
		f.stockStore.EXPECT().SetWarehouseQuantity(gomock.Any(), f.wheatRow.String(), 400.0).Return(nil)
		f.shipments.EXPECT().Dispatch(gomock.Any(), shipment.ManifestFor(200, 100)).
			Return(&shipment.Shipment{ID: uuid.New(), Status: shipment.StatusInTransit}, nil)

		snap, err := f.driver.DispatchShipment(ctx, 200, 100)
		assert.NoError(t, err)
		assert.Equal(t, float64(stock.MaxShopCapacityKg), snap.Stock.ShopCapacityKg)
	})

	t.Run("rejects a dispatch the warehouse cannot cover", func(t *testing.T) {
		f := newFixture(t, 500, 500, 0, 0, nil)

		_, err := f.driver.DispatchShipment(ctx, 600, 0)

		var verr *ops.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Insufficient Rice stock", verr.Reason)
		// No write expectations were set: any store mutation fails the test.
	})

	t.Run("skips the stock write for a zero-quantity commodity", func(t *testing.T) {
		f := newFixture(t, 500, 500, 0, 0, nil)

		f.stockStore.EXPECT().SetWarehouseQuantity(gomock.Any(), f.riceRow.String(), 350.0).Return(nil)
		f.shipments.EXPECT().Dispatch(gomock.Any(), shipment.ManifestFor(150, 0)).
			Return(&shipment.Shipment{ID: uuid.New(), Status: shipment.StatusInTransit}, nil)

		_, err := f.driver.DispatchShipment(ctx, 150, 0)
		assert.NoError(t, err)
	})

	t.Run("surfaces a persistence failure after re-fetching", func(t *testing.T) {
		f := newFixture(t, 500, 500, 0, 0, nil)

		f.stockStore.EXPECT().SetWarehouseQuantity(gomock.Any(), f.riceRow.String(), 450.0).Return(nil)
		f.shipments.EXPECT().Dispatch(gomock.Any(), shipment.ManifestFor(50, 0)).
			Return(nil, errors.New("connection reset"))

		snap, err := f.driver.DispatchShipment(ctx, 50, 0)

		var perr *ops.PersistenceError
		require.ErrorAs(t, err, &perr)
		// The re-fetch already ran, so the snapshot shows the store's levels.
		assert.Equal(t, 500.0, snap.Stock.WarehouseRiceKg)
	})
}

func TestDriver_AcceptShipment(t *testing.T) {
	ctx := context.Background()

	t.Run("credits the shop, delivers and appends the restock payment in order", func(t *testing.T) {
		f := newFixture(t, 0, 0, 100, 0, nil)
		shipmentID := uuid.New()

		f.shipments.EXPECT().Get(gomock.Any(), shipmentID.String()).Return(&shipment.Shipment{
			ID:     shipmentID,
			Status: shipment.StatusInTransit,
			Items:  shipment.ManifestFor(200, 0),
		}, nil)
		gomock.InOrder(
			f.stockStore.EXPECT().SetShopStock(gomock.Any(), f.shopID.String(), 300.0, 0.0).Return(nil),
			f.shipments.EXPECT().MarkDelivered(gomock.Any(), shipmentID.String(), gomock.Any()).Return(true, nil),
			f.txlog.EXPECT().RecordRestock(gomock.Any(), shipmentID.String()[:8], 200.0, 0.0).
				Return(&ledger.Transaction{ID: uuid.New()}, nil),
		)

		_, err := f.driver.AcceptShipment(ctx, shipmentID.String())
		assert.NoError(t, err)
	})

	t.Run("rejects an acceptance that would breach shop capacity", func(t *testing.T) {
		f := newFixture(t, 0, 0, 1900, 0, nil)
		shipmentID := uuid.New()

		f.shipments.EXPECT().Get(gomock.Any(), shipmentID.String()).Return(&shipment.Shipment{
			ID:     shipmentID,
			Status: shipment.StatusInTransit,
			Items:  shipment.ManifestFor(200, 0),
		}, nil)

		_, err := f.driver.AcceptShipment(ctx, shipmentID.String())

		var verr *ops.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Reason, "2000kg limit")
	})

	t.Run("treats an already delivered shipment as a no-op", func(t *testing.T) {
		f := newFixture(t, 0, 0, 100, 0, nil)
		shipmentID := uuid.New()

		f.shipments.EXPECT().Get(gomock.Any(), shipmentID.String()).Return(&shipment.Shipment{
			ID:     shipmentID,
			Status: shipment.StatusDelivered,
			Items:  shipment.ManifestFor(200, 0),
		}, nil)

		_, err := f.driver.AcceptShipment(ctx, shipmentID.String())
		assert.NoError(t, err)
	})

	t.Run("skips the restock payment when the delivery transition lost the race", func(t *testing.T) {
		f := newFixture(t, 0, 0, 100, 0, nil)
		shipmentID := uuid.New()

		f.shipments.EXPECT().Get(gomock.Any(), shipmentID.String()).Return(&shipment.Shipment{
			ID:     shipmentID,
			Status: shipment.StatusInTransit,
			Items:  shipment.ManifestFor(50, 0),
		}, nil)
		f.stockStore.EXPECT().SetShopStock(gomock.Any(), f.shopID.String(), 150.0, 0.0).Return(nil)
		// Guarded update reports the row was already delivered.
		f.shipments.EXPECT().MarkDelivered(gomock.Any(), shipmentID.String(), gomock.Any()).Return(false, nil)

		_, err := f.driver.AcceptShipment(ctx, shipmentID.String())
		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown shipment", func(t *testing.T) {
		f := newFixture(t, 0, 0, 100, 0, nil)

		f.shipments.EXPECT().Get(gomock.Any(), "missing").Return(nil, errors.New("no rows"))

		_, err := f.driver.AcceptShipment(ctx, "missing")

		var nerr *ops.NotFoundError
		assert.ErrorAs(t, err, &nerr)
	})
}

func TestDriver_RecordSale(t *testing.T) {
	ctx := context.Background()

	t.Run("deducts shop stock before appending the sale", func(t *testing.T) {
		f := newFixture(t, 0, 0, 50, 50, nil)

		gomock.InOrder(
			f.stockStore.EXPECT().SetShopStock(gomock.Any(), f.shopID.String(), 20.0, 40.0).Return(nil),
			f.txlog.EXPECT().RecordSale(gomock.Any(), "Asha Verma", 900.0, 30.0, 10.0).
				Return(&ledger.Transaction{ID: uuid.New()}, nil),
		)

		_, err := f.driver.RecordSale(ctx, "Asha Verma", 900, 30, 10)
		assert.NoError(t, err)
	})

	t.Run("rejects a sale the shop cannot cover", func(t *testing.T) {
		f := newFixture(t, 0, 0, 25, 10, nil)

		_, err := f.driver.RecordSale(ctx, "Asha Verma", 900, 30, 10)

		var verr *ops.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Insufficient Rice stock", verr.Reason)
	})

	t.Run("requires a customer name", func(t *testing.T) {
		f := newFixture(t, 0, 0, 50, 50, nil)

		_, err := f.driver.RecordSale(ctx, "   ", 900, 30, 10)

		var verr *ops.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestDriver_ApproveReservation(t *testing.T) {
	ctx := context.Background()
	rice, wheat := stock.Kg(30), stock.Kg(10)

	t.Run("holds shop stock and marks the reservation reserved", func(t *testing.T) {
		f := newFixture(t, 0, 0, 50, 20, nil)
		resID := uuid.New()

		f.txlog.EXPECT().Get(gomock.Any(), resID.String()).Return(&ledger.Transaction{
			ID:            resID,
			PaymentStatus: ledger.StatusPendingReservation,
			Items:         ledger.Items{Kind: ledger.KindPrebookRequest, Rice: &rice, Wheat: &wheat},
		}, nil)
		gomock.InOrder(
			f.stockStore.EXPECT().SetShopStock(gomock.Any(), f.shopID.String(), 20.0, 10.0).Return(nil),
			f.txlog.EXPECT().MarkReserved(gomock.Any(), resID.String()).Return(true, nil),
		)

		_, err := f.driver.ApproveReservation(ctx, resID.String())
		assert.NoError(t, err)
	})

	t.Run("rejects an approval the shop cannot cover", func(t *testing.T) {
		f := newFixture(t, 0, 0, 25, 10, nil)
		resID := uuid.New()

		f.txlog.EXPECT().Get(gomock.Any(), resID.String()).Return(&ledger.Transaction{
			ID:            resID,
			PaymentStatus: ledger.StatusPendingReservation,
			Items:         ledger.Items{Kind: ledger.KindPrebookRequest, Rice: &rice, Wheat: &wheat},
		}, nil)

		_, err := f.driver.ApproveReservation(ctx, resID.String())

		var verr *ops.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Insufficient Rice stock", verr.Reason)
	})

	t.Run("rejects a reservation that is not pending approval", func(t *testing.T) {
		f := newFixture(t, 0, 0, 50, 20, nil)
		resID := uuid.New()

		f.txlog.EXPECT().Get(gomock.Any(), resID.String()).Return(&ledger.Transaction{
			ID:            resID,
			PaymentStatus: ledger.StatusReserved,
			Items:         ledger.Items{Kind: ledger.KindPrebookRequest, Rice: &rice, Wheat: &wheat},
		}, nil)

		_, err := f.driver.ApproveReservation(ctx, resID.String())

		var verr *ops.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestDriver_RequestPrebook(t *testing.T) {
	ctx := context.Background()

	t.Run("books the fixed monthly quota for the citizen", func(t *testing.T) {
		f := newFixture(t, 0, 0, 50, 20, nil)

		f.txlog.EXPECT().RecordPrebook(gomock.Any(), ops.DefaultCitizenName, "2026-09-05", 30.0, 10.0).
			Return(&ledger.Transaction{ID: uuid.New()}, nil)

		_, err := f.driver.RequestPrebook(ctx, "2026-09-05")
		assert.NoError(t, err)
	})

	t.Run("requires a pickup date", func(t *testing.T) {
		f := newFixture(t, 0, 0, 50, 20, nil)

		_, err := f.driver.RequestPrebook(ctx, "")

		var verr *ops.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestDriver_FileComplaint(t *testing.T) {
	ctx := context.Background()

	t.Run("files the complaint under the fixed ration id", func(t *testing.T) {
		f := newFixture(t, 0, 0, 0, 0, nil)

		f.reports.EXPECT().File(gomock.Any(), "Rajesh Kumar", "Dealer shop closed during hours", ops.DefaultRationID).
			Return(nil, nil)

		_, err := f.driver.FileComplaint(ctx, "Rajesh Kumar", "Dealer shop closed during hours")
		assert.NoError(t, err)
	})

	t.Run("rejects blank input", func(t *testing.T) {
		f := newFixture(t, 0, 0, 0, 0, nil)

		_, err := f.driver.FileComplaint(ctx, "Rajesh Kumar", "   ")

		var verr *ops.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestDriver_ResolveComplaint(t *testing.T) {
	f := newFixture(t, 0, 0, 0, 0, nil)
	reportID := uuid.New()

	f.reports.EXPECT().Resolve(gomock.Any(), reportID.String()).Return(true, nil)

	_, err := f.driver.ResolveComplaint(context.Background(), reportID.String())
	assert.NoError(t, err)
}

func TestDriver_Tracking(t *testing.T) {
	ctx := context.Background()

	t.Run("arrival fires the status-only delivery for the warehouse role", func(t *testing.T) {
		tracker := shipment.NewTracker(5*time.Millisecond, 20*time.Millisecond)
		f := newFixture(t, 0, 0, 100, 0, tracker)
		shipmentID := uuid.New()
		inTransit := &shipment.Shipment{
			ID:     shipmentID,
			Status: shipment.StatusInTransit,
			Items:  shipment.ManifestFor(50, 0),
		}

		delivered := make(chan struct{})
		f.shipments.EXPECT().Get(gomock.Any(), shipmentID.String()).Return(inTransit, nil).Times(2)
		f.shipments.EXPECT().MarkDelivered(gomock.Any(), shipmentID.String(), gomock.Any()).
			DoAndReturn(func(context.Context, string, time.Time) (bool, error) {
				close(delivered)
				return true, nil
			})

		snap, err := f.driver.StartTracking(ctx, ops.RoleWarehouse, shipmentID.String())
		require.NoError(t, err)
		assert.True(t, snap.Tracking.Active)
		assert.Equal(t, shipmentID.String(), snap.Tracking.ShipmentID)

		select {
		case <-delivered:
		case <-time.After(time.Second):
			t.Fatal("arrival callback never fired")
		}

		// Blocks on the driver mutex until the callback's re-fetch finishes.
		final := f.driver.Snapshot()
		assert.False(t, final.Tracking.Active)
	})

	t.Run("stopping the session cancels the arrival callback", func(t *testing.T) {
		tracker := shipment.NewTracker(5*time.Millisecond, 20*time.Millisecond)
		f := newFixture(t, 0, 0, 100, 0, tracker)
		shipmentID := uuid.New()

		f.shipments.EXPECT().Get(gomock.Any(), shipmentID.String()).Return(&shipment.Shipment{
			ID:     shipmentID,
			Status: shipment.StatusInTransit,
			Items:  shipment.ManifestFor(50, 0),
		}, nil)

		_, err := f.driver.StartTracking(ctx, ops.RoleWarehouse, shipmentID.String())
		require.NoError(t, err)

		snap := f.driver.StopTracking()
		assert.False(t, snap.Tracking.Active)

		// Past the completion mark; a surviving timer would call the
		// unexpected MarkDelivered and fail the test.
		time.Sleep(50 * time.Millisecond)
	})

	t.Run("rejects tracking a delivered shipment", func(t *testing.T) {
		f := newFixture(t, 0, 0, 100, 0, nil)
		shipmentID := uuid.New()

		f.shipments.EXPECT().Get(gomock.Any(), shipmentID.String()).Return(&shipment.Shipment{
			ID:     shipmentID,
			Status: shipment.StatusDelivered,
		}, nil)

		_, err := f.driver.StartTracking(ctx, ops.RoleDealer, shipmentID.String())

		var verr *ops.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestDriver_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()

	t.Run("accepting a shipment does not mutate earlier snapshots", func(t *testing.T) {
		shipmentID := uuid.New()
		inTransit := &shipment.Shipment{
			ID:     shipmentID,
			Status: shipment.StatusInTransit,
			Items:  shipment.ManifestFor(50, 0),
		}
		f := newSeededFixture(t, 0, 0, 100, 0, nil, []*shipment.Shipment{inTransit}, nil)

		before := f.driver.Snapshot()
		require.Len(t, before.Shipments, 1)

		f.shipments.EXPECT().Get(gomock.Any(), shipmentID.String()).Return(inTransit, nil)
		f.stockStore.EXPECT().SetShopStock(gomock.Any(), f.shopID.String(), 150.0, 0.0).Return(nil)
		f.shipments.EXPECT().MarkDelivered(gomock.Any(), shipmentID.String(), gomock.Any()).Return(true, nil)
		f.txlog.EXPECT().RecordRestock(gomock.Any(), shipmentID.String()[:8], 50.0, 0.0).
			Return(&ledger.Transaction{ID: uuid.New()}, nil)

		_, err := f.driver.AcceptShipment(ctx, shipmentID.String())
		require.NoError(t, err)

		assert.Equal(t, shipment.StatusInTransit, before.Shipments[0].Status,
			"the optimistic delivery flip must clone, not mutate shared pointers")
	})

	t.Run("resolving a complaint does not mutate earlier snapshots", func(t *testing.T) {
		reportID := uuid.New()
		pending := &report.Report{
			ID:              reportID,
			ComplainantName: "Rajesh Kumar",
			Status:          report.StatusPending,
		}
		f := newSeededFixture(t, 0, 0, 0, 0, nil, nil, []*report.Report{pending})

		before := f.driver.Snapshot()
		require.Len(t, before.Reports, 1)

		f.reports.EXPECT().Resolve(gomock.Any(), reportID.String()).Return(true, nil)

		_, err := f.driver.ResolveComplaint(ctx, reportID.String())
		require.NoError(t, err)

		assert.Equal(t, report.StatusPending, before.Reports[0].Status)
	})
}

func TestDriver_ReloadPicksUpRemoteWrites(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 100, 100, 0, 0, nil)

	assert.Empty(t, f.driver.Snapshot().Shipments)

	// A write lands outside this process.
	f.recentShipments = []*shipment.Shipment{{ID: uuid.New(), Status: shipment.StatusInTransit}}

	// Snapshot serves the cached copy; nothing is stale.
	assert.Empty(t, f.driver.Snapshot().Shipments)

	// A view mount reloads everything and sees the remote write.
	require.NoError(t, f.driver.Reload(ctx))
	assert.Len(t, f.driver.Snapshot().Shipments, 1)
}
