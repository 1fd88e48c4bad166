package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kishansuresh/pds-track/internal/modules/ledger"
)

// recordingRepo captures inserted transactions so the service's derived
// fields can be asserted without a database.
type recordingRepo struct {
	ledger.Repository
	inserted []*ledger.Transaction
}

func (r *recordingRepo) Insert(_ context.Context, t *ledger.Transaction) error {
	r.inserted = append(r.inserted, t)
	return nil
}

func TestService_RecordSale(t *testing.T) {
	repo := &recordingRepo{}
	svc := ledger.NewService(repo)

	tx, err := svc.RecordSale(context.Background(), "Asha Verma", 900, 30, 10)
	require.NoError(t, err)

	assert.Equal(t, ledger.KindCitizenSale, tx.Items.Kind)
	assert.Equal(t, "Asha Verma", tx.Items.Customer)
	assert.Equal(t, 900.0, tx.Amount)
	assert.Equal(t, 30.0, tx.Items.RiceKg())
	assert.Equal(t, 10.0, tx.Items.WheatKg())
	assert.Equal(t, ledger.StatusSuccess, tx.PaymentStatus)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, tx, repo.inserted[0])
}

func TestService_RecordRestockDerivesCost(t *testing.T) {
	repo := &recordingRepo{}
	svc := ledger.NewService(repo)

	// 200kg rice at 30/kg plus 100kg wheat at 20/kg.
	tx, err := svc.RecordRestock(context.Background(), "a1b2c3d4", 200, 100)
	require.NoError(t, err)

	assert.Equal(t, 8000.0, tx.Amount)
	assert.Equal(t, ledger.KindWarehouseRestock, tx.Items.Kind)
	assert.Equal(t, "a1b2c3d4", tx.Items.ShipmentRef)
	assert.Equal(t, ledger.StatusPaidToWarehouse, tx.PaymentStatus)
}

func TestService_RecordPrebookIsFreeAndPending(t *testing.T) {
	repo := &recordingRepo{}
	svc := ledger.NewService(repo)

	tx, err := svc.RecordPrebook(context.Background(), "Rajesh Kumar", "2026-09-05", 30, 10)
	require.NoError(t, err)

	assert.Equal(t, 0.0, tx.Amount)
	assert.Equal(t, ledger.KindPrebookRequest, tx.Items.Kind)
	assert.Equal(t, "2026-09-05", tx.Items.PickupDate)
	assert.Equal(t, ledger.StatusPendingReservation, tx.PaymentStatus)
}
