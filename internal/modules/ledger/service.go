package ledger

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Kishansuresh/pds-track/internal/modules/stock"
)

// Per-kg rupee rates the shop pays the warehouse on restock.
const (
	RestockRateRice  = 30
	RestockRateWheat = 20
)

// ErrNotFound is returned when a transaction id matches no stored row.
var ErrNotFound = errors.New("transaction not found")

// Service defines transaction log business logic.
type Service interface {
	// RecordSale appends a citizen sale settled at the counter.
	RecordSale(ctx context.Context, customer string, amount, riceKg, wheatKg float64) (*Transaction, error)
	// RecordRestock appends the payment owed to the warehouse for an
	// accepted shipment. The cost is derived from the per-kg rates.
	RecordRestock(ctx context.Context, shipmentRef string, riceKg, wheatKg float64) (*Transaction, error)
	// RecordPrebook appends a citizen pre-booking request awaiting dealer
	// approval. No stock is held until approval.
	RecordPrebook(ctx context.Context, customer, pickupDate string, riceKg, wheatKg float64) (*Transaction, error)
	Get(ctx context.Context, id string) (*Transaction, error)
	Sales(ctx context.Context, limit int) ([]*Transaction, error)
	PendingReservations(ctx context.Context) ([]*Transaction, error)
	CustomerReservations(ctx context.Context, customer string) ([]*Transaction, error)
	// MarkReserved approves a pre-booking. It reports false when the
	// transaction was not pending approval.
	MarkReserved(ctx context.Context, id string) (bool, error)
}

type service struct {
	repo Repository
}

// NewService creates a new ledger service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) record(ctx context.Context, amount float64, items Items, status PaymentStatus) (*Transaction, error) {
	t := &Transaction{
		ID:            uuid.New(),
		Amount:        amount,
		Items:         items,
		PaymentStatus: status,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) RecordSale(ctx context.Context, customer string, amount, riceKg, wheatKg float64) (*Transaction, error) {
	rice, wheat := stock.Kg(riceKg), stock.Kg(wheatKg)
	return s.record(ctx, amount, Items{
		Kind:     KindCitizenSale,
		Customer: customer,
		Rice:     &rice,
		Wheat:    &wheat,
	}, StatusSuccess)
}

func (s *service) RecordRestock(ctx context.Context, shipmentRef string, riceKg, wheatKg float64) (*Transaction, error) {
	rice, wheat := stock.Kg(riceKg), stock.Kg(wheatKg)
	cost := riceKg*RestockRateRice + wheatKg*RestockRateWheat
	return s.record(ctx, cost, Items{
		Kind:        KindWarehouseRestock,
		ShipmentRef: shipmentRef,
		Rice:        &rice,
		Wheat:       &wheat,
	}, StatusPaidToWarehouse)
}

func (s *service) RecordPrebook(ctx context.Context, customer, pickupDate string, riceKg, wheatKg float64) (*Transaction, error) {
	rice, wheat := stock.Kg(riceKg), stock.Kg(wheatKg)
	return s.record(ctx, 0, Items{
		Kind:       KindPrebookRequest,
		Customer:   customer,
		PickupDate: pickupDate,
		Rice:       &rice,
		Wheat:      &wheat,
	}, StatusPendingReservation)
}

func (s *service) Get(ctx context.Context, id string) (*Transaction, error) {
	t, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

func (s *service) Sales(ctx context.Context, limit int) ([]*Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListSales(ctx, limit)
}

func (s *service) PendingReservations(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListPendingReservations(ctx)
}

func (s *service) CustomerReservations(ctx context.Context, customer string) ([]*Transaction, error) {
	return s.repo.ListByCustomer(ctx, customer,
		[]PaymentStatus{StatusPendingReservation, StatusReserved})
}

func (s *service) MarkReserved(ctx context.Context, id string) (bool, error) {
	return s.repo.UpdateStatus(ctx, id, StatusPendingReservation, StatusReserved)
}
