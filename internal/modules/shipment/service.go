package shipment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Kishansuresh/pds-track/internal/modules/stock"
)

// ErrNotFound is returned when a shipment id matches no stored row.
var ErrNotFound = errors.New("shipment not found")

// Service defines shipment lifecycle business logic.
type Service interface {
	// Dispatch creates a shipment in-transit carrying the given manifest.
	Dispatch(ctx context.Context, manifest Manifest) (*Shipment, error)
	Get(ctx context.Context, id string) (*Shipment, error)
	Recent(ctx context.Context, limit int) ([]*Shipment, error)
	// Incoming lists shipments still headed to the shop (pending or
	// in-transit).
	Incoming(ctx context.Context) ([]*Shipment, error)
	// MarkDelivered applies the terminal delivery transition and reports
	// whether this call performed it. A second call for the same shipment
	// is a no-op returning false.
	MarkDelivered(ctx context.Context, id string, at time.Time) (bool, error)
}

type service struct {
	repo Repository
}

// NewService creates a new shipment service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Dispatch(ctx context.Context, manifest Manifest) (*Shipment, error) {
	if len(manifest) == 0 {
		return nil, fmt.Errorf("manifest is empty")
	}
	for c, q := range manifest {
		if q.Amount < 0 {
			return nil, fmt.Errorf("negative %s quantity in manifest", c.Display())
		}
	}
	shp := &Shipment{
		ID:           uuid.New(),
		Status:       StatusInTransit,
		Items:        manifest,
		DispatchedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, shp); err != nil {
		return nil, err
	}
	return shp, nil
}

func (s *service) Get(ctx context.Context, id string) (*Shipment, error) {
	shp, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return shp, err
}

func (s *service) Recent(ctx context.Context, limit int) ([]*Shipment, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *service) Incoming(ctx context.Context) ([]*Shipment, error) {
	return s.repo.ListByStatuses(ctx, IncomingStatuses)
}

func (s *service) MarkDelivered(ctx context.Context, id string, at time.Time) (bool, error) {
	return s.repo.MarkDelivered(ctx, id, at)
}

// ManifestFor builds a manifest from kg magnitudes, skipping nothing: zero
// quantities stay in the manifest so the stored record mirrors the dispatch
// form.
func ManifestFor(riceKg, wheatKg float64) Manifest {
	return Manifest{
		stock.CommodityRice:  stock.Kg(riceKg),
		stock.CommodityWheat: stock.Kg(wheatKg),
	}
}
