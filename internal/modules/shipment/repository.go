package shipment

import (
	"context"
	"time"
)

// Repository defines shipment data storage.
type Repository interface {
	Create(ctx context.Context, s *Shipment) error
	GetByID(ctx context.Context, id string) (*Shipment, error)
	ListRecent(ctx context.Context, limit int) ([]*Shipment, error)
	ListByStatuses(ctx context.Context, statuses []Status) ([]*Shipment, error)
	// MarkDelivered stamps the delivery exactly once. It reports false when
	// the shipment was already delivered, so callers can keep the delivery
	// transition idempotent in effect.
	MarkDelivered(ctx context.Context, id string, at time.Time) (bool, error)
}
