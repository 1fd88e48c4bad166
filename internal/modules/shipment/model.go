package shipment

import (
	"time"

	"github.com/google/uuid"

	"github.com/Kishansuresh/pds-track/internal/modules/stock"
)

// Status represents the lifecycle state of a shipment.
type Status string

const (
	// StatusPending exists in the schema but is never produced by a
	// dispatch; it is only accepted as a pre-existing stored value and is
	// treated like in-transit for incoming filtering.
	StatusPending   Status = "pending"
	StatusInTransit Status = "in-transit"
	StatusDelivered Status = "delivered"
)

// validTransitions defines the allowed status state machine. Delivered is
// terminal; no cancellation path exists.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusInTransit, StatusDelivered},
	StatusInTransit: {StatusDelivered},
	StatusDelivered: {},
}

// CanTransition reports whether the status may move to next.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Display returns the human-readable status label.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInTransit:
		return "In Transit"
	case StatusDelivered:
		return "Delivered"
	}
	return string(s)
}

// IncomingStatuses are the states shown on the dealer's incoming view.
var IncomingStatuses = []Status{StatusPending, StatusInTransit}

// Manifest maps each shipped commodity to its typed quantity.
type Manifest map[stock.Commodity]stock.Quantity

// Kg returns the kg magnitude shipped for a commodity, 0 when absent.
func (m Manifest) Kg(c stock.Commodity) float64 {
	return m[c].Amount
}

// Shipment is one consignment moving from the warehouse to the ration shop.
type Shipment struct {
	ID           uuid.UUID  `json:"id"`
	Status       Status     `json:"status"`
	Items        Manifest   `json:"items"`
	DispatchedAt time.Time  `json:"dispatched_at"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
}
