package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/Kishansuresh/pds-track/internal/modules/stock"
)

// Kind distinguishes the logical subtype of a transaction. The value is
// stored under the "Type" key of the items document.
type Kind string

const (
	KindCitizenSale      Kind = "Citizen Sale"
	KindWarehouseRestock Kind = "Warehouse Restock"
	KindPrebookRequest   Kind = "Pre-book Request"
)

// PaymentStatus represents the settlement state of a transaction.
type PaymentStatus string

const (
	StatusSuccess            PaymentStatus = "success"
	StatusPendingReservation PaymentStatus = "pending-reservation"
	StatusReserved           PaymentStatus = "reserved"
	StatusPaidToWarehouse    PaymentStatus = "paid_to_warehouse"
)

// Display returns the label shown next to the status.
func (s PaymentStatus) Display() string {
	if s == StatusPendingReservation {
		return "Pending Approval"
	}
	return string(s)
}

// Items is the typed detail document of a transaction, marshalled to the
// store's JSONB items column. Quantities travel as typed values, not as
// re-parsed display strings.
type Items struct {
	Kind        Kind            `json:"Type"`
	Customer    string          `json:"Customer,omitempty"`
	Rice        *stock.Quantity `json:"Rice,omitempty"`
	Wheat       *stock.Quantity `json:"Wheat,omitempty"`
	PickupDate  string          `json:"Date,omitempty"`
	ShipmentRef string          `json:"Ref,omitempty"`
}

// RiceKg returns the rice magnitude of the transaction, 0 when absent.
func (i Items) RiceKg() float64 {
	if i.Rice == nil {
		return 0
	}
	return i.Rice.Amount
}

// WheatKg returns the wheat magnitude of the transaction, 0 when absent.
func (i Items) WheatKg() float64 {
	if i.Wheat == nil {
		return 0
	}
	return i.Wheat.Amount
}

// Transaction is one append-only ledger entry. Immutable after creation
// except PaymentStatus, whose only transition is pending-reservation to
// reserved.
type Transaction struct {
	ID            uuid.UUID     `json:"id"`
	Amount        float64       `json:"amount"`
	Items         Items         `json:"items"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}
