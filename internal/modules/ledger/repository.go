package ledger

import "context"

// Repository defines transaction log data storage. The log is append-only;
// the sales and reservations views are filter predicates over it, not
// separate stores.
type Repository interface {
	Insert(ctx context.Context, t *Transaction) error
	GetByID(ctx context.Context, id string) (*Transaction, error)
	// ListSales returns recent transactions excluding pending reservations.
	ListSales(ctx context.Context, limit int) ([]*Transaction, error)
	// ListPendingReservations returns transactions awaiting dealer approval.
	ListPendingReservations(ctx context.Context) ([]*Transaction, error)
	// ListByCustomer returns a customer's transactions within the given
	// statuses, using a contains-submap match on the items document.
	ListByCustomer(ctx context.Context, customer string, statuses []PaymentStatus) ([]*Transaction, error)
	// UpdateStatus moves a transaction between payment statuses. It reports
	// false when the row was not in the expected current status.
	UpdateStatus(ctx context.Context, id string, from, to PaymentStatus) (bool, error)
}
