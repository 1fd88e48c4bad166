package report

import "context"

// Repository defines complaint data storage.
type Repository interface {
	Create(ctx context.Context, rep *Report) error
	ListRecent(ctx context.Context, limit int) ([]*Report, error)
	ListByComplainant(ctx context.Context, name string) ([]*Report, error)
	CountPending(ctx context.Context) (int, error)
	// Resolve marks a pending complaint resolved. It reports false when the
	// complaint was already resolved or does not exist.
	Resolve(ctx context.Context, id string) (bool, error)
}
