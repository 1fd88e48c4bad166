package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service defines complaint business logic.
type Service interface {
	File(ctx context.Context, name, text, rationID string) (*Report, error)
	Recent(ctx context.Context, limit int) ([]*Report, error)
	ByComplainant(ctx context.Context, name string) ([]*Report, error)
	PendingCount(ctx context.Context) (int, error)
	// Resolve closes a complaint. It reports false when the complaint was
	// already resolved.
	Resolve(ctx context.Context, id string) (bool, error)
}

type service struct {
	repo Repository
}

// NewService creates a new report service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) File(ctx context.Context, name, text, rationID string) (*Report, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("complainant name is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("complaint text is required")
	}
	rep := &Report{
		ID:              uuid.New(),
		ComplainantName: name,
		ComplaintText:   text,
		RationID:        rationID,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]*Report, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *service) ByComplainant(ctx context.Context, name string) ([]*Report, error) {
	return s.repo.ListByComplainant(ctx, name)
}

func (s *service) PendingCount(ctx context.Context) (int, error) {
	return s.repo.CountPending(ctx)
}

func (s *service) Resolve(ctx context.Context, id string) (bool, error) {
	return s.repo.Resolve(ctx, id)
}
