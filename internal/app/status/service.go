package status

import (
	"context"
	"time"

	"github.com/google/uuid"

	"muse/internal/store"
)

// Store captures the persistence needs for status check workflows.
type Store interface {
	CreateStatusCheck(ctx context.Context, check *store.StatusCheck) error
	ListStatusChecks(ctx context.Context) ([]*store.StatusCheck, error)
}

// Service coordinates status check operations.
type Service interface {
	Create(ctx context.Context, clientName string) (*store.StatusCheck, error)
	List(ctx context.Context) ([]*store.StatusCheck, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, clientName string) (*store.StatusCheck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	check := &store.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.store.CreateStatusCheck(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *service) List(ctx context.Context) ([]*store.StatusCheck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListStatusChecks(ctx)
}
