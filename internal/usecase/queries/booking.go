package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *string, page, limit int) ([]*BookingView, int64, error)
	StatsByUser(ctx context.Context, userID uuid.UUID) (*BookingStatsView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUser(ctx context.Context, userID uuid.UUID, status *string, limit, offset int32) ([]*BookingView, error)
	CountByUser(ctx context.Context, userID uuid.UUID, status *string) (int64, error)
	StatsByUser(ctx context.Context, userID uuid.UUID) (*BookingStatsView, error)
}

const defaultPageSize = 20

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, _ uuid.UUID, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, status *string, page, limit int) ([]*BookingView, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit

	total, err := q.store.CountByUser(ctx, userID, status)
	if err != nil {
		return nil, 0, err
	}

	views, err := q.store.FindByUser(ctx, userID, status, int32(limit), int32(offset))
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (q *bookingQueriesImpl) StatsByUser(ctx context.Context, userID uuid.UUID) (*BookingStatsView, error) {
	return q.store.StatsByUser(ctx, userID)
}
