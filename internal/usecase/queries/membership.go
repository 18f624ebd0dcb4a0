package queries

import (
	"context"

	"github.com/google/uuid"
)

type MembershipQueries interface {
	CurrentByUser(ctx context.Context, userID uuid.UUID) (*MembershipView, error)
}

type MembershipReadStore interface {
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*MembershipView, error)
}

type membershipQueriesImpl struct {
	store MembershipReadStore
}

func NewMembershipQueries(store MembershipReadStore) MembershipQueries {
	return &membershipQueriesImpl{store: store}
}

func (q *membershipQueriesImpl) CurrentByUser(ctx context.Context, userID uuid.UUID) (*MembershipView, error) {
	return q.store.FindActiveByUser(ctx, userID)
}
