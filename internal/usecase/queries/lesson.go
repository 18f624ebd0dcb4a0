package queries

import (
	"context"
	"time"
)

type LessonQueries interface {
	// ListByDate returns the active lessons held on the given date's weekday
	// together with remaining spots for that date.
	ListByDate(ctx context.Context, date time.Time) ([]*LessonAvailabilityView, error)
}

type LessonReadStore interface {
	FindActiveByDate(ctx context.Context, date time.Time) ([]*LessonAvailabilityView, error)
}

type lessonQueriesImpl struct {
	store LessonReadStore
}

func NewLessonQueries(store LessonReadStore) LessonQueries {
	return &lessonQueriesImpl{store: store}
}

func (q *lessonQueriesImpl) ListByDate(ctx context.Context, date time.Time) ([]*LessonAvailabilityView, error) {
	return q.store.FindActiveByDate(ctx, date)
}
