package readstore

import (
	"context"
	"time"

	"gym-booking/internal/infra"
	"gym-booking/internal/infra/db"
	"gym-booking/internal/usecase/queries"
)

type LessonReadStore struct {
	dbtx db.DBTX
}

func NewLessonReadStore(dbtx db.DBTX) queries.LessonReadStore {
	return &LessonReadStore{dbtx: dbtx}
}

// FindActiveByDate lists active lessons held on the date's weekday with their
// remaining spots for that specific date.
func (s *LessonReadStore) FindActiveByDate(ctx context.Context, date time.Time) ([]*queries.LessonAvailabilityView, error) {
	const query = `
		SELECT l.id, l.name, l.day_of_week, l.start_time::text, l.end_time::text, l.capacity,
		       COUNT(b.id) FILTER (WHERE b.status <> 'cancelled') AS booked_count
		FROM lessons l
		LEFT JOIN bookings b ON b.lesson_id = l.id AND b.lesson_date = $1
		WHERE l.is_active AND l.day_of_week = $2
		GROUP BY l.id
		ORDER BY l.start_time`

	weekday := int(date.UTC().Weekday())
	rows, err := s.dbtx.Query(ctx, query, date, weekday)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lessons", err, infra.KindDBFailure)
	}
	defer rows.Close()

	views := make([]*queries.LessonAvailabilityView, 0)
	for rows.Next() {
		var v queries.LessonAvailabilityView
		err := rows.Scan(&v.ID, &v.Name, &v.DayOfWeek, &v.StartTime, &v.EndTime, &v.Capacity, &v.BookedCount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lesson row", err, infra.KindDBFailure)
		}
		spots := int64(v.Capacity) - v.BookedCount
		if spots < 0 {
			spots = 0
		}
		v.AvailableSpots = int32(spots)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lesson rows", err, infra.KindDBFailure)
	}
	return views, nil
}
