package repository

import (
	"context"
	"time"

	"gym-booking/internal/domain/lesson"
	"gym-booking/internal/infra"
	"gym-booking/internal/infra/db"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LessonRepository struct {
	dbtx db.DBTX
}

func NewLessonRepository(dbtx db.DBTX) shared.LessonRepository {
	return &LessonRepository{dbtx: dbtx}
}

// FindByIDForUpdate locks the lesson row for the rest of the transaction.
// Concurrent bookings of the same lesson queue here, so the capacity count
// and the insert that follows see a stable world.
func (r *LessonRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error) {
	const query = `
		SELECT id, name, day_of_week, start_time::text, end_time::text, capacity, is_active
		FROM lessons
		WHERE id = $1
		FOR UPDATE`

	var (
		lessonID  uuid.UUID
		name      string
		dayOfWeek int
		startTime string
		endTime   string
		capacity  int32
		isActive  bool
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&lessonID, &name, &dayOfWeek, &startTime, &endTime, &capacity, &isActive,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find lesson for update", err)
	}

	l, err := lesson.ReconstructLesson(lessonID, name, dayOfWeek, startTime, endTime, capacity, isActive)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid lesson row", err, infra.KindDBFailure)
	}
	return l, nil
}

func (r *LessonRepository) CountActiveBookings(ctx context.Context, lessonID uuid.UUID, lessonDate time.Time) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM bookings
		WHERE lesson_id = $1 AND lesson_date = $2 AND status <> 'cancelled'`

	var count int64
	if err := r.dbtx.QueryRow(ctx, query, lessonID, lessonDate).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err, infra.KindDBFailure)
	}
	return count, nil
}
