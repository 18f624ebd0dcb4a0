package repository

import (
	"context"
	"time"

	"gym-booking/internal/infra"
	"gym-booking/internal/infra/db"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) shared.CommandReads {
	return &CommandReads{dbtx: dbtx}
}

// ActiveBookingExists is the duplicate pre-check; the partial unique index on
// bookings is the authoritative guard under concurrency.
func (r *CommandReads) ActiveBookingExists(ctx context.Context, userID, lessonID uuid.UUID, lessonDate time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND lesson_id = $2 AND lesson_date = $3 AND status <> 'cancelled'
		)`

	var exists bool
	if err := r.dbtx.QueryRow(ctx, query, userID, lessonID, lessonDate).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check duplicate booking", err, infra.KindDBFailure)
	}
	return exists, nil
}
