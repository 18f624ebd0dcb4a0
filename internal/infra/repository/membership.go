package repository

import (
	"context"
	"time"

	"gym-booking/internal/domain/membership"
	"gym-booking/internal/infra"
	"gym-booking/internal/infra/db"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type MembershipRepository struct {
	dbtx db.DBTX
}

func NewMembershipRepository(dbtx db.DBTX) shared.MembershipRepository {
	return &MembershipRepository{dbtx: dbtx}
}

// ActiveByUserForUpdate picks the latest-expiring active membership. The row
// lock keeps its balance stable until the debit in the same transaction.
func (r *MembershipRepository) ActiveByUserForUpdate(ctx context.Context, userID uuid.UUID, now time.Time) (*membership.Membership, error) {
	const query = `
		SELECT id, user_id, package_id, status, credits_remaining, credits_total, start_date, end_date
		FROM memberships
		WHERE user_id = $1 AND status = 'active' AND end_date >= $2::date
		ORDER BY end_date DESC
		LIMIT 1
		FOR UPDATE`

	var (
		id               uuid.UUID
		memberUserID     uuid.UUID
		packageID        uuid.UUID
		status           string
		creditsRemaining int32
		creditsTotal     int32
		startDate        time.Time
		endDate          time.Time
	)
	err := r.dbtx.QueryRow(ctx, query, userID, now).Scan(
		&id, &memberUserID, &packageID, &status, &creditsRemaining, &creditsTotal, &startDate, &endDate,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active membership", err)
	}

	return membership.ReconstructMembership(
		id, memberUserID, packageID,
		membership.Status(status),
		creditsRemaining, creditsTotal,
		startDate, endDate,
	), nil
}

// DebitCredits is the only write that spends credits. The balance guard in
// the WHERE clause makes concurrent overdrafts impossible: the losing
// transaction matches zero rows and surfaces KindConflict.
func (r *MembershipRepository) DebitCredits(ctx context.Context, membershipID uuid.UUID, amount int32) (int32, error) {
	const query = `
		UPDATE memberships
		SET credits_remaining = credits_remaining - $2, updated_at = now()
		WHERE id = $1 AND credits_remaining >= $2
		RETURNING credits_remaining`

	var remaining int32
	err := r.dbtx.QueryRow(ctx, query, membershipID, amount).Scan(&remaining)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr("insufficient credits", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to debit credits", err)
	}
	return remaining, nil
}

// RefundCreditsToActive returns credits to whichever membership is currently
// active for the user, not necessarily the one the booking debited.
func (r *MembershipRepository) RefundCreditsToActive(ctx context.Context, userID uuid.UUID, amount int32) (int32, error) {
	const query = `
		UPDATE memberships
		SET credits_remaining = credits_remaining + $2, updated_at = now()
		WHERE id = (
			SELECT id FROM memberships
			WHERE user_id = $1 AND status = 'active' AND end_date >= CURRENT_DATE
			ORDER BY end_date DESC
			LIMIT 1
		)
		RETURNING credits_remaining`

	var remaining int32
	err := r.dbtx.QueryRow(ctx, query, userID, amount).Scan(&remaining)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr("no active membership to refund", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to refund credits", err)
	}
	return remaining, nil
}
