package readstore

import (
	"context"

	"gym-booking/internal/infra"
	"gym-booking/internal/infra/db"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MembershipReadStore struct {
	dbtx db.DBTX
}

func NewMembershipReadStore(dbtx db.DBTX) queries.MembershipReadStore {
	return &MembershipReadStore{dbtx: dbtx}
}

func (s *MembershipReadStore) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*queries.MembershipView, error) {
	const query = `
		SELECT id, package_id, status, credits_remaining, credits_total, start_date, end_date
		FROM memberships
		WHERE user_id = $1 AND status = 'active' AND end_date >= CURRENT_DATE
		ORDER BY end_date DESC
		LIMIT 1`

	var v queries.MembershipView
	err := s.dbtx.QueryRow(ctx, query, userID).Scan(
		&v.ID, &v.PackageID, &v.Status, &v.CreditsRemaining, &v.CreditsTotal, &v.StartDate, &v.EndDate,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active membership", err)
	}
	return &v, nil
}
