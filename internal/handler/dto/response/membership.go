package response

import (
	"time"

	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MembershipResponse struct {
	ID               uuid.UUID `json:"id"`
	PackageID        uuid.UUID `json:"packageId"`
	Status           string    `json:"status"`
	CreditsRemaining int32     `json:"creditsRemaining"`
	CreditsTotal     int32     `json:"creditsTotal"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
}

func FromMembershipView(v *queries.MembershipView) *MembershipResponse {
	return &MembershipResponse{
		ID:               v.ID,
		PackageID:        v.PackageID,
		Status:           v.Status,
		CreditsRemaining: v.CreditsRemaining,
		CreditsTotal:     v.CreditsTotal,
		StartDate:        v.StartDate.Format(time.DateOnly),
		EndDate:          v.EndDate.Format(time.DateOnly),
	}
}
