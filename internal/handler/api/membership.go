package api

import (
	"net/http"

	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/handler/middleware"
	"gym-booking/internal/infra"
	"gym-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipQueries queries.MembershipQueries
}

func NewMembershipHandler(membershipQueries queries.MembershipQueries) *MembershipHandler {
	return &MembershipHandler{
		membershipQueries: membershipQueries,
	}
}

// @Summary Current membership
// @Description Get the current user's active membership and credit balance
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MembershipResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /memberships/me [get]
func (h *MembershipHandler) GetCurrentMembership(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.membershipQueries.CurrentByUser(c.Request.Context(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active membership",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMembershipView(view))
}
