package api

import (
	"errors"
	"net/http"

	reqdto "gym-booking/internal/handler/dto/request"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	checkInCommands commands.CheckInCommands
}

func NewCheckInHandler(checkInCommands commands.CheckInCommands) *CheckInHandler {
	return &CheckInHandler{
		checkInCommands: checkInCommands,
	}
}

// @Summary Check in with QR code
// @Description Consume a booking's QR code at the door; staff only
// @Tags checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckInRequest true "Check-in request"
// @Success 200 {object} resdto.CheckInResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkin [post]
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkInCommands.CheckIn(c.Request.Context(), req.QRCode)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidQRCode):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invalid QR code",
			})
		case errors.Is(err, commands.ErrQRNotActive):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "QR code is no longer active",
			})
		case errors.Is(err, commands.ErrBookingNotConfirmed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking is not confirmed",
			})
		case errors.Is(err, commands.ErrWrongDay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "QR code is only valid on the lesson day",
			})
		case errors.Is(err, commands.ErrAlreadyCheckedIn):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Already checked in",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckInResult(result))
}
