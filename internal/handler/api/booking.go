package api

import (
	"errors"
	"net/http"

	reqdto "gym-booking/internal/handler/dto/request"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/handler/middleware"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a spot in a lesson occurrence, spending one credit
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	lessonDate, err := req.ParseLessonDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lesson date format",
		})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), userID, req.LessonID, lessonDate)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLessonNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lesson not found or not available",
			})
		case errors.Is(err, commands.ErrWrongDayOfWeek):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Lesson is not held on that day of the week",
			})
		case errors.Is(err, commands.ErrDateNotInFuture):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Lesson date must be in the future",
			})
		case errors.Is(err, commands.ErrLessonFull):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Lesson is fully booked",
			})
		case errors.Is(err, commands.ErrNoActiveMembership):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No active membership",
			})
		case errors.Is(err, commands.ErrInsufficientCredits):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Insufficient credits",
			})
		case errors.Is(err, commands.ErrDuplicateBooking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Already booked for this lesson",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Cancel booking
// @Description Cancel a booking at least 48 hours before the lesson date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), bookingID, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
			})
		case errors.Is(err, commands.ErrAlreadyCancelled):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking is already cancelled",
			})
		case errors.Is(err, commands.ErrCancellationWindowClosed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Bookings can only be cancelled at least 48 hours before the lesson",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled",
	})
}

// @Summary List bookings
// @Description List the current user's bookings, optionally filtered by status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, total, err := h.bookingQueries.ListByUser(c.Request.Context(), userID, req.Status, req.Page, req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookings := make([]*resdto.BookingResponse, len(views))
	for i, v := range views {
		bookings[i] = resdto.FromBookingView(v)
	}

	c.JSON(http.StatusOK, resdto.BookingListResponse{
		Bookings: bookings,
		Total:    total,
		Page:     req.Page,
		Limit:    req.Limit,
	})
}

// @Summary Booking statistics
// @Description Aggregate booking counts for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingStatsResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/stats [get]
func (h *BookingHandler) GetBookingStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	stats, err := h.bookingQueries.StatsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingStatsView(stats))
}
