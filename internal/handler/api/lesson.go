package api

import (
	"net/http"
	"time"

	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	lessonQueries queries.LessonQueries
}

func NewLessonHandler(lessonQueries queries.LessonQueries) *LessonHandler {
	return &LessonHandler{
		lessonQueries: lessonQueries,
	}
}

// @Summary List lessons for a date
// @Description List active lessons held on the given date with remaining spots
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.LessonAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /lessons [get]
func (h *LessonHandler) ListLessons(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.ParseInLocation(time.DateOnly, dateStr, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.lessonQueries.ListByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.LessonAvailabilityResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromLessonAvailabilityView(v)
	}

	c.JSON(http.StatusOK, response)
}
