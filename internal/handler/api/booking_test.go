//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/user"
	"gym-booking/internal/handler/api"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"
	commandsmock "gym-booking/tests/mock/commands"
	queriesmock "gym-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleUser)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/stats", authMiddleware, s.handler.GetBookingStats)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	lessonID := uuid.New()
	lessonDate := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	reqBody := map[string]any{
		"lesson_id":   lessonID.String(),
		"lesson_date": "2026-03-09",
	}

	s.Run("created", func() {
		result := &commands.CreateBookingResult{
			BookingID:        uuid.New(),
			LessonID:         lessonID,
			LessonDate:       lessonDate,
			Status:           booking.StatusConfirmed,
			CreditsUsed:      1,
			QRCode:           "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345",
			RemainingCredits: 7,
		}
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), s.userID, lessonID, lessonDate).
			Return(result, nil)

		w := s.doJSON(http.MethodPost, "/bookings", reqBody)
		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), result.QRCode)
		s.Contains(w.Body.String(), "2026-03-09")
	})

	s.Run("unauthenticated", func() {
		var buf bytes.Buffer
		s.Require().NoError(json.NewEncoder(&buf).Encode(reqBody))
		req := httptest.NewRequest(http.MethodPost, "/bookings", &buf)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("malformed date", func() {
		w := s.doJSON(http.MethodPost, "/bookings", map[string]any{
			"lesson_id":   lessonID.String(),
			"lesson_date": "09-03-2026",
		})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing fields", func() {
		w := s.doJSON(http.MethodPost, "/bookings", map[string]any{})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	errCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"lesson not found", commands.ErrLessonNotFound, http.StatusNotFound},
		{"wrong day of week", commands.ErrWrongDayOfWeek, http.StatusBadRequest},
		{"date not in future", commands.ErrDateNotInFuture, http.StatusBadRequest},
		{"lesson full", commands.ErrLessonFull, http.StatusBadRequest},
		{"no active membership", commands.ErrNoActiveMembership, http.StatusBadRequest},
		{"insufficient credits", commands.ErrInsufficientCredits, http.StatusBadRequest},
		{"duplicate booking", commands.ErrDuplicateBooking, http.StatusConflict},
		{"storage failure", commands.ErrDatabaseOperationFailed, http.StatusInternalServerError},
	}
	for _, tc := range errCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().
				CreateBooking(gomock.Any(), s.userID, lessonID, lessonDate).
				Return(nil, tc.err)

			w := s.doJSON(http.MethodPost, "/bookings", reqBody)
			s.Equal(tc.expectCode, w.Code)
		})
	}
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("cancelled", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).Return(nil)

		w := s.doJSON(http.MethodDelete, url, nil)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("invalid id", func() {
		w := s.doJSON(http.MethodDelete, "/bookings/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	errCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"not found", commands.ErrBookingNotFound, http.StatusNotFound},
		{"another user's booking", commands.ErrForbidden, http.StatusForbidden},
		{"already cancelled", commands.ErrAlreadyCancelled, http.StatusBadRequest},
		{"window closed", commands.ErrCancellationWindowClosed, http.StatusBadRequest},
	}
	for _, tc := range errCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).Return(tc.err)

			w := s.doJSON(http.MethodDelete, url, nil)
			s.Equal(tc.expectCode, w.Code)
		})
	}
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("default pagination", func() {
		views := []*queries.BookingView{
			{ID: uuid.New(), LessonName: "Yoga", Status: "confirmed"},
			{ID: uuid.New(), LessonName: "Spin", Status: "cancelled"},
		}
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID, nil, 1, 20).
			Return(views, int64(2), nil)

		w := s.doJSON(http.MethodGet, "/bookings", nil)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Yoga")
		s.Contains(w.Body.String(), `"total":2`)
	})

	s.Run("status filter and explicit page", func() {
		confirmed := "confirmed"
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID, &confirmed, 2, 10).
			Return([]*queries.BookingView{}, int64(0), nil)

		w := s.doJSON(http.MethodGet, "/bookings?status=confirmed&page=2&limit=10", nil)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("invalid status", func() {
		w := s.doJSON(http.MethodGet, "/bookings?status=bogus", nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBookingStats() {
	stats := &queries.BookingStatsView{
		TotalBookings:     10,
		ConfirmedBookings: 4,
		CancelledBookings: 3,
		CompletedBookings: 3,
		AttendedLessons:   5,
	}
	s.mockQueries.EXPECT().StatsByUser(gomock.Any(), s.userID).Return(stats, nil)

	w := s.doJSON(http.MethodGet, "/bookings/stats", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"totalBookings":10`)
	s.Contains(w.Body.String(), `"attendedLessons":5`)
}
