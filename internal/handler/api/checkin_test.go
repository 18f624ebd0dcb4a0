//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/handler/api"
	"gym-booking/internal/usecase/commands"
	commandsmock "gym-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckInHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckInCommands
	handler      *api.CheckInHandler
}

func (s *CheckInHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckInCommands(s.mockCtrl)
	s.handler = api.NewCheckInHandler(s.mockCommands)

	// Trainer-or-admin gate, as wired in the router
	staffMiddleware := func(c *gin.Context) {
		role := c.GetHeader("X-Test-Role")
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if role != string(user.RoleTrainer) && role != string(user.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	s.router.POST("/checkin", staffMiddleware, s.handler.CheckIn)
}

func (s *CheckInHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckInHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckInHandlerTestSuite))
}

func (s *CheckInHandlerTestSuite) post(role string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/checkin", &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

const validCode = "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345"

func (s *CheckInHandlerTestSuite) TestCheckIn() {
	reqBody := map[string]any{"qr_code": validCode}

	s.Run("trainer checks a member in", func() {
		result := &commands.CheckInResult{
			LessonName:  "Yoga",
			StartTime:   "09:00",
			EndTime:     "10:00",
			CheckInTime: time.Date(2026, 3, 9, 9, 30, 0, 0, time.UTC),
		}
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), validCode).Return(result, nil)

		w := s.post("trainer", reqBody)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Yoga")
	})

	s.Run("member role is rejected", func() {
		w := s.post("user", reqBody)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("unauthenticated", func() {
		w := s.post("", reqBody)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("code with wrong length", func() {
		w := s.post("trainer", map[string]any{"qr_code": "SHORT"})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	errCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"unknown code", commands.ErrInvalidQRCode, http.StatusNotFound},
		{"inactive token", commands.ErrQRNotActive, http.StatusBadRequest},
		{"unconfirmed booking", commands.ErrBookingNotConfirmed, http.StatusBadRequest},
		{"wrong day", commands.ErrWrongDay, http.StatusBadRequest},
		{"already checked in", commands.ErrAlreadyCheckedIn, http.StatusBadRequest},
	}
	for _, tc := range errCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().CheckIn(gomock.Any(), validCode).Return(nil, tc.err)

			w := s.post("admin", reqBody)
			s.Equal(tc.expectCode, w.Code)
		})
	}
}
