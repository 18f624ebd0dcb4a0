//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/lesson"
	"gym-booking/internal/domain/membership"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/shared"
	sharedmock "gym-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Monday 2026-03-02; the target lesson occurrence is the following Monday.
var (
	testNow        = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	testLessonDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	uow             *sharedmock.MockUnitOfWork
	tx              *sharedmock.MockTx
	lessonRepo      *sharedmock.MockLessonRepository
	bookingRepo     *sharedmock.MockBookingRepository
	membershipRepo  *sharedmock.MockMembershipRepository
	qrTokenRepo     *sharedmock.MockQRTokenRepository
	reads           *sharedmock.MockCommandReads
	bookingCommands commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.lessonRepo = sharedmock.NewMockLessonRepository(s.ctrl)
	s.bookingRepo = sharedmock.NewMockBookingRepository(s.ctrl)
	s.membershipRepo = sharedmock.NewMockMembershipRepository(s.ctrl)
	s.qrTokenRepo = sharedmock.NewMockQRTokenRepository(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)

	s.tx.EXPECT().Lessons().Return(s.lessonRepo).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookingRepo).AnyTimes()
	s.tx.EXPECT().Memberships().Return(s.membershipRepo).AnyTimes()
	s.tx.EXPECT().QRTokens().Return(s.qrTokenRepo).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()

	s.bookingCommands = commands.NewBookingCommands(s.uow, clock.NewMockClock(testNow))
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) newLesson(capacity int32, isActive bool) *lesson.Lesson {
	l, err := lesson.ReconstructLesson(uuid.New(), "Yoga", 1, "09:00", "10:00", capacity, isActive)
	require.NoError(s.T(), err)
	return l
}

func (s *BookingCommandsTestSuite) newMembership(userID uuid.UUID, credits int32) *membership.Membership {
	return membership.ReconstructMembership(
		uuid.New(), userID, uuid.New(),
		membership.StatusActive, credits, 20,
		testNow.AddDate(0, -1, 0), testNow.AddDate(0, 1, 0),
	)
}

func notFound() error {
	return infra.WrapRepoErr("no rows", pgx.ErrNoRows)
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	userID := uuid.New()

	s.Run("success", func() {
		les := s.newLesson(10, true)
		mem := s.newMembership(userID, 5)

		s.lessonRepo.EXPECT().FindByIDForUpdate(gomock.Any(), les.ID()).Return(les, nil)
		s.lessonRepo.EXPECT().CountActiveBookings(gomock.Any(), les.ID(), gomock.Any()).Return(int64(3), nil)
		s.membershipRepo.EXPECT().ActiveByUserForUpdate(gomock.Any(), userID, testNow).Return(mem, nil)
		s.reads.EXPECT().ActiveBookingExists(gomock.Any(), userID, les.ID(), gomock.Any()).Return(false, nil)
		s.membershipRepo.EXPECT().DebitCredits(gomock.Any(), mem.ID(), int32(1)).Return(int32(4), nil)
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.qrTokenRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.bookingCommands.CreateBooking(context.Background(), userID, les.ID(), testLessonDate)
		s.Require().NoError(err)
		s.Equal(les.ID(), result.LessonID)
		s.Equal(testLessonDate, result.LessonDate)
		s.Equal(booking.StatusConfirmed, result.Status)
		s.Equal(int32(1), result.CreditsUsed)
		s.Equal(int32(4), result.RemainingCredits)
		s.Len(result.QRCode, 32)
	})

	s.Run("lesson not found", func() {
		lessonID := uuid.New()
		s.lessonRepo.EXPECT().FindByIDForUpdate(gomock.Any(), lessonID).Return(nil, notFound())

		_, err := s.bookingCommands.CreateBooking(context.Background(), userID, lessonID, testLessonDate)
		s.ErrorIs(err, commands.ErrLessonNotFound)
	})

	s.Run("inactive lesson maps to not found", func() {
		les := s.newLesson(10, false)
		s.lessonRepo.EXPECT().FindByIDForUpdate(gomock.Any(), les.ID()).Return(les, nil)

		_, err := s.bookingCommands.CreateBooking(context.Background(), userID, les.ID(), testLessonDate)
		s.ErrorIs(err, commands.ErrLessonNotFound)
	})

	s.Run("wrong day of week", func() {
		les := s.newLesson(10, true)
		wednesday := testLessonDate.AddDate(0, 0, 2)
		s.lessonRepo.EXPECT().FindByIDForUpdate(gomock.Any(), les.ID()).Return(les, nil)

		_, err := s.bookingCommands.CreateBooking(context.Background(), userID, les.ID(), wednesday)
		s.ErrorIs(err, commands.ErrWrongDayOfWeek)
	})

	s.Run("date not in future", func() {
		les := s.newLesson(10, true)
		s.lessonRepo.EXPECT().FindByIDForUpdate(gomock.Any(), les.ID()).Return(les, nil)

		_, err := s.bookingCommands.CreateBooking(context.Background(), userID, les.ID(), testNow)
		s.ErrorIs(err, commands.ErrDateNotInFuture)
	})

	s.Run("lesson full", func() {
		les := s.newLesson(2, true)
		s.lessonRepo.EXPECT().FindByIDForUpdate(gomock.Any(), les.ID()).Return(les, nil)
		s.lessonRepo.EXPECT().CountActiveBookings(gomock.Any(), les.ID(), gomock.Any()).Return(int64(2), nil)

		_, err := s.bookingCommands.CreateBooking(context.Background(), userID, les.ID(), testLessonDate)
		s.ErrorIs(err, commands.ErrLessonFull)
	})

	s.Run("no active membership", func() {
		les := s.newLesson(10, true)
		s.lessonRepo.EXPECT().FindByIDForUpdate(gomock.Any(), les.ID()).Return(les, nil)
		s.lessonRepo.EXPECT().CountActiveBookings(gomock.Any(), les.ID(), gomock.Any()).Return(int64(0), nil)
		s.membershipRepo.EXPECT().ActiveByUserForUpdate(gomock.Any(), userID, testNow).Return(nil, notFound())

		_, err := s.bookingCommands.CreateBooking(context.Background(), userID, les.ID(), testLessonDate)
		s.ErrorIs(err, commands.ErrNoActiveMembership)
	})

	s.Run("insufficient credits short-circuits before any write", func() {
		les := s.newLesson(10, true)
		mem := s.newMembership(userID, 0)
		s.lessonRepo.EXPECT().FindByIDForUpdate(gomock.Any(), les.ID()).Return(les, nil)
		s.lessonRepo.EXPECT().CountActiveBookings(gomock.Any(), les.ID(), gomock.Any()).Return(int64(0), nil)
		s.membershipRepo.EXPECT().ActiveByUserForUpdate(gomock.Any(), userID, testNow).Return(mem, nil)

		_, err := s.bookingCommands.CreateBooking(context.Background(), userID, les.ID(), testLessonDate)
		s.ErrorIs(err, commands.ErrInsufficientCredits)
	})

	s.Run("concurrent debit losing the guard maps to insufficient credits", func() {
		les := s.newLesson(10, true)
		mem := s.newMembership(userID, 1)
		s.lessonRepo.EXPECT().FindByIDForUpdate(gomock.Any(), les.ID()).Return(les, nil)
		s.lessonRepo.EXPECT().CountActiveBookings(gomock.Any(), les.ID(), gomock.Any()).Return(int64(0), nil)
		s.membershipRepo.EXPECT().ActiveByUserForUpdate(gomock.Any(), userID, testNow).Return(mem, nil)
		s.reads.EXPECT().ActiveBookingExists(gomock.Any(), userID, les.ID(), gomock.Any()).Return(false, nil)
		s.membershipRepo.EXPECT().DebitCredits(gomock.Any(), mem.ID(), int32(1)).
			Return(int32(0), infra.WrapRepoErr("insufficient credits", pgx.ErrNoRows, infra.KindConflict))

		_, err := s.bookingCommands.CreateBooking(context.Background(), userID, les.ID(), testLessonDate)
		s.ErrorIs(err, commands.ErrInsufficientCredits)
	})

	s.Run("duplicate booking detected before mutating state", func() {
		les := s.newLesson(10, true)
		mem := s.newMembership(userID, 5)
		s.lessonRepo.EXPECT().FindByIDForUpdate(gomock.Any(), les.ID()).Return(les, nil)
		s.lessonRepo.EXPECT().CountActiveBookings(gomock.Any(), les.ID(), gomock.Any()).Return(int64(0), nil)
		s.membershipRepo.EXPECT().ActiveByUserForUpdate(gomock.Any(), userID, testNow).Return(mem, nil)
		s.reads.EXPECT().ActiveBookingExists(gomock.Any(), userID, les.ID(), gomock.Any()).Return(true, nil)

		_, err := s.bookingCommands.CreateBooking(context.Background(), userID, les.ID(), testLessonDate)
		s.ErrorIs(err, commands.ErrDuplicateBooking)
	})

	s.Run("unique index violation on insert maps to duplicate", func() {
		les := s.newLesson(10, true)
		mem := s.newMembership(userID, 5)
		s.lessonRepo.EXPECT().FindByIDForUpdate(gomock.Any(), les.ID()).Return(les, nil)
		s.lessonRepo.EXPECT().CountActiveBookings(gomock.Any(), les.ID(), gomock.Any()).Return(int64(0), nil)
		s.membershipRepo.EXPECT().ActiveByUserForUpdate(gomock.Any(), userID, testNow).Return(mem, nil)
		s.reads.EXPECT().ActiveBookingExists(gomock.Any(), userID, les.ID(), gomock.Any()).Return(false, nil)
		s.membershipRepo.EXPECT().DebitCredits(gomock.Any(), mem.ID(), int32(1)).Return(int32(4), nil)
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

		_, err := s.bookingCommands.CreateBooking(context.Background(), userID, les.ID(), testLessonDate)
		s.ErrorIs(err, commands.ErrDuplicateBooking)
	})
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	userID := uuid.New()

	newConfirmed := func() *booking.Booking {
		return booking.NewBooking(userID, uuid.New(), testLessonDate)
	}

	s.Run("success refunds credits and expires the token", func() {
		b := newConfirmed()
		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)
		s.bookingRepo.EXPECT().MarkCancelled(gomock.Any(), b.ID(), testNow).Return(nil)
		s.qrTokenRepo.EXPECT().ExpireActiveByBookingID(gomock.Any(), b.ID()).Return(nil)
		s.membershipRepo.EXPECT().RefundCreditsToActive(gomock.Any(), userID, int32(1)).Return(int32(5), nil)

		s.NoError(s.bookingCommands.CancelBooking(context.Background(), b.ID(), userID))
	})

	s.Run("booking not found", func() {
		bookingID := uuid.New()
		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), bookingID).Return(nil, notFound())

		err := s.bookingCommands.CancelBooking(context.Background(), bookingID, userID)
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("another user's booking", func() {
		b := newConfirmed()
		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)

		err := s.bookingCommands.CancelBooking(context.Background(), b.ID(), uuid.New())
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("already cancelled", func() {
		b := newConfirmed()
		s.Require().NoError(b.Cancel(testNow))
		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)

		err := s.bookingCommands.CancelBooking(context.Background(), b.ID(), userID)
		s.ErrorIs(err, commands.ErrAlreadyCancelled)
	})

	s.Run("inside the 48h window", func() {
		lateDate := testNow.Add(24 * time.Hour)
		b := booking.NewBooking(userID, uuid.New(), lateDate)
		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)

		err := s.bookingCommands.CancelBooking(context.Background(), b.ID(), userID)
		s.ErrorIs(err, commands.ErrCancellationWindowClosed)
	})

	s.Run("missing refund target does not fail the cancellation", func() {
		b := newConfirmed()
		s.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)
		s.bookingRepo.EXPECT().MarkCancelled(gomock.Any(), b.ID(), testNow).Return(nil)
		s.qrTokenRepo.EXPECT().ExpireActiveByBookingID(gomock.Any(), b.ID()).Return(nil)
		s.membershipRepo.EXPECT().RefundCreditsToActive(gomock.Any(), userID, int32(1)).Return(int32(0), notFound())

		s.NoError(s.bookingCommands.CancelBooking(context.Background(), b.ID(), userID))
	})
}
