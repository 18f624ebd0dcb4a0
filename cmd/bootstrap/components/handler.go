package components

import (
	"gym-booking/internal/handler"
	"gym-booking/internal/handler/api"
	"gym-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCheckInHandler,
		api.NewLessonHandler,
		api.NewMembershipHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	checkIn *api.CheckInHandler,
	lesson *api.LessonHandler,
	membership *api.MembershipHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Booking:    booking,
		CheckIn:    checkIn,
		Lesson:     lesson,
		Membership: membership,
	}
}
