package components

import (
	"gym-booking/internal/infra/db"
	"gym-booking/internal/infra/readstore"
	"gym-booking/internal/infra/uow"
	"gym-booking/internal/usecase"
	"gym-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side goes through the unit of work; per-transaction
		// repositories are constructed inside it.
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewLessonReadStore,
			fx.As(new(queries.LessonReadStore)),
		),
		fx.Annotate(
			readstore.NewMembershipReadStore,
			fx.As(new(queries.MembershipReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
