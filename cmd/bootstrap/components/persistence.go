package components

import (
	"ovenbook/internal/infra/db"
	"ovenbook/internal/infra/readstore"
	"ovenbook/internal/infra/uow"
	"ovenbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork (constructor already returns the port type)
		uow.NewPostgresUoW,
		// Read stores
		fx.Annotate(
			readstore.NewOvenReadStore,
			fx.As(new(queries.OvenReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
