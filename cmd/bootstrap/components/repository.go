package components

import (
	"reserva-api/internal/infra/readstore"
	"reserva-api/internal/infra/sqlc"
	"reserva-api/internal/infra/uow"
	"reserva-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		// Write side goes through the unit of work; transactional
		// repositories are built per transaction inside it.
		uow.NewPostgresUoW,
		// Read-side stores for queries
		NewReservationReadStore,
		NewTableReadStore,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewReservationReadStore(q *sqlc.Queries, db sqlc.DBTX) queries.ReservationReadStore {
	return readstore.NewReservationReadStore(q, db)
}

func NewTableReadStore(q *sqlc.Queries, db sqlc.DBTX) queries.TableReadStore {
	return readstore.NewTableReadStore(q, db)
}
