package readstore

import (
	"context"

	"reserva-api/internal/infra"
	"reserva-api/internal/infra/sqlc"
	"reserva-api/internal/pkg/pgconv"
	"reserva-api/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationByIDRow, error)
	ListReservations(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListReservationsRow, error)
	CountConfirmedBySlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CountConfirmedBySlotParams) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view := rowToReservationView(sqlc.ListReservationsRow(row))
	return &view, nil
}

func (r *ReservationReadStore) ListAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		view := rowToReservationView(row)
		result[i] = &view
	}

	return result, nil
}

func (r *ReservationReadStore) CountConfirmedBySlot(ctx context.Context, date, timeOfDay string) (int64, error) {
	params := sqlc.CountConfirmedBySlotParams{
		Date: date,
		Time: timeOfDay,
	}

	count, err := r.queries.CountConfirmedBySlot(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count confirmed reservations", err)
	}

	return count, nil
}

func rowToReservationView(row sqlc.ListReservationsRow) queries.ReservationView {
	return queries.ReservationView{
		ID:            row.ID,
		CustomerID:    row.CustomerID,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		CustomerPhone: row.CustomerPhone,
		Date:          row.Date,
		Time:          row.Time,
		PartySize:     pgconv.Int32PtrFromPgtype(row.PartySize),
		TableID:       pgconv.Int64PtrFromPgtype(row.TableID),
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
