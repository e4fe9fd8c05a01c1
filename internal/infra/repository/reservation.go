package repository

import (
	"context"

	"reserva-api/internal/domain/reservation"
	"reserva-api/internal/infra"
	"reserva-api/internal/infra/sqlc"
	"reserva-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	AcquireSlotLock(ctx context.Context, db sqlc.DBTX, key string) error
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error)
	CountConfirmedBySlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CountConfirmedBySlotParams) (int64, error)
	CancelReservation(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.CancelReservationRow, error)
	GetReservationStatus(ctx context.Context, db sqlc.DBTX, id int64) (string, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

func (r *ReservationRepository) LockSlot(ctx context.Context, tx sqlc.DBTX, slot reservation.Slot) error {
	if err := r.queries.AcquireSlotLock(ctx, tx, slot.Key()); err != nil {
		return infra.WrapRepoErr("failed to acquire slot lock", err)
	}
	return nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error) {
	var partySize pgtype.Int4
	if ps := res.PartySize(); ps != nil {
		partySize = pgtype.Int4{Int32: ps.Value(), Valid: true}
	}

	params := sqlc.CreateReservationParams{
		CustomerID: res.CustomerID(),
		Date:       res.Slot().Date(),
		Time:       res.Slot().Time(),
		PartySize:  partySize,
		TableID:    pgconv.Int64PtrToPgtype(res.TableID()),
		Status:     res.Status().String(),
	}

	id, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			// partial unique index on (table_id, date, time): the slot lock
			// was bypassed and another confirmed reservation holds the table
			return 0, infra.WrapRepoErr("table already booked for slot", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) CountConfirmedBySlot(ctx context.Context, tx sqlc.DBTX, slot reservation.Slot) (int64, error) {
	params := sqlc.CountConfirmedBySlotParams{
		Date: slot.Date(),
		Time: slot.Time(),
	}

	count, err := r.queries.CountConfirmedBySlot(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count confirmed reservations", err)
	}

	return count, nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, tx sqlc.DBTX, id int64) (*int64, error) {
	row, err := r.queries.CancelReservation(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no confirmed reservation to cancel", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to cancel reservation", err)
	}

	return pgconv.Int64PtrFromPgtype(row.TableID), nil
}

func (r *ReservationRepository) StatusByID(ctx context.Context, tx sqlc.DBTX, id int64) (reservation.Status, error) {
	status, err := r.queries.GetReservationStatus(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to get reservation status", err)
	}

	return reservation.Status(status), nil
}
