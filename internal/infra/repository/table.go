package repository

import (
	"context"

	"reserva-api/internal/domain/reservation"
	"reserva-api/internal/infra"
	"reserva-api/internal/infra/sqlc"
	"reserva-api/internal/pkg/pgconv"
)

type TableWriteQueries interface {
	ListCandidateTables(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCandidateTablesParams) ([]sqlc.Tables, error)
	SetTableAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.SetTableAvailabilityParams) (int64, error)
	UpdateTableCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTableCapacityParams) (int64, error)
	CreateTable(ctx context.Context, db sqlc.DBTX, capacity int32) (int64, error)
}

type TableRepository struct {
	queries TableWriteQueries
}

func NewTableRepository(queries TableWriteQueries) *TableRepository {
	return &TableRepository{
		queries: queries,
	}
}

func (r *TableRepository) CandidatesForSlot(ctx context.Context, tx sqlc.DBTX, slot reservation.Slot) ([]reservation.TableState, error) {
	params := sqlc.ListCandidateTablesParams{
		Date: slot.Date(),
		Time: slot.Time(),
	}

	rows, err := r.queries.ListCandidateTables(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list candidate tables", err)
	}

	candidates := make([]reservation.TableState, len(rows))
	for i, row := range rows {
		candidates[i] = reservation.TableState{
			ID:       row.ID,
			Capacity: row.Capacity,
		}
	}

	return candidates, nil
}

func (r *TableRepository) SetAvailability(ctx context.Context, tx sqlc.DBTX, tableID int64, available bool) error {
	params := sqlc.SetTableAvailabilityParams{
		ID:        tableID,
		Available: available,
	}

	if _, err := r.queries.SetTableAvailability(ctx, tx, params); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to set table availability", err)
	}

	return nil
}

func (r *TableRepository) UpdateCapacity(ctx context.Context, tx sqlc.DBTX, tableID int64, capacity int32) (int64, error) {
	params := sqlc.UpdateTableCapacityParams{
		ID:       tableID,
		Capacity: capacity,
	}

	id, err := r.queries.UpdateTableCapacity(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to update table capacity", err)
	}

	return id, nil
}

func (r *TableRepository) Insert(ctx context.Context, tx sqlc.DBTX, capacity int32) (int64, error) {
	id, err := r.queries.CreateTable(ctx, tx, capacity)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create table", err)
	}

	return id, nil
}
