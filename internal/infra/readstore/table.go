package readstore

import (
	"context"

	"reserva-api/internal/infra"
	"reserva-api/internal/infra/sqlc"
	"reserva-api/internal/usecase/queries"
)

type TableViewQueries interface {
	ListTables(ctx context.Context, db sqlc.DBTX) ([]sqlc.Tables, error)
	ListCandidateTables(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCandidateTablesParams) ([]sqlc.Tables, error)
}

type TableReadStore struct {
	queries TableViewQueries
	db      sqlc.DBTX
}

func NewTableReadStore(queries TableViewQueries, db sqlc.DBTX) *TableReadStore {
	return &TableReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TableReadStore) ListAll(ctx context.Context) ([]*queries.TableView, error) {
	rows, err := r.queries.ListTables(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}

	result := make([]*queries.TableView, len(rows))
	for i, row := range rows {
		result[i] = &queries.TableView{
			ID:        row.ID,
			Capacity:  row.Capacity,
			Available: row.Available,
		}
	}

	return result, nil
}

func (r *TableReadStore) CandidatesForSlot(ctx context.Context, date, timeOfDay string) ([]*queries.TableView, error) {
	params := sqlc.ListCandidateTablesParams{
		Date: date,
		Time: timeOfDay,
	}

	rows, err := r.queries.ListCandidateTables(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list candidate tables", err)
	}

	result := make([]*queries.TableView, len(rows))
	for i, row := range rows {
		result[i] = &queries.TableView{
			ID:        row.ID,
			Capacity:  row.Capacity,
			Available: row.Available,
		}
	}

	return result, nil
}
