package queries

import (
	"context"

	"reserva-api/internal/pkg/errs"
)

type TableQueries interface {
	List(ctx context.Context) ([]*TableView, error)
}

type tableQueriesImpl struct {
	tables TableReadStore
}

func NewTableQueries(tables TableReadStore) TableQueries {
	return &tableQueriesImpl{
		tables: tables,
	}
}

func (q *tableQueriesImpl) List(ctx context.Context) ([]*TableView, error) {
	views, err := q.tables.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
