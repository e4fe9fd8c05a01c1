package commands

import (
	"context"

	"reserva-api/internal/domain/table"
	"reserva-api/internal/infra"
	"reserva-api/internal/pkg/errs"
	"reserva-api/internal/usecase/shared"
)

var ErrTableNotFound = errs.New("table not found")

type ReconfigureTableInput struct {
	TableID  *int64
	Capacity int32
}

type TableCommands interface {
	// Reconfigure updates the capacity of an existing table when an id is
	// given, or inserts a new table otherwise. A missing explicit id is an
	// error; no substitute target is ever picked.
	Reconfigure(ctx context.Context, input ReconfigureTableInput) (int64, error)
}

type tableCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewTableCommands(uow shared.UnitOfWork) TableCommands {
	return &tableCommandsImpl{
		uow: uow,
	}
}

func (t *tableCommandsImpl) Reconfigure(ctx context.Context, input ReconfigureTableInput) (int64, error) {
	if _, err := table.NewTable(input.Capacity); err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}

	var id int64
	err := t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if input.TableID != nil {
			id, err = tx.Tables().UpdateCapacity(ctx, tx.DB(), *input.TableID, input.Capacity)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrTableNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			return nil
		}

		id, err = tx.Tables().Insert(ctx, tx.DB(), input.Capacity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}
