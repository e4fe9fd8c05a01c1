package commands

import (
	"context"

	"reserva-api/internal/domain/customer"
	"reserva-api/internal/infra"
	"reserva-api/internal/pkg/errs"
	"reserva-api/internal/usecase/shared"
)

var ErrDuplicateEmail = errs.New("email already registered")

type RegisterCustomerInput struct {
	Name  string
	Email string
	Phone string
}

type CustomerCommands interface {
	Register(ctx context.Context, input RegisterCustomerInput) (int64, error)
}

type customerCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCustomerCommands(uow shared.UnitOfWork) CustomerCommands {
	return &customerCommandsImpl{
		uow: uow,
	}
}

// Register creates a customer. The email pre-check and the unique
// constraint back each other up: the pre-check gives the common case a
// clean error, the constraint closes the race between two registrations
// of the same address.
func (c *customerCommandsImpl) Register(ctx context.Context, input RegisterCustomerInput) (int64, error) {
	name, err := customer.NewName(input.Name)
	if err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}
	email, err := customer.NewEmail(input.Email)
	if err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}
	phone, err := customer.NewPhone(input.Phone)
	if err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}

	cust := customer.NewCustomer(name, email, phone)

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Customers().FindByEmail(ctx, tx.DB(), email.Value())
		if err == nil {
			return ErrDuplicateEmail
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		id, err = tx.Customers().Create(ctx, tx.DB(), cust)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateEmail
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}
