package repository

import (
	"context"

	"reserva-api/internal/domain/customer"
	"reserva-api/internal/infra"
	"reserva-api/internal/infra/sqlc"
	"reserva-api/internal/pkg/pgconv"
	"reserva-api/internal/usecase/shared"
)

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) (int64, error)
	FindCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Customers, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
}

func NewCustomerRepository(queries CustomerWriteQueries) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (int64, error) {
	params := sqlc.CreateCustomerParams{
		Name:  c.Name().Value(),
		Email: c.Email().Value(),
		Phone: c.Phone().Value(),
	}

	id, err := r.queries.CreateCustomer(ctx, tx, params)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create customer", err)
	}

	return id, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, tx sqlc.DBTX, email string) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.FindCustomerByEmail(ctx, tx, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by email", err)
	}

	return &shared.CustomerSnapshot{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Phone: row.Phone,
	}, nil
}
