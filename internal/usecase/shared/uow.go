package shared

import (
	"context"
	"time"

	"reserva-api/internal/domain/customer"
	"reserva-api/internal/domain/reservation"
	"reserva-api/internal/infra/sqlc"
)

// UnitOfWork brackets the read-check-then-write sequence of a reservation
// request. Within serializes per slot via the repositories' LockSlot and
// retries transient transaction failures.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Customers() CustomerRepository
	Tables() TableRepository
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	DB() sqlc.DBTX
}

// Minimal snapshot of a customer for command validation
type CustomerSnapshot struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

type CustomerRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (int64, error)
	FindByEmail(ctx context.Context, tx sqlc.DBTX, email string) (*CustomerSnapshot, error)
}

type TableRepository interface {
	// CandidatesForSlot returns the free tables for the slot, ascending by id.
	CandidatesForSlot(ctx context.Context, tx sqlc.DBTX, slot reservation.Slot) ([]reservation.TableState, error)
	SetAvailability(ctx context.Context, tx sqlc.DBTX, tableID int64, available bool) error
	UpdateCapacity(ctx context.Context, tx sqlc.DBTX, tableID int64, capacity int32) (int64, error)
	Insert(ctx context.Context, tx sqlc.DBTX, capacity int32) (int64, error)
}

type ReservationRepository interface {
	// LockSlot serializes all writers for the reservation's (date, time) pair.
	LockSlot(ctx context.Context, tx sqlc.DBTX, slot reservation.Slot) error
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error)
	CountConfirmedBySlot(ctx context.Context, tx sqlc.DBTX, slot reservation.Slot) (int64, error)
	// Cancel flips confirmed -> cancelled and reports the released table id,
	// if any. KindNotFound when no confirmed row matched.
	Cancel(ctx context.Context, tx sqlc.DBTX, id int64) (*int64, error)
	StatusByID(ctx context.Context, tx sqlc.DBTX, id int64) (reservation.Status, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
