package reservation

import (
	"errors"
	"time"
)

var (
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
)

// Reservation entity. Date, time and the assigned table are immutable once
// confirmed; the only permitted transition is confirmed -> cancelled.
type Reservation struct {
	id         int64
	customerID int64
	slot       Slot
	partySize  *PartySize
	tableID    *int64
	status     Status
	createdAt  time.Time
}

func NewReservation(customerID int64, slot Slot, partySize *PartySize, alloc Allocation) *Reservation {
	return &Reservation{
		customerID: customerID,
		slot:       slot,
		partySize:  partySize,
		tableID:    alloc.TableID,
		status:     StatusConfirmed,
	}
}

func ReconstructReservation(
	id, customerID int64,
	slot Slot,
	partySize *PartySize,
	tableID *int64,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		customerID: customerID,
		slot:       slot,
		partySize:  partySize,
		tableID:    tableID,
		status:     status,
		createdAt:  createdAt,
	}
}

func (r *Reservation) ID() int64             { return r.id }
func (r *Reservation) CustomerID() int64     { return r.customerID }
func (r *Reservation) Slot() Slot            { return r.slot }
func (r *Reservation) PartySize() *PartySize { return r.partySize }
func (r *Reservation) TableID() *int64       { return r.tableID }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

// Cancel flips the status; the row is never removed from the ledger.
func (r *Reservation) Cancel() error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}
