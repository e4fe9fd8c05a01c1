package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"reserva-api/internal/domain/reservation"
	"reserva-api/internal/infra"
	"reserva-api/internal/infra/notify"
	"reserva-api/internal/pkg/clock"
	"reserva-api/internal/pkg/errs"
	"reserva-api/internal/usecase/shared"
)

var (
	ErrValidation              = errs.New("validation error")
	ErrCustomerNotFound        = errs.New("customer not found")
	ErrNoCapacity              = errs.New("no capacity for slot")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrAlreadyCancelled        = errs.New("reservation already cancelled")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationInput struct {
	Email     string
	Date      string
	Time      string
	PartySize *int32
}

type CreateReservationResult struct {
	ID      int64
	TableID *int64
}

type ReservationCommands interface {
	Create(ctx context.Context, input CreateReservationInput) (*CreateReservationResult, error)
	Cancel(ctx context.Context, id int64) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	allocator *reservation.Allocator
	publisher notify.Publisher
	clock     clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	allocator *reservation.Allocator,
	publisher notify.Publisher,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		allocator: allocator,
		publisher: publisher,
		clock:     clock,
	}
}

// Create runs the whole check-then-write sequence inside one transaction
// serialized on the slot key: no capacity check survives past the commit
// of a competing writer for the same (date, time) pair.
func (r *reservationCommandsImpl) Create(ctx context.Context, input CreateReservationInput) (*CreateReservationResult, error) {
	slot, err := reservation.NewSlot(input.Date, input.Time)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var partySize *reservation.PartySize
	if input.PartySize != nil {
		ps, err := reservation.NewPartySize(*input.PartySize)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
		partySize = &ps
	}

	var result CreateReservationResult

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().LockSlot(ctx, tx.DB(), slot); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		cust, err := tx.Customers().FindByEmail(ctx, tx.DB(), input.Email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		snap, err := r.readSlotSnapshot(ctx, tx, slot)
		if err != nil {
			return err
		}

		alloc, err := r.allocator.Resolve(snap, partySize)
		if err != nil {
			return errs.Mark(err, ErrNoCapacity)
		}

		res := reservation.NewReservation(cust.ID, slot, partySize, alloc)

		id, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrNoCapacity
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if alloc.TableID != nil {
			if err := tx.Tables().SetAvailability(ctx, tx.DB(), *alloc.TableID, false); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		payload, err := confirmationPayload(id, alloc.TableID, slot)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), "email", "reservation_confirmed", payload, r.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = CreateReservationResult{ID: id, TableID: alloc.TableID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.publishConfirmation(ctx, result, slot)

	return &result, nil
}

// Cancel flips the status to cancelled and releases the assigned table,
// if any, in the same transaction.
func (r *reservationCommandsImpl) Cancel(ctx context.Context, id int64) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tableID, err := tx.Reservations().Cancel(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return r.classifyCancelMiss(ctx, tx, id)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if tableID != nil {
			if err := tx.Tables().SetAvailability(ctx, tx.DB(), *tableID, true); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		return nil
	})
}

// classifyCancelMiss distinguishes an unknown id from a reservation that
// was already cancelled.
func (r *reservationCommandsImpl) classifyCancelMiss(ctx context.Context, tx shared.Tx, id int64) error {
	status, err := tx.Reservations().StatusByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if status == reservation.StatusCancelled {
		return ErrAlreadyCancelled
	}
	return ErrReservationNotFound
}

func (r *reservationCommandsImpl) readSlotSnapshot(ctx context.Context, tx shared.Tx, slot reservation.Slot) (reservation.SlotSnapshot, error) {
	switch r.allocator.Policy() {
	case reservation.PolicyExclusiveTable:
		candidates, err := tx.Tables().CandidatesForSlot(ctx, tx.DB(), slot)
		if err != nil {
			return reservation.SlotSnapshot{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return reservation.SlotSnapshot{Candidates: candidates}, nil
	default:
		count, err := tx.Reservations().CountConfirmedBySlot(ctx, tx.DB(), slot)
		if err != nil {
			return reservation.SlotSnapshot{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return reservation.SlotSnapshot{ConfirmedCount: count}, nil
	}
}

// publishConfirmation runs after commit; a failed publish never fails the
// reservation (the outbox row already records the event).
func (r *reservationCommandsImpl) publishConfirmation(ctx context.Context, result CreateReservationResult, slot reservation.Slot) {
	payload, err := confirmationPayload(result.ID, result.TableID, slot)
	if err != nil {
		slog.Warn("failed to encode confirmation event", "reservation_id", result.ID, "error", err)
		return
	}
	if err := r.publisher.Publish(ctx, "reservation_confirmed", payload); err != nil {
		slog.Warn("failed to publish confirmation event", "reservation_id", result.ID, "error", err)
	}
}

func confirmationPayload(id int64, tableID *int64, slot reservation.Slot) ([]byte, error) {
	body := map[string]any{
		"reservation_id": id,
		"date":           slot.Date(),
		"time":           slot.Time(),
		"type":           "reservation_confirmed",
	}
	if tableID != nil {
		body["table_id"] = *tableID
	}
	return json.Marshal(body)
}
