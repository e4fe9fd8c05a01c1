package queries

import (
	"context"

	"reserva-api/internal/domain/reservation"
	"reserva-api/internal/pkg/errs"
)

var ErrQueryFailed = errs.New("query failed")

type ReservationReadStore interface {
	ListAll(ctx context.Context) ([]*ReservationView, error)
	CountConfirmedBySlot(ctx context.Context, date, timeOfDay string) (int64, error)
}

type TableReadStore interface {
	ListAll(ctx context.Context) ([]*TableView, error)
	CandidatesForSlot(ctx context.Context, date, timeOfDay string) ([]*TableView, error)
}

type ReservationQueries interface {
	List(ctx context.Context) ([]*ReservationView, error)
	// Availability reports slot capacity without mutating anything; the
	// answer is advisory and only the create path is authoritative.
	Availability(ctx context.Context, date, timeOfDay string, partySize *int32) (*AvailabilityView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	tables       TableReadStore
	allocator    *reservation.Allocator
}

func NewReservationQueries(
	reservations ReservationReadStore,
	tables TableReadStore,
	allocator *reservation.Allocator,
) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		tables:       tables,
		allocator:    allocator,
	}
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.reservations.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) Availability(ctx context.Context, date, timeOfDay string, partySize *int32) (*AvailabilityView, error) {
	view := &AvailabilityView{
		Policy: string(q.allocator.Policy()),
		Date:   date,
		Time:   timeOfDay,
	}

	switch q.allocator.Policy() {
	case reservation.PolicyExclusiveTable:
		candidates, err := q.tables.CandidatesForSlot(ctx, date, timeOfDay)
		if err != nil {
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		view.TableIDs = make([]int64, 0, len(candidates))
		for _, c := range candidates {
			if partySize != nil && c.Capacity < *partySize {
				continue
			}
			view.TableIDs = append(view.TableIDs, c.ID)
		}
		view.Available = len(view.TableIDs) > 0
	default:
		count, err := q.reservations.CountConfirmedBySlot(ctx, date, timeOfDay)
		if err != nil {
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		remaining := q.allocator.SlotCapacity() - count
		if remaining < 0 {
			remaining = 0
		}
		view.Remaining = &remaining
		view.Available = remaining > 0
	}

	return view, nil
}
