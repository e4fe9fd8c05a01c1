//go:build unit

package queries_test

import (
	"context"
	"testing"

	"reserva-api/internal/domain/reservation"
	"reserva-api/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationReadStore struct {
	mock.Mock
}

func (m *MockReservationReadStore) ListAll(ctx context.Context) ([]*queries.ReservationView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.ReservationView), args.Error(1)
}

func (m *MockReservationReadStore) CountConfirmedBySlot(ctx context.Context, date, timeOfDay string) (int64, error) {
	args := m.Called(ctx, date, timeOfDay)
	return args.Get(0).(int64), args.Error(1)
}

type MockTableReadStore struct {
	mock.Mock
}

func (m *MockTableReadStore) ListAll(ctx context.Context) ([]*queries.TableView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.TableView), args.Error(1)
}

func (m *MockTableReadStore) CandidatesForSlot(ctx context.Context, date, timeOfDay string) ([]*queries.TableView, error) {
	args := m.Called(ctx, date, timeOfDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.TableView), args.Error(1)
}

func newQueries(t *testing.T, policy reservation.Policy, slotCapacity int, reservations *MockReservationReadStore, tables *MockTableReadStore) queries.ReservationQueries {
	t.Helper()
	allocator, err := reservation.NewAllocator(policy, slotCapacity)
	require.NoError(t, err)
	return queries.NewReservationQueries(reservations, tables, allocator)
}

func int32Ptr(v int32) *int32 { return &v }

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all rows", func(t *testing.T) {
		reservations := new(MockReservationReadStore)
		tables := new(MockTableReadStore)
		views := []*queries.ReservationView{
			{ID: 1, CustomerName: "Ana", Date: "2026-09-15", Time: "20:00", Status: "confirmed"},
			{ID: 2, CustomerName: "Luis", Date: "2026-09-15", Time: "21:00", Status: "cancelled"},
		}
		reservations.On("ListAll", mock.Anything).Return(views, nil)

		q := newQueries(t, reservation.PolicyExclusiveTable, 0, reservations, tables)
		got, err := q.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("store failure", func(t *testing.T) {
		reservations := new(MockReservationReadStore)
		tables := new(MockTableReadStore)
		reservations.On("ListAll", mock.Anything).Return(nil, assert.AnError)

		q := newQueries(t, reservation.PolicyExclusiveTable, 0, reservations, tables)
		_, err := q.List(ctx)
		assert.ErrorIs(t, err, queries.ErrQueryFailed)
	})
}

func TestAvailabilityExclusive(t *testing.T) {
	ctx := context.Background()

	candidates := []*queries.TableView{
		{ID: 1, Capacity: 2, Available: true},
		{ID: 2, Capacity: 6, Available: true},
	}

	t.Run("lists free tables", func(t *testing.T) {
		reservations := new(MockReservationReadStore)
		tables := new(MockTableReadStore)
		tables.On("CandidatesForSlot", mock.Anything, "2026-09-15", "20:00").Return(candidates, nil)

		q := newQueries(t, reservation.PolicyExclusiveTable, 0, reservations, tables)
		view, err := q.Availability(ctx, "2026-09-15", "20:00", nil)
		require.NoError(t, err)

		assert.Equal(t, "exclusive", view.Policy)
		assert.True(t, view.Available)
		assert.Equal(t, []int64{1, 2}, view.TableIDs)
		assert.Nil(t, view.Remaining)
	})

	t.Run("party size filters undersized tables", func(t *testing.T) {
		reservations := new(MockReservationReadStore)
		tables := new(MockTableReadStore)
		tables.On("CandidatesForSlot", mock.Anything, "2026-09-15", "20:00").Return(candidates, nil)

		q := newQueries(t, reservation.PolicyExclusiveTable, 0, reservations, tables)
		view, err := q.Availability(ctx, "2026-09-15", "20:00", int32Ptr(4))
		require.NoError(t, err)

		assert.Equal(t, []int64{2}, view.TableIDs)
		assert.True(t, view.Available)
	})

	t.Run("fully booked slot", func(t *testing.T) {
		reservations := new(MockReservationReadStore)
		tables := new(MockTableReadStore)
		tables.On("CandidatesForSlot", mock.Anything, "2026-09-15", "20:00").Return([]*queries.TableView{}, nil)

		q := newQueries(t, reservation.PolicyExclusiveTable, 0, reservations, tables)
		view, err := q.Availability(ctx, "2026-09-15", "20:00", nil)
		require.NoError(t, err)

		assert.False(t, view.Available)
		assert.Empty(t, view.TableIDs)
	})
}

func TestAvailabilityCapacity(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		confirmed     int64
		wantRemaining int64
		wantAvailable bool
	}{
		{name: "empty slot", confirmed: 0, wantRemaining: 10, wantAvailable: true},
		{name: "partially booked", confirmed: 7, wantRemaining: 3, wantAvailable: true},
		{name: "full", confirmed: 10, wantRemaining: 0, wantAvailable: false},
		{name: "oversubscribed count floors at zero", confirmed: 12, wantRemaining: 0, wantAvailable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservations := new(MockReservationReadStore)
			tables := new(MockTableReadStore)
			reservations.On("CountConfirmedBySlot", mock.Anything, "2026-09-15", "20:00").Return(tt.confirmed, nil)

			q := newQueries(t, reservation.PolicyCapacityCount, 10, reservations, tables)
			view, err := q.Availability(ctx, "2026-09-15", "20:00", nil)
			require.NoError(t, err)

			assert.Equal(t, "capacity", view.Policy)
			require.NotNil(t, view.Remaining)
			assert.Equal(t, tt.wantRemaining, *view.Remaining)
			assert.Equal(t, tt.wantAvailable, view.Available)
			assert.Nil(t, view.TableIDs)
		})
	}
}
