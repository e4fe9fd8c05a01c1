//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"reserva-api/internal/domain/reservation"
	"reserva-api/internal/pkg/clock"
	"reserva-api/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationCommands(t *testing.T, store *fakeStore, policy reservation.Policy, slotCapacity int) (commands.ReservationCommands, *recordingPublisher) {
	t.Helper()
	allocator, err := reservation.NewAllocator(policy, slotCapacity)
	require.NoError(t, err)
	publisher := &recordingPublisher{}
	mockClock := clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	return commands.NewReservationCommands(newFakeUoW(store), allocator, publisher, mockClock), publisher
}

func int32Ptr(v int32) *int32 { return &v }

func TestCreateReservationExclusive(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns the lowest free table", func(t *testing.T) {
		store := newFakeStore()
		store.seedTables(3, 4)
		store.seedCustomer("Ana", "ana@example.com", "600123456")
		cmds, publisher := newReservationCommands(t, store, reservation.PolicyExclusiveTable, 0)

		result, err := cmds.Create(ctx, commands.CreateReservationInput{
			Email: "ana@example.com",
			Date:  "2026-09-15",
			Time:  "20:00",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.ID)
		require.NotNil(t, result.TableID)
		assert.Equal(t, int64(1), *result.TableID)

		assert.False(t, store.tables[0].available, "assigned table is consumed")
		require.Len(t, store.jobs, 1)
		assert.Equal(t, "reservation_confirmed", store.jobs[0].topic)
		assert.Equal(t, []string{"reservation_confirmed"}, publisher.published())
	})

	t.Run("three tables serve three reservations and no more", func(t *testing.T) {
		store := newFakeStore()
		store.seedTables(3, 4)
		store.seedCustomer("Ana", "ana@example.com", "600123456")
		cmds, _ := newReservationCommands(t, store, reservation.PolicyExclusiveTable, 0)

		input := commands.CreateReservationInput{Email: "ana@example.com", Date: "2026-09-15", Time: "20:00"}
		var assigned []int64
		for i := 0; i < 3; i++ {
			result, err := cmds.Create(ctx, input)
			require.NoError(t, err)
			require.NotNil(t, result.TableID)
			assigned = append(assigned, *result.TableID)
		}
		assert.Equal(t, []int64{1, 2, 3}, assigned)

		_, err := cmds.Create(ctx, input)
		assert.ErrorIs(t, err, commands.ErrNoCapacity)

		result, err := cmds.Create(ctx, commands.CreateReservationInput{
			Email: "ana@example.com", Date: "2026-09-15", Time: "22:00",
		})
		require.NoError(t, err, "a different slot is unaffected")
		assert.NotNil(t, result.TableID)
	})

	t.Run("party size selects a fitting table", func(t *testing.T) {
		store := newFakeStore()
		store.tables = []tableRow{
			{id: 1, capacity: 2, available: true},
			{id: 2, capacity: 6, available: true},
		}
		store.nextTableID = 3
		store.seedCustomer("Ana", "ana@example.com", "600123456")
		cmds, _ := newReservationCommands(t, store, reservation.PolicyExclusiveTable, 0)

		result, err := cmds.Create(ctx, commands.CreateReservationInput{
			Email:     "ana@example.com",
			Date:      "2026-09-15",
			Time:      "20:00",
			PartySize: int32Ptr(5),
		})
		require.NoError(t, err)
		require.NotNil(t, result.TableID)
		assert.Equal(t, int64(2), *result.TableID)

		_, err = cmds.Create(ctx, commands.CreateReservationInput{
			Email:     "ana@example.com",
			Date:      "2026-09-15",
			Time:      "21:00",
			PartySize: int32Ptr(7),
		})
		assert.ErrorIs(t, err, commands.ErrNoCapacity, "no table fits a party of 7")
	})

	t.Run("unknown customer", func(t *testing.T) {
		store := newFakeStore()
		store.seedTables(3, 4)
		cmds, publisher := newReservationCommands(t, store, reservation.PolicyExclusiveTable, 0)

		_, err := cmds.Create(ctx, commands.CreateReservationInput{
			Email: "nadie@example.com",
			Date:  "2026-09-15",
			Time:  "20:00",
		})
		assert.ErrorIs(t, err, commands.ErrCustomerNotFound)
		assert.Empty(t, store.reservations)
		assert.Empty(t, publisher.published(), "nothing is published on failure")
	})

	t.Run("validation failures", func(t *testing.T) {
		store := newFakeStore()
		store.seedTables(3, 4)
		store.seedCustomer("Ana", "ana@example.com", "600123456")
		cmds, _ := newReservationCommands(t, store, reservation.PolicyExclusiveTable, 0)

		tests := []struct {
			name  string
			input commands.CreateReservationInput
		}{
			{
				name:  "empty date",
				input: commands.CreateReservationInput{Email: "ana@example.com", Date: "", Time: "20:00"},
			},
			{
				name:  "empty time",
				input: commands.CreateReservationInput{Email: "ana@example.com", Date: "2026-09-15", Time: "  "},
			},
			{
				name:  "zero party size",
				input: commands.CreateReservationInput{Email: "ana@example.com", Date: "2026-09-15", Time: "20:00", PartySize: int32Ptr(0)},
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := cmds.Create(ctx, tt.input)
				assert.ErrorIs(t, err, commands.ErrValidation)
			})
		}
	})
}

func TestCreateReservationCapacityPolicy(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()
	store.seedCustomer("Ana", "ana@example.com", "600123456")
	cmds, _ := newReservationCommands(t, store, reservation.PolicyCapacityCount, 2)

	input := commands.CreateReservationInput{Email: "ana@example.com", Date: "2026-09-15", Time: "20:00"}

	for i := 0; i < 2; i++ {
		result, err := cmds.Create(ctx, input)
		require.NoError(t, err)
		assert.Nil(t, result.TableID, "capacity policy assigns no table")
	}

	_, err := cmds.Create(ctx, input)
	assert.ErrorIs(t, err, commands.ErrNoCapacity)
}

func TestCreateReservationConcurrent(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()
	store.seedTables(3, 4)
	store.seedCustomer("Ana", "ana@example.com", "600123456")
	cmds, _ := newReservationCommands(t, store, reservation.PolicyExclusiveTable, 0)

	const attempts = 20
	input := commands.CreateReservationInput{Email: "ana@example.com", Date: "2026-09-15", Time: "20:00"}

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := cmds.Create(ctx, input)
			results[i] = err
		}(i)
	}
	wg.Wait()

	var granted, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			granted++
		default:
			require.ErrorIs(t, err, commands.ErrNoCapacity)
			rejected++
		}
	}
	assert.Equal(t, 3, granted, "exactly one reservation per table")
	assert.Equal(t, attempts-3, rejected)

	seen := make(map[int64]bool)
	for _, res := range store.reservations {
		require.NotNil(t, res.tableID)
		assert.False(t, seen[*res.tableID], "table %d double-booked", *res.tableID)
		seen[*res.tableID] = true
	}
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel releases the table", func(t *testing.T) {
		store := newFakeStore()
		store.seedTables(1, 4)
		store.seedCustomer("Ana", "ana@example.com", "600123456")
		cmds, _ := newReservationCommands(t, store, reservation.PolicyExclusiveTable, 0)

		input := commands.CreateReservationInput{Email: "ana@example.com", Date: "2026-09-15", Time: "20:00"}
		result, err := cmds.Create(ctx, input)
		require.NoError(t, err)

		_, err = cmds.Create(ctx, input)
		require.ErrorIs(t, err, commands.ErrNoCapacity)

		require.NoError(t, cmds.Cancel(ctx, result.ID))
		assert.True(t, store.tables[0].available)

		retried, err := cmds.Create(ctx, input)
		require.NoError(t, err, "slot is reservable again after cancellation")
		require.NotNil(t, retried.TableID)
		assert.Equal(t, int64(1), *retried.TableID)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		store := newFakeStore()
		cmds, _ := newReservationCommands(t, store, reservation.PolicyExclusiveTable, 0)

		err := cmds.Cancel(ctx, 42)
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("already cancelled", func(t *testing.T) {
		store := newFakeStore()
		store.seedTables(1, 4)
		store.seedCustomer("Ana", "ana@example.com", "600123456")
		cmds, _ := newReservationCommands(t, store, reservation.PolicyExclusiveTable, 0)

		result, err := cmds.Create(ctx, commands.CreateReservationInput{
			Email: "ana@example.com", Date: "2026-09-15", Time: "20:00",
		})
		require.NoError(t, err)

		require.NoError(t, cmds.Cancel(ctx, result.ID))
		err = cmds.Cancel(ctx, result.ID)
		assert.ErrorIs(t, err, commands.ErrAlreadyCancelled)
	})
}
