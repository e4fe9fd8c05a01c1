package queries

import "time"

// ReservationView is the ledger row joined with its customer, as served by
// the listing endpoints.
type ReservationView struct {
	ID            int64
	CustomerID    int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          string
	Time          string
	PartySize     *int32
	TableID       *int64
	Status        string
	CreatedAt     time.Time
}

type TableView struct {
	ID        int64
	Capacity  int32
	Available bool
}

// AvailabilityView reports slot capacity under the active policy: table
// ids for the exclusive policy, a remaining-seats count for the capacity
// policy.
type AvailabilityView struct {
	Policy    string
	Date      string
	Time      string
	Available bool
	TableIDs  []int64
	Remaining *int64
}
