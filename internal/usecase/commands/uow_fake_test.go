//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"reserva-api/internal/domain/customer"
	"reserva-api/internal/domain/reservation"
	"reserva-api/internal/infra"
	"reserva-api/internal/infra/sqlc"
	"reserva-api/internal/usecase/shared"
)

// In-memory unit of work for command tests. The store mutex plays the
// role of the per-slot advisory lock; a failed transaction restores the
// pre-transaction state, mirroring a rollback.

type tableRow struct {
	id        int64
	capacity  int32
	available bool
}

type reservationRow struct {
	id         int64
	customerID int64
	date       string
	timeOfDay  string
	partySize  *int32
	tableID    *int64
	status     reservation.Status
}

type jobRow struct {
	kind    string
	topic   string
	payload []byte
	runAt   time.Time
}

type fakeStore struct {
	mu sync.Mutex

	customers    []shared.CustomerSnapshot
	tables       []tableRow
	reservations []reservationRow
	jobs         []jobRow

	nextCustomerID    int64
	nextTableID       int64
	nextReservationID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextCustomerID:    1,
		nextTableID:       1,
		nextReservationID: 1,
	}
}

func (s *fakeStore) seedTables(count int, capacity int32) {
	for i := 0; i < count; i++ {
		s.tables = append(s.tables, tableRow{id: s.nextTableID, capacity: capacity, available: true})
		s.nextTableID++
	}
}

func (s *fakeStore) seedCustomer(name, email, phone string) int64 {
	id := s.nextCustomerID
	s.nextCustomerID++
	s.customers = append(s.customers, shared.CustomerSnapshot{ID: id, Name: name, Email: email, Phone: phone})
	return id
}

type storeState struct {
	customers         []shared.CustomerSnapshot
	tables            []tableRow
	reservations      []reservationRow
	jobs              []jobRow
	nextCustomerID    int64
	nextTableID       int64
	nextReservationID int64
}

func (s *fakeStore) snapshot() storeState {
	return storeState{
		customers:         append([]shared.CustomerSnapshot(nil), s.customers...),
		tables:            append([]tableRow(nil), s.tables...),
		reservations:      append([]reservationRow(nil), s.reservations...),
		jobs:              append([]jobRow(nil), s.jobs...),
		nextCustomerID:    s.nextCustomerID,
		nextTableID:       s.nextTableID,
		nextReservationID: s.nextReservationID,
	}
}

func (s *fakeStore) restore(snap storeState) {
	s.customers = snap.customers
	s.tables = snap.tables
	s.reservations = snap.reservations
	s.jobs = snap.jobs
	s.nextCustomerID = snap.nextCustomerID
	s.nextTableID = snap.nextTableID
	s.nextReservationID = snap.nextReservationID
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snap := u.store.snapshot()
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(ctx, nil)
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Customers() shared.CustomerRepository { return &fakeCustomerRepo{store: t.store} }
func (t *fakeTx) Tables() shared.TableRepository       { return &fakeTableRepo{store: t.store} }
func (t *fakeTx) Reservations() shared.ReservationRepository {
	return &fakeReservationRepo{store: t.store}
}
func (t *fakeTx) Notifications() shared.NotificationRepository {
	return &fakeNotificationRepo{store: t.store}
}
func (t *fakeTx) DB() sqlc.DBTX { return nil }

type fakeCustomerRepo struct {
	store *fakeStore
}

func (r *fakeCustomerRepo) Create(_ context.Context, _ sqlc.DBTX, c *customer.Customer) (int64, error) {
	for _, existing := range r.store.customers {
		if existing.Email == c.Email().Value() {
			return 0, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
		}
	}
	id := r.store.nextCustomerID
	r.store.nextCustomerID++
	r.store.customers = append(r.store.customers, shared.CustomerSnapshot{
		ID:    id,
		Name:  c.Name().Value(),
		Email: c.Email().Value(),
		Phone: c.Phone().Value(),
	})
	return id, nil
}

func (r *fakeCustomerRepo) FindByEmail(_ context.Context, _ sqlc.DBTX, email string) (*shared.CustomerSnapshot, error) {
	for _, c := range r.store.customers {
		if c.Email == email {
			snap := c
			return &snap, nil
		}
	}
	return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
}

type fakeTableRepo struct {
	store *fakeStore
}

func (r *fakeTableRepo) CandidatesForSlot(_ context.Context, _ sqlc.DBTX, slot reservation.Slot) ([]reservation.TableState, error) {
	taken := make(map[int64]bool)
	for _, res := range r.store.reservations {
		if res.status == reservation.StatusConfirmed && res.tableID != nil &&
			res.date == slot.Date() && res.timeOfDay == slot.Time() {
			taken[*res.tableID] = true
		}
	}

	var out []reservation.TableState
	for _, tbl := range r.store.tables {
		if tbl.available && !taken[tbl.id] {
			out = append(out, reservation.TableState{ID: tbl.id, Capacity: tbl.capacity})
		}
	}
	return out, nil
}

func (r *fakeTableRepo) SetAvailability(_ context.Context, _ sqlc.DBTX, tableID int64, available bool) error {
	for i := range r.store.tables {
		if r.store.tables[i].id == tableID {
			r.store.tables[i].available = available
			return nil
		}
	}
	return infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
}

func (r *fakeTableRepo) UpdateCapacity(_ context.Context, _ sqlc.DBTX, tableID int64, capacity int32) (int64, error) {
	for i := range r.store.tables {
		if r.store.tables[i].id == tableID {
			r.store.tables[i].capacity = capacity
			return tableID, nil
		}
	}
	return 0, infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
}

func (r *fakeTableRepo) Insert(_ context.Context, _ sqlc.DBTX, capacity int32) (int64, error) {
	id := r.store.nextTableID
	r.store.nextTableID++
	r.store.tables = append(r.store.tables, tableRow{id: id, capacity: capacity, available: true})
	return id, nil
}

type fakeReservationRepo struct {
	store *fakeStore
}

func (r *fakeReservationRepo) LockSlot(_ context.Context, _ sqlc.DBTX, _ reservation.Slot) error {
	// Serialization is provided by the store mutex held for the whole
	// transaction.
	return nil
}

func (r *fakeReservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (int64, error) {
	if res.TableID() != nil {
		for _, existing := range r.store.reservations {
			if existing.status == reservation.StatusConfirmed && existing.tableID != nil &&
				*existing.tableID == *res.TableID() &&
				existing.date == res.Slot().Date() && existing.timeOfDay == res.Slot().Time() {
				return 0, infra.WrapRepoErr("table already reserved for slot", nil, infra.KindConflict)
			}
		}
	}

	id := r.store.nextReservationID
	r.store.nextReservationID++

	var partySize *int32
	if res.PartySize() != nil {
		v := res.PartySize().Value()
		partySize = &v
	}
	var tableID *int64
	if res.TableID() != nil {
		v := *res.TableID()
		tableID = &v
	}

	r.store.reservations = append(r.store.reservations, reservationRow{
		id:         id,
		customerID: res.CustomerID(),
		date:       res.Slot().Date(),
		timeOfDay:  res.Slot().Time(),
		partySize:  partySize,
		tableID:    tableID,
		status:     res.Status(),
	})
	return id, nil
}

func (r *fakeReservationRepo) CountConfirmedBySlot(_ context.Context, _ sqlc.DBTX, slot reservation.Slot) (int64, error) {
	var count int64
	for _, res := range r.store.reservations {
		if res.status == reservation.StatusConfirmed &&
			res.date == slot.Date() && res.timeOfDay == slot.Time() {
			count++
		}
	}
	return count, nil
}

func (r *fakeReservationRepo) Cancel(_ context.Context, _ sqlc.DBTX, id int64) (*int64, error) {
	for i := range r.store.reservations {
		if r.store.reservations[i].id == id && r.store.reservations[i].status == reservation.StatusConfirmed {
			r.store.reservations[i].status = reservation.StatusCancelled
			return r.store.reservations[i].tableID, nil
		}
	}
	return nil, infra.WrapRepoErr("no confirmed reservation", nil, infra.KindNotFound)
}

func (r *fakeReservationRepo) StatusByID(_ context.Context, _ sqlc.DBTX, id int64) (reservation.Status, error) {
	for _, res := range r.store.reservations {
		if res.id == id {
			return res.status, nil
		}
	}
	return "", infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
}

type fakeNotificationRepo struct {
	store *fakeStore
}

func (r *fakeNotificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.store.jobs = append(r.store.jobs, jobRow{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return nil
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.topics...)
}
