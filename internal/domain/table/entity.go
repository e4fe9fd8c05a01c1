package table

import "errors"

var ErrInvalidCapacity = errors.New("capacity must be a positive integer")

// Table entity. Created at bootstrap or via reconfiguration; never deleted.
// In the exclusive-table policy the availability flag marks a table as
// consumed once a reservation binds it.
type Table struct {
	id        int64
	capacity  int32
	available bool
}

func NewTable(capacity int32) (*Table, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Table{
		capacity:  capacity,
		available: true,
	}, nil
}

func ReconstructTable(id int64, capacity int32, available bool) *Table {
	return &Table{
		id:        id,
		capacity:  capacity,
		available: available,
	}
}

func (t *Table) ID() int64       { return t.id }
func (t *Table) Capacity() int32 { return t.capacity }
func (t *Table) Available() bool { return t.available }

func (t *Table) Occupy() {
	t.available = false
}

func (t *Table) Release() {
	t.available = true
}

func (t *Table) Fits(partySize int32) bool {
	return t.capacity >= partySize
}
