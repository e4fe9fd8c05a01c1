package reservation

import "errors"

var (
	ErrNoCapacity    = errors.New("no capacity for slot")
	ErrInvalidPolicy = errors.New("invalid allocation policy")
)

// Policy selects how a slot grants capacity.
type Policy string

const (
	// PolicyExclusiveTable binds exactly one physical table per
	// reservation and consumes it.
	PolicyExclusiveTable Policy = "exclusive"
	// PolicyCapacityCount only counts confirmed reservations per slot
	// against a fixed seating cap; no table identity is assigned.
	PolicyCapacityCount Policy = "capacity"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyExclusiveTable, PolicyCapacityCount:
		return Policy(s), nil
	default:
		return "", ErrInvalidPolicy
	}
}

// TableState is a candidate table as observed inside the serialized
// transaction: available and with no confirmed reservation for the slot.
type TableState struct {
	ID       int64
	Capacity int32
}

// SlotSnapshot is the state the resolver decides over. Candidates feed the
// exclusive policy, ConfirmedCount feeds the capacity policy; only the
// field matching the active policy is consulted.
type SlotSnapshot struct {
	Candidates     []TableState
	ConfirmedCount int64
}

// Allocation is the outcome of a granted request. TableID is nil under
// the capacity policy.
type Allocation struct {
	TableID *int64
}

// Allocator is the availability resolver. Resolve is pure: callers read
// the snapshot and apply the returned allocation inside the same
// serialized transaction, otherwise two concurrent requests can both
// observe capacity and oversubscribe the slot.
type Allocator struct {
	policy       Policy
	slotCapacity int64
}

func NewAllocator(policy Policy, slotCapacity int) (*Allocator, error) {
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}
	if policy == PolicyCapacityCount && slotCapacity <= 0 {
		return nil, errors.New("slot capacity must be positive")
	}
	return &Allocator{
		policy:       policy,
		slotCapacity: int64(slotCapacity),
	}, nil
}

func (a *Allocator) Policy() Policy {
	return a.policy
}

func (a *Allocator) SlotCapacity() int64 {
	return a.slotCapacity
}

func (a *Allocator) Resolve(snap SlotSnapshot, partySize *PartySize) (Allocation, error) {
	switch a.policy {
	case PolicyExclusiveTable:
		return a.resolveExclusive(snap.Candidates, partySize)
	case PolicyCapacityCount:
		if snap.ConfirmedCount >= a.slotCapacity {
			return Allocation{}, ErrNoCapacity
		}
		return Allocation{}, nil
	default:
		return Allocation{}, ErrInvalidPolicy
	}
}

// resolveExclusive picks the first fitting candidate by ascending id,
// which keeps selection deterministic under serialized requests.
func (a *Allocator) resolveExclusive(candidates []TableState, partySize *PartySize) (Allocation, error) {
	var best *TableState
	for i := range candidates {
		c := candidates[i]
		if partySize != nil && c.Capacity < partySize.Value() {
			continue
		}
		if best == nil || c.ID < best.ID {
			best = &candidates[i]
		}
	}
	if best == nil {
		return Allocation{}, ErrNoCapacity
	}
	id := best.ID
	return Allocation{TableID: &id}, nil
}
