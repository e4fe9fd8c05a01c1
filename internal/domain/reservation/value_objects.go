package reservation

import (
	"errors"
	"strings"
)

var (
	ErrEmptySlot        = errors.New("date and time are required")
	ErrInvalidPartySize = errors.New("party size must be a positive integer")
)

// Slot identifies a reservation window as an opaque (date, time) pair.
// Values are matched by exact equality; no timezone normalization or
// calendar validation is performed. A malformed date never matches any
// existing reservation, so it simply resolves against an empty slot.
type Slot struct {
	date string
	time string
}

func NewSlot(date, timeOfDay string) (Slot, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)
	if date == "" || timeOfDay == "" {
		return Slot{}, ErrEmptySlot
	}
	return Slot{date: date, time: timeOfDay}, nil
}

func (s Slot) Date() string {
	return s.date
}

func (s Slot) Time() string {
	return s.time
}

// Key is the serialization key for the slot: all reservation writes for
// the same (date, time) pair contend on this value.
func (s Slot) Key() string {
	return s.date + "@" + s.time
}

type PartySize struct {
	value int32
}

func NewPartySize(n int32) (PartySize, error) {
	if n <= 0 {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: n}, nil
}

func (p PartySize) Value() int32 {
	return p.value
}
