package todo

import "github.com/google/uuid"

// IDSource hands out task IDs. Implementations must never return uuid.Nil,
// which the state uses to mean "no edit target".
type IDSource interface {
	NewID() uuid.UUID
}

// UUIDv7 generates time-ordered version 7 UUIDs.
type UUIDv7 struct{}

// NewID returns a fresh v7 UUID, falling back to v4 if the v7 generator fails.
func (UUIDv7) NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

// SequenceIDs is a deterministic IDSource for tests and replays. The n-th
// call returns a UUID whose last eight bytes encode n (starting at 1).
type SequenceIDs struct {
	n uint64
}

// NewID returns the next ID in the sequence.
func (s *SequenceIDs) NewID() uuid.UUID {
	s.n++

	return SequenceID(s.n)
}

// SequenceID returns the ID that SequenceIDs produces on its n-th call.
func SequenceID(n uint64) uuid.UUID {
	var id uuid.UUID

	for i := range 8 {
		id[15-i] = byte(n >> (8 * i))
	}

	return id
}
