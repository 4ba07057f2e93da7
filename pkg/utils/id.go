package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for newly created records. Services
// receive one at construction so tests can supply a deterministic sequence.
type IDGenerator func() string

// NewUUIDGenerator returns the production generator backed by random UUIDs.
func NewUUIDGenerator() IDGenerator {
	return uuid.NewString
}
