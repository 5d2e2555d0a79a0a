// Package uuid generates session identifiers behind a mockable interface
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator returns random v4 UUIDs, optionally prefixed
type GoogleUUIDGenerator struct {
	prefix string
}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	if g.prefix == "" {
		return uuid.New().String()
	}
	return g.prefix + "-" + uuid.New().String()
}

// NewGoogleUUIDGenerator creates a generator of bare UUIDs
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// NewPrefixedGenerator creates a generator of "<prefix>-<uuid>" identifiers
func NewPrefixedGenerator(prefix string) *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{prefix: prefix}
}

// SequenceGenerator returns "<prefix>-0001", "<prefix>-0002", ... so seeded
// runs produce the same identifiers every time. Safe for concurrent use.
type SequenceGenerator struct {
	prefix string
	next   atomic.Int64
}

// NewSequenceGenerator creates a counter based generator
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) New() string {
	return fmt.Sprintf("%s-%04d", g.prefix, g.next.Add(1))
}
