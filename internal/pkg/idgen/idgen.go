// Package idgen names generation runs. Run IDs are UUIDv7 so that they
// sort by start time in logs and in the shared cache.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type Generator interface {
	Generate() string
}

// UUIDGenerator produces prefix_<uuidv7> identifiers
type UUIDGenerator struct {
	prefix string
}

func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// the v7 clock source failed; a random id still names the run
		id = uuid.New()
	}
	return withPrefix(g.prefix, id.String())
}

// SequentialGenerator produces prefix_1, prefix_2, ... for tests
type SequentialGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
