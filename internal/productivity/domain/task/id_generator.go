package task

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// IDGenerator issues identifiers for new tasks.
type IDGenerator interface {
	NextID() string
}

// SequentialIDGenerator issues "1", "2", "3", ... for the lifetime of the
// process. The sequence restarts with every new generator.
type SequentialIDGenerator struct {
	current atomic.Uint64
}

// NewSequentialIDGenerator creates a generator starting at zero.
func NewSequentialIDGenerator() *SequentialIDGenerator {
	return &SequentialIDGenerator{}
}

// NextID returns the next identifier.
func (g *SequentialIDGenerator) NextID() string {
	return strconv.FormatUint(g.current.Add(1), 10)
}

// NormalizeID strips the surrounding whitespace user input carries. Issued
// ids never contain whitespace.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}
