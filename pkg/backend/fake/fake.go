// Package fake is an in-memory Backend implementation for unit and
// scheduler tests. It records lifecycle calls so test assertions can
// verify the "destroy invoked exactly once" service-lifecycle invariant
// without a real container runtime, the same role
// observability.NewMockTracer plays in teradata-labs-loom's test suite.
package fake

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clnrm/clnrm/pkg/backend"
	"github.com/clnrm/clnrm/pkg/clnrmerr"
)

type handle struct {
	id string
}

func (h handle) ID() string { return h.id }

// ExecFunc computes the result of running argv inside the fake instance
// whose handle ID is id ("<image>-<n>"), letting tests script
// stdout/NDJSON span emission per scenario.
type ExecFunc func(id string, argv []string) backend.ExecResult

// Backend is a goroutine-safe in-memory Backend.
type Backend struct {
	mu sync.Mutex

	// Unavailable, when set, makes every Create call fail with
	// BackendError::Unavailable, exercising the "backend unavailable is
	// fatal to the run" path.
	Unavailable bool

	// ExecFn computes a result for each Exec call; a nil ExecFn returns a
	// success with a one-millisecond duration.
	ExecFn ExecFunc

	created   map[string]bool
	destroyed map[string]int
	seq       int
}

// New constructs an empty fake Backend.
func New() *Backend {
	return &Backend{created: map[string]bool{}, destroyed: map[string]int{}}
}

// Create implements backend.Backend.
func (b *Backend) Create(_ context.Context, image string, _ map[string]string, _ []string) (backend.Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Unavailable {
		return nil, clnrmerr.New(clnrmerr.KindBackend, "container runtime unavailable", nil)
	}

	b.seq++
	id := fmt.Sprintf("%s-%d", image, b.seq)
	b.created[id] = true
	return handle{id: id}, nil
}

// Exec implements backend.Backend.
func (b *Backend) Exec(_ context.Context, h backend.Handle, argv []string) (backend.ExecResult, error) {
	b.mu.Lock()
	fn := b.ExecFn
	b.mu.Unlock()

	if fn == nil {
		return backend.ExecResult{Duration: time.Millisecond}, nil
	}
	return fn(h.ID(), argv), nil
}

// Destroy implements backend.Backend; idempotent, counting calls so
// tests can assert exactly-once semantics.
func (b *Backend) Destroy(_ context.Context, h backend.Handle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.destroyed[h.ID()]++
	return nil
}

// IsHealthy implements backend.Backend; fake instances are always ready.
func (b *Backend) IsHealthy(_ context.Context, h backend.Handle) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.created[h.ID()], nil
}

// DestroyCount returns how many times Destroy was called for id, for
// lifecycle-invariant assertions.
func (b *Backend) DestroyCount(id string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.destroyed[id]
}
