// Package backend declares the minimal container backend interface the
// core consumes. The concrete adapter is an external collaborator; see
// pkg/backend/containers for a testcontainers-go-backed reference
// implementation and pkg/backend/fake for an in-memory test double.
package backend

import (
	"context"
	"time"
)

// Handle is opaque to the core; only a conforming Backend may interpret it.
type Handle interface {
	// ID is a human-readable identifier for logging/diagnostics only.
	ID() string
}

// ExecResult is the outcome of running a command inside a provisioned
// instance.
type ExecResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

// Backend is the abstract container operations contract. Guarantees
// required of any conforming implementation: fresh isolation per Create,
// no shared mutable filesystem between instances, deterministic
// argv-to-process mapping.
type Backend interface {
	// Create provisions an isolated instance running image with the
	// given environment and entrypoint argv. Fails with a BackendError
	// tagged clnrmerr.KindBackend when the runtime is unavailable.
	Create(ctx context.Context, image string, env map[string]string, argv []string) (Handle, error)

	// Exec runs argv inside the instance identified by h, capturing
	// stdout/stderr and the exit code.
	Exec(ctx context.Context, h Handle, argv []string) (ExecResult, error)

	// Destroy releases resources held by h. Idempotent: destroying an
	// already-destroyed handle is not an error.
	Destroy(ctx context.Context, h Handle) error

	// IsHealthy reports readiness, used when a service declares
	// wait_for_span or an equivalent readiness probe.
	IsHealthy(ctx context.Context, h Handle) (bool, error)
}
