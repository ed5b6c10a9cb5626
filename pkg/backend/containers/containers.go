// Package containers is a reference Backend implementation over
// testcontainers-go, demonstrating how a conforming adapter binds to the
// core's narrow backend.Backend interface without pulling container
// runtime specifics into the core itself.
package containers

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"

	"github.com/clnrm/clnrm/pkg/backend"
	"github.com/clnrm/clnrm/pkg/clnrmerr"
)

type handle struct {
	container testcontainers.Container
	id        string
}

func (h *handle) ID() string { return h.id }

// Backend implements backend.Backend over the local Docker daemon via
// testcontainers-go. Exposed ports are discovered automatically when the
// image declares EXPOSE; callers needing a fixed OTLP ingestion port
// should pass it through env as OTEL_EXPORTER_OTLP_ENDPOINT and let the
// collector bind to a host-chosen port instead of assuming the
// container's view of it.
type Backend struct {
	mu sync.Mutex
}

// New constructs a Backend bound to the ambient Docker/Podman socket.
func New() *Backend {
	return &Backend{}
}

// Create implements backend.Backend by starting a container from image
// with the given environment and entrypoint override. Each call
// provisions a fresh container, satisfying the "fresh isolation per
// create" guarantee; no state is shared across Handles.
func (b *Backend) Create(ctx context.Context, image string, env map[string]string, argv []string) (backend.Handle, error) {
	req := testcontainers.ContainerRequest{
		Image:      image,
		Env:        env,
		Cmd:        argv,
		WaitingFor: nil, // readiness is driven by wait_for_span, not a TCP/log probe
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, clnrmerr.New(clnrmerr.KindBackend, fmt.Sprintf("creating container from image %q", image), err)
	}

	id := c.GetContainerID()
	return &handle{container: c, id: id}, nil
}

// Exec implements backend.Backend.
func (b *Backend) Exec(ctx context.Context, h backend.Handle, argv []string) (backend.ExecResult, error) {
	hd, ok := h.(*handle)
	if !ok {
		return backend.ExecResult{}, clnrmerr.New(clnrmerr.KindBackend, "exec: handle not owned by this backend", nil)
	}

	start := time.Now()
	exitCode, reader, err := hd.container.Exec(ctx, argv)
	duration := time.Since(start)
	if err != nil {
		return backend.ExecResult{Duration: duration}, clnrmerr.New(clnrmerr.KindBackend, "exec failed", err)
	}

	var out []byte
	if reader != nil {
		out, _ = io.ReadAll(reader)
	}

	return backend.ExecResult{
		Stdout:   out,
		ExitCode: exitCode,
		Duration: duration,
	}, nil
}

// Destroy implements backend.Backend; idempotent because Terminate on an
// already-stopped container is itself idempotent in testcontainers-go.
func (b *Backend) Destroy(ctx context.Context, h backend.Handle) error {
	hd, ok := h.(*handle)
	if !ok {
		return clnrmerr.New(clnrmerr.KindBackend, "destroy: handle not owned by this backend", nil)
	}
	if err := hd.container.Terminate(ctx); err != nil {
		return clnrmerr.New(clnrmerr.KindBackend, "terminating container", err)
	}
	return nil
}

// IsHealthy implements backend.Backend by checking the container is
// still running; callers layer wait_for_span readiness on top.
func (b *Backend) IsHealthy(ctx context.Context, h backend.Handle) (bool, error) {
	hd, ok := h.(*handle)
	if !ok {
		return false, clnrmerr.New(clnrmerr.KindBackend, "is_healthy: handle not owned by this backend", nil)
	}
	state, err := hd.container.State(ctx)
	if err != nil {
		return false, clnrmerr.New(clnrmerr.KindBackend, "reading container state", err)
	}
	return state.Running, nil
}

// MappedPort exposes the host-mapped port for a container port, used
// when wiring a per-container OTLP endpoint back to the collector.
func MappedPort(ctx context.Context, h backend.Handle, containerPort nat.Port) (string, error) {
	hd, ok := h.(*handle)
	if !ok {
		return "", clnrmerr.New(clnrmerr.KindBackend, "mapped_port: handle not owned by this backend", nil)
	}
	mapped, err := hd.container.MappedPort(ctx, containerPort)
	if err != nil {
		return "", clnrmerr.New(clnrmerr.KindBackend, "resolving mapped port", err)
	}
	return mapped.Port(), nil
}
