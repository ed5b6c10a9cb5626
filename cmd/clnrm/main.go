// Package main is the clnrm CLI entrypoint: hermetic integration tests
// described in Tera/Jinja templates, run against a container backend and
// validated against OpenTelemetry spans.
package main

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/clnrm/clnrm/pkg/otel"
	vv "github.com/clnrm/clnrm/pkg/version"
)

func getVersionInfo() vv.Info {
	return vv.Get()
}

func mainSetup() (context.Context, *otel.Config, error) {
	ctx := context.Background()

	r, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceName("clnrm"),
			semconv.ServiceVersion(getVersionInfo().Version),
		),
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithOS(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("OTEL resource setup failed: %w", err)
	}

	return ctx, &otel.Config{Resource: r}, nil
}

func mainE(args []string) error {
	ctx, otelCfg, err := mainSetup()
	if err != nil {
		return err
	}

	root := newRoot(getVersionInfo().Version)
	root.SetArgs(args)

	return otel.Run(ctx, root, otelCfg, "CLNRM_VERBOSITY")
}

func main() {
	if err := mainE(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
