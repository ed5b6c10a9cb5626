// Package engine assembles every component into the top-level
// Orchestration Loop and exposes the command surface a CLI front-end
// drives: run, validate, render, fmt, digest.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/clnrm/clnrm/pkg/backend"
	"github.com/clnrm/clnrm/pkg/cache"
	"github.com/clnrm/clnrm/pkg/clnrmerr"
	"github.com/clnrm/clnrm/pkg/collector"
	"github.com/clnrm/clnrm/pkg/determinism"
	"github.com/clnrm/clnrm/pkg/digest"
	"github.com/clnrm/clnrm/pkg/model"
	"github.com/clnrm/clnrm/pkg/report"
	"github.com/clnrm/clnrm/pkg/scheduler"
	"github.com/clnrm/clnrm/pkg/tmpl"
	"github.com/clnrm/clnrm/pkg/vars"
)

// Engine wires the Template Engine, Config Loader, Cache, Scheduler and
// Report Generator together. It is the one stateful object a CLI
// front-end needs to construct.
type Engine struct {
	Backend backend.Backend
	Cache   *cache.Store
	Log     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache overrides the cache store (tests typically point this at a
// temp directory).
func WithCache(store *cache.Store) Option {
	return func(e *Engine) { e.Cache = store }
}

// WithLogger overrides the structured logger; the zero value logs nowhere.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.Log = log }
}

// New builds an Engine bound to be. Pass cache.Open's result via
// WithCache if the default location shouldn't be used.
func New(be backend.Backend, opts ...Option) (*Engine, error) {
	e := &Engine{Backend: be, Log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	if e.Cache == nil {
		store, err := cache.Open("")
		if err != nil {
			return nil, err
		}
		e.Cache = store
	}
	return e, nil
}

// RunReport is the result of Run.
type RunReport struct {
	report.Run
}

// renderAndLoad runs Variable Resolver -> Template Engine -> Config
// Loader for a single template source, the shared first half of every
// command surface operation.
func renderAndLoad(source string) (*model.TestConfig, string, error) {
	resolved := vars.Resolve(nil, vars.Snapshot(), nil)
	ctx := make(map[string]any, len(resolved))
	for k, v := range resolved {
		ctx[k] = v
	}

	clock := &determinism.Clock{}
	if fc, ok := resolved[string(vars.FreezeClock)]; ok && fc != "" {
		if t, err := time.Parse(time.RFC3339, fc); err == nil {
			clock.Freeze(t)
		}
	}

	engine, err := tmpl.New(tmpl.WithClock(clock))
	if err != nil {
		return nil, "", err
	}

	rendered, err := engine.Render(source, ctx)
	if err != nil {
		return nil, "", err
	}

	cfg, err := model.Load(rendered, slog.Default())
	if err != nil {
		return nil, "", err
	}
	return cfg, rendered, nil
}

// Run executes tests from the given template paths (§6: run).
func (e *Engine) Run(ctx context.Context, paths []string, workers int, force bool) (RunReport, error) {
	var scenarios []report.ScenarioResult

	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return RunReport{}, clnrmerr.New(clnrmerr.KindConfig, fmt.Sprintf("reading %s", path), err)
		}

		cfg, _, err := renderAndLoad(string(src))
		if err != nil {
			return RunReport{}, err
		}

		coll, shutdown, err := e.openCollector(ctx, cfg)
		if err != nil {
			return RunReport{}, err
		}

		sched := scheduler.New(e.Backend, e.Cache, coll)
		if workers > 0 {
			sched.Workers = workers
		}
		sched.Force = force

		results, err := sched.Run(ctx, cfg)
		shutdown(ctx)
		if err != nil {
			return RunReport{}, err
		}

		for _, r := range results {
			verdict := report.ScenarioResult{
				Name:       r.Scenario.Name,
				DurationMS: r.DurationMS,
				Validators: r.Report,
				Spans:      r.Spans,
			}
			switch {
			case r.Skipped:
				verdict.Verdict = "skipped"
			case r.Err != nil:
				verdict.Verdict = "fail"
			default:
				verdict.Verdict = r.Report.Verdict()
			}
			if cfg.Determinism != nil {
				verdict.FreezeClock = cfg.Determinism.FreezeClock
			}
			scenarios = append(scenarios, verdict)
		}
	}

	return RunReport{report.Run{Version: "1", Scenarios: scenarios}}, nil
}

// openCollector selects and wires the collection transport named by
// cfg.OTel.Exporter (default "otlp" when unset, per §6's Open Question
// resolution). For "otlp" it starts a localhost Listener and points every
// service's environment at it via OTEL_EXPORTER_OTLP_ENDPOINT, so
// containers the scheduler creates actually export spans somewhere this
// process can drain them. The returned shutdown func must run once the
// scheduler's Run call returns, regardless of outcome.
func (e *Engine) openCollector(ctx context.Context, cfg *model.TestConfig) (collector.Collector, func(context.Context), error) {
	exporter := cfg.OTel.Exporter
	if exporter == "" {
		exporter = "otlp"
	}

	switch exporter {
	case "stdout_ndjson":
		return collector.NewNDJSONCollector(map[string][]byte{}), func(context.Context) {}, nil
	case "otlp":
		sink := collector.NewOTLPSink()
		listener, err := collector.NewListener(sink)
		if err != nil {
			return nil, nil, clnrmerr.New(clnrmerr.KindBackend, "starting OTLP listener", err)
		}
		endpoint := listener.Endpoint()
		for name, svc := range cfg.Service {
			if svc.Environment == nil {
				svc.Environment = map[string]string{}
			}
			svc.Environment["OTEL_EXPORTER_OTLP_ENDPOINT"] = endpoint
			cfg.Service[name] = svc
		}
		return sink, func(shutdownCtx context.Context) { _ = listener.Shutdown(shutdownCtx) }, nil
	default:
		return nil, nil, clnrmerr.New(clnrmerr.KindConfig, fmt.Sprintf("unknown otel.exporter %q", exporter), nil)
	}
}

// LintReport is the result of Validate.
type LintReport struct {
	Configs []*model.TestConfig
}

// Validate renders and shape-checks templates without executing them
// (§6: validate).
func (e *Engine) Validate(paths []string) (LintReport, error) {
	var lr LintReport
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return LintReport{}, clnrmerr.New(clnrmerr.KindConfig, fmt.Sprintf("reading %s", path), err)
		}
		cfg, _, err := renderAndLoad(string(src))
		if err != nil {
			return LintReport{}, err
		}
		lr.Configs = append(lr.Configs, cfg)
	}
	return lr, nil
}

// Render renders a single template to a string, with authoring overrides
// layered over environment and defaults (§6: render).
func (e *Engine) Render(path string, overrides map[string]string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", clnrmerr.New(clnrmerr.KindConfig, fmt.Sprintf("reading %s", path), err)
	}

	resolved := vars.Resolve(overrides, vars.Snapshot(), nil)
	ctx := make(map[string]any, len(resolved))
	for k, v := range resolved {
		ctx[k] = v
	}

	engine, err := tmpl.New()
	if err != nil {
		return "", err
	}
	return engine.Render(string(src), ctx)
}

// FmtReport is the result of Fmt.
type FmtReport struct {
	Changed []string
}

// Fmt applies canonical TOML formatting (alphabetical keys, flat tables,
// consistent spacing) to each already-rendered TOML file at paths,
// rewriting in place unless checkOnly is set (§6: fmt). Formatting is
// idempotent: Fmt(Fmt(x)) == Fmt(x).
func (e *Engine) Fmt(paths []string, checkOnly bool) (FmtReport, error) {
	var fr FmtReport
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return FmtReport{}, clnrmerr.New(clnrmerr.KindConfig, fmt.Sprintf("reading %s", path), err)
		}

		canonical, err := CanonicalTOML(string(src))
		if err != nil {
			return FmtReport{}, err
		}

		if canonical == string(src) {
			continue
		}
		fr.Changed = append(fr.Changed, path)
		if !checkOnly {
			if err := os.WriteFile(path, []byte(canonical), 0o644); err != nil {
				return FmtReport{}, clnrmerr.New(clnrmerr.KindConfig, fmt.Sprintf("writing %s", path), err)
			}
		}
	}
	return fr, nil
}

// CanonicalTOML decodes src and re-encodes it with go-toml/v2's
// deterministic map-key ordering, giving idempotent, alphabetically
// keyed, flat-table output.
func CanonicalTOML(src string) (string, error) {
	var raw map[string]any
	if err := toml.Unmarshal([]byte(src), &raw); err != nil {
		return "", clnrmerr.New(clnrmerr.KindConfig, "parsing TOML for fmt", err)
	}
	out, err := toml.Marshal(raw)
	if err != nil {
		return "", clnrmerr.New(clnrmerr.KindConfig, "re-encoding TOML for fmt", err)
	}
	return string(out), nil
}

// Digest computes a scenario digest without running anything (§6: digest).
func (e *Engine) Digest(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", clnrmerr.New(clnrmerr.KindConfig, fmt.Sprintf("reading %s", path), err)
	}

	cfg, rendered, err := renderAndLoad(string(src))
	if err != nil {
		return "", err
	}
	_ = cfg

	return digest.ScenarioFingerprint(rendered)
}
