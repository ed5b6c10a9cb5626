// Package scheduler implements the Scenario Scheduler: a parallel worker
// pool over the scenario sequence, following the same
// golang.org/x/sync/errgroup structured-concurrency shape the teacher's
// pkg/ui.RunUI uses for its UI/work pair, generalized to N independent
// scenario workers instead of two fixed goroutines.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"

	"github.com/clnrm/clnrm/pkg/backend"
	"github.com/clnrm/clnrm/pkg/cache"
	"github.com/clnrm/clnrm/pkg/clnrmerr"
	"github.com/clnrm/clnrm/pkg/collector"
	"github.com/clnrm/clnrm/pkg/digest"
	"github.com/clnrm/clnrm/pkg/model"
	spanpkg "github.com/clnrm/clnrm/pkg/span"
	"github.com/clnrm/clnrm/pkg/validate"
)

// Result is one scenario's complete outcome.
type Result struct {
	Scenario   model.Scenario
	Outcome    model.ExecOutcome
	Spans      *spanpkg.Set
	Report     validate.Report
	Skipped    bool
	DurationMS float64
	Err        error
}

// Scheduler executes a TestConfig's scenario sequence with configurable
// parallelism.
type Scheduler struct {
	Backend        backend.Backend
	Cache          *cache.Store
	Collector      collector.Collector
	Workers        int
	Force          bool
	FailFast       bool
	ServiceTimeout time.Duration
	DrainWindow    time.Duration
}

// New builds a Scheduler with sane defaults (4 workers, 30s service
// timeout, 2s drain window) overridable via the struct fields.
func New(be backend.Backend, store *cache.Store, coll collector.Collector) *Scheduler {
	return &Scheduler{
		Backend:        be,
		Cache:          store,
		Collector:      coll,
		Workers:        4,
		ServiceTimeout: 30 * time.Second,
		DrainWindow:    2 * time.Second,
	}
}

// Run executes every scenario in cfg, honoring declared order in the
// returned slice regardless of completion order. A BackendError raised
// anywhere is fatal to the whole run; individual ScenarioError/
// ValidationError failures are isolated unless FailFast is set.
func (s *Scheduler) Run(ctx context.Context, cfg *model.TestConfig) ([]Result, error) {
	workers := s.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(cfg.Scenario))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var fatalMu sync.Mutex
	var fatal error

	for i, sc := range cfg.Scenario {
		i, sc := i, sc
		g.Go(func() error {
			fatalMu.Lock()
			alreadyFatal := fatal != nil
			fatalMu.Unlock()
			if alreadyFatal && s.FailFast {
				results[i] = Result{Scenario: sc, Skipped: true}
				return nil
			}

			res := s.runScenario(gctx, cfg, sc)
			results[i] = res

			if res.Err != nil {
				if kind, ok := clnrmerr.KindOf(res.Err); ok && kind == clnrmerr.KindBackend {
					fatalMu.Lock()
					if fatal == nil {
						fatal = res.Err
					}
					fatalMu.Unlock()
					return res.Err
				}
				if s.FailFast {
					fatalMu.Lock()
					if fatal == nil {
						fatal = res.Err
					}
					fatalMu.Unlock()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// runScenario implements the §4.6 per-scenario algorithm: cache check,
// service provisioning, exec, drain, validate, destroy (guaranteed),
// cache update.
func (s *Scheduler) runScenario(ctx context.Context, cfg *model.TestConfig, sc model.Scenario) Result {
	start := time.Now()

	svcSpec, ok := cfg.Service[sc.Service]
	if !ok {
		return Result{Scenario: sc, Err: clnrmerr.OrphanReference(sc.Name, sc.Service)}
	}

	expect := cfg.Expect
	if sc.Expect != nil {
		expect = *sc.Expect
	}

	key, err := s.scenarioKey(sc, expect, svcSpec)
	if err != nil {
		return Result{Scenario: sc, Err: clnrmerr.New(clnrmerr.KindConfig, "computing cache key", err)}
	}
	if s.Cache != nil && !s.Cache.ShouldExecute(key, s.Force) {
		return Result{Scenario: sc, Skipped: true, DurationMS: 0}
	}

	handle, err := s.Backend.Create(ctx, svcSpec.Image, svcSpec.Environment, svcSpec.Argv)
	if err != nil {
		return Result{Scenario: sc, Err: clnrmerr.New(clnrmerr.KindBackend, "creating service", err)}
	}
	defer func() { _ = s.Backend.Destroy(context.Background(), handle) }()

	if svcSpec.WaitForSpan != "" {
		if err := s.waitForReadiness(ctx, handle); err != nil {
			return Result{Scenario: sc, Err: err}
		}
	}

	execStart := time.Now()
	res, err := s.Backend.Exec(ctx, handle, sc.Command)
	execDuration := time.Since(execStart)
	if err != nil {
		return Result{Scenario: sc, Err: clnrmerr.New(clnrmerr.KindScenario, "executing scenario command", err)}
	}

	if ndc, ok := s.Collector.(*collector.NDJSONCollector); ok {
		ndc.Record(sc.Name, res.Stdout)
	}

	drainCtx, cancel := context.WithTimeout(ctx, s.DrainWindow)
	defer cancel()
	spans, err := s.Collector.Drain(drainCtx, sc.Name, s.DrainWindow)
	if err != nil {
		return Result{Scenario: sc, Err: clnrmerr.New(clnrmerr.KindScenario, "draining spans", err)}
	}

	status := model.CollectionComplete
	if spans.Truncated {
		status = model.CollectionTruncated
	}
	if len(spans.Spans) == 0 {
		status = model.CollectionMissing
	}

	outcome := model.ExecOutcome{
		ExitCode:         res.ExitCode,
		Stdout:           res.Stdout,
		Stderr:           res.Stderr,
		Duration:         execDuration.Seconds(),
		CollectionStatus: status,
	}

	vreport := validate.Run(spans, expect)

	verdict := cache.VerdictPass
	if vreport.Verdict() == validate.Fail {
		verdict = cache.VerdictFail
	}
	if s.Cache != nil {
		_ = s.Cache.Put(key, cache.Entry{Verdict: verdict})
	}

	return Result{
		Scenario:   sc,
		Outcome:    outcome,
		Spans:      spans,
		Report:     vreport,
		DurationMS: time.Since(start).Seconds() * 1000,
	}
}

// scenarioFragment is the TOML shape canonicalized into a scenario's cache
// key: the scenario itself plus whichever expect block actually governs it
// (scenario-level override or config-level default), so a change to either
// invalidates the cache.
type scenarioFragment struct {
	Scenario model.Scenario     `toml:"scenario"`
	Expect   model.Expectations `toml:"expect"`
}

// scenarioKey computes the §4.4 change-aware cache key: a canonicalized
// content hash over the resolved scenario, its effective expectations, and
// the service it references, rather than a coarse name/service/command
// tuple that would miss changes to image, environment, wait_for_span, or
// expect.* rules.
func (s *Scheduler) scenarioKey(sc model.Scenario, expect model.Expectations, svcSpec model.ServiceSpec) (string, error) {
	sceneTOML, err := toml.Marshal(scenarioFragment{Scenario: sc, Expect: expect})
	if err != nil {
		return "", fmt.Errorf("marshaling scenario fragment: %w", err)
	}
	svcTOML, err := toml.Marshal(svcSpec)
	if err != nil {
		return "", fmt.Errorf("marshaling service fragment: %w", err)
	}
	return digest.ScenarioFingerprint(string(sceneTOML), string(svcTOML))
}

// waitForReadiness polls IsHealthy until it reports ready or the service
// timeout elapses, failing with ScenarioError::ServiceStartupTimeout.
func (s *Scheduler) waitForReadiness(ctx context.Context, h backend.Handle) error {
	deadline := s.ServiceTimeout
	if deadline <= 0 {
		deadline = 30 * time.Second
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		ok, err := s.Backend.IsHealthy(timeoutCtx, h)
		if err == nil && ok {
			return nil
		}
		select {
		case <-timeoutCtx.Done():
			return clnrmerr.WrapTimeout(
				clnrmerr.New(clnrmerr.KindScenario, "service did not become ready", nil),
				deadline.String(),
			)
		case <-ticker.C:
		}
	}
}
