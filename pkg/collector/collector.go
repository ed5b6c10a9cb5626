// Package collector implements the Span Collector: two collection modes,
// stdout NDJSON and an OTLP in-memory sink, behind one interface so
// scheduler and validation code stay blind to which transport a scenario
// used.
package collector

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/clnrm/clnrm/pkg/ioutil"
	"github.com/clnrm/clnrm/pkg/span"
)

// Collector drains whatever spans a scenario emitted up to deadline,
// producing an immutable SpanSet snapshot.
type Collector interface {
	Drain(ctx context.Context, scenarioID string, deadline time.Duration) (*span.Set, error)
}

// wireSpan is the NDJSON wire shape for one SpanData line.
type wireSpan struct {
	Name               string         `json:"name"`
	TraceID            string         `json:"trace_id"`
	SpanID             string         `json:"span_id"`
	ParentSpanID       string         `json:"parent_span_id"`
	StartTimeNS        uint64         `json:"start_time_ns"`
	EndTimeNS          uint64         `json:"end_time_ns"`
	Kind               span.Kind      `json:"kind"`
	Status             span.Status    `json:"status"`
	Attributes         map[string]any `json:"attributes"`
	Events             []wireEvent    `json:"events"`
	ResourceAttributes map[string]any `json:"resource_attributes"`
}

type wireEvent struct {
	Name       string         `json:"name"`
	TimestampN uint64         `json:"timestamp_ns"`
	Attributes map[string]any `json:"attributes"`
}

func (w wireSpan) toData() span.Data {
	events := make([]span.Event, len(w.Events))
	for i, e := range w.Events {
		events[i] = span.Event{Name: e.Name, TimestampN: e.TimestampN, Attributes: e.Attributes}
	}
	return span.Data{
		Name:               w.Name,
		TraceID:            w.TraceID,
		SpanID:             w.SpanID,
		ParentSpanID:       w.ParentSpanID,
		StartTimeN:         w.StartTimeNS,
		EndTimeN:           w.EndTimeNS,
		Kind:               w.Kind,
		Status:             w.Status,
		Attributes:         w.Attributes,
		Events:             events,
		ResourceAttributes: w.ResourceAttributes,
	}
}

// completionSentinel is the NDJSON line that signals a stream is done.
// Drain stops parsing at it and reports the set as not truncated; a
// stream without it is reported as truncated.
const completionSentinel = `{"__clnrm_done__":true}`

// NDJSONCollector parses one JSON object per line of captured stdout into
// SpanData, preserving order of appearance. Malformed lines are recorded
// as parse warnings rather than failing collection outright.
type NDJSONCollector struct {
	mu sync.Mutex
	// Stdout supplies the scenario's captured stdout bytes, keyed by
	// scenario id, populated via Record by the scheduler after Exec
	// returns. Guarded by mu since scheduler workers run concurrently.
	Stdout map[string][]byte
}

// NewNDJSONCollector constructs a collector over a fixed stdout map.
func NewNDJSONCollector(stdout map[string][]byte) *NDJSONCollector {
	if stdout == nil {
		stdout = map[string][]byte{}
	}
	return &NDJSONCollector{Stdout: stdout}
}

// Record stores scenarioID's captured stdout for a later Drain call. Safe
// for concurrent use by multiple scheduler workers.
func (c *NDJSONCollector) Record(scenarioID string, stdout []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Stdout[scenarioID] = stdout
}

// Drain implements Collector.
func (c *NDJSONCollector) Drain(_ context.Context, scenarioID string, _ time.Duration) (*span.Set, error) {
	set := &span.Set{ScenarioName: scenarioID, CollectionMode: span.ModeStdoutND}

	c.mu.Lock()
	raw, ok := c.Stdout[scenarioID]
	c.mu.Unlock()
	if !ok {
		set.Truncated = true
		return set, nil
	}

	var counter ioutil.WriterCounter
	scanner := bufio.NewScanner(io.TeeReader(bytes.NewReader(raw), &counter))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	completed := false
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if string(line) == completionSentinel {
			completed = true
			break
		}
		var w wireSpan
		if err := json.Unmarshal(line, &w); err != nil {
			set.ParseWarnings = append(set.ParseWarnings, fmt.Sprintf("malformed NDJSON line: %v", err))
			continue
		}
		set.Spans = append(set.Spans, w.toData())
	}

	set.Truncated = !completed
	set.BytesScanned = int64(counter)
	return set, nil
}

// OTLPSink is a process-local, in-memory OTLP span receiver. Production
// wiring wraps it with an HTTP listener (see Listener in otlp.go); tests
// can push spans directly via Ingest.
type OTLPSink struct {
	bufferByScenario map[string][]span.Data
}

// NewOTLPSink constructs an empty in-memory sink.
func NewOTLPSink() *OTLPSink {
	return &OTLPSink{bufferByScenario: map[string][]span.Data{}}
}

// Ingest appends spans received for scenarioID, preserving insertion
// order as the spec requires for the OTLP sink mode.
func (s *OTLPSink) Ingest(scenarioID string, spans ...span.Data) {
	s.bufferByScenario[scenarioID] = append(s.bufferByScenario[scenarioID], spans...)
}

// Drain implements Collector, draining whatever has been ingested for
// scenarioID up to deadline. The in-memory sink has nothing to wait on
// beyond the deadline itself, since Ingest is synchronous.
func (s *OTLPSink) Drain(ctx context.Context, scenarioID string, deadline time.Duration) (*span.Set, error) {
	set := &span.Set{ScenarioName: scenarioID, CollectionMode: span.ModeOTLP}

	timer := time.NewTimer(deadline)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}

	set.Spans = append(set.Spans, s.bufferByScenario[scenarioID]...)
	return set, nil
}
